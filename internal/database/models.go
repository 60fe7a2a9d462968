package database

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Phone            string
	Tags             []string
	StoredFileName   string
	OriginalFileName string
	FileType         string
	UploadedAt       time.Time
}
