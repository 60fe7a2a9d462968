// Package ingest orchestrates one resume ingestion: validate the upload,
// extract text, recognize contact fields, merge with caller overrides, then
// store the file and the record through the injected collaborators.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sriram2907/Resume-organiser-HR/internal/extract"
)

// MaxFileSize is the upload ceiling in bytes.
const MaxFileSize = 10 * 1024 * 1024

var allowedTypes = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("resume not found")

// ValidationError reports a user-correctable problem with the upload itself.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Upload is the ephemeral input to one ingestion.
type Upload struct {
	FileName string
	Data     []byte
}

// Supplied carries the caller's override candidates and metadata.
type Supplied struct {
	Name  string
	Email string
	Phone string
	Tags  []string
}

// Record is the persisted result of a successful ingestion. It is immutable
// after creation; the only later operation is deletion.
type Record struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Tags             []string  `json:"tags"`
	StoredFileName   string    `json:"storedFileName"`
	OriginalFileName string    `json:"originalFileName"`
	FileType         string    `json:"fileType"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

// Extractor converts raw file bytes into plain text.
type Extractor interface {
	ExtractText(data []byte, ext string) (string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(data []byte, ext string) (string, error)

func (f ExtractorFunc) ExtractText(data []byte, ext string) (string, error) {
	return f(data, ext)
}

// BlobStore persists raw file bytes under a collision-resistant name.
type BlobStore interface {
	Store(ctx context.Context, data []byte, originalName string) (string, error)
	Delete(ctx context.Context, storedName string) error
}

// RecordStore persists finished records.
type RecordStore interface {
	Insert(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Pipeline is stateless across calls; concurrent ingestions need no
// coordination.
type Pipeline struct {
	Extractor Extractor
	Blobs     BlobStore
	Records   RecordStore
}

// New builds a Pipeline using the package's own format extractor.
func New(blobs BlobStore, records RecordStore) *Pipeline {
	return &Pipeline{
		Extractor: ExtractorFunc(extract.ExtractText),
		Blobs:     blobs,
		Records:   records,
	}
}

// Ingest runs one upload through the full pipeline and returns the created
// record. Validation happens before any decode work; no partial record is
// ever persisted.
func (p *Pipeline) Ingest(ctx context.Context, up Upload, sup Supplied) (*Record, error) {
	if len(up.Data) == 0 {
		return nil, &ValidationError{Reason: "no file uploaded"}
	}
	if len(up.Data) > MaxFileSize {
		return nil, &ValidationError{Reason: "file exceeds the 10MB limit"}
	}
	ext := strings.ToLower(filepath.Ext(up.FileName))
	if !allowedTypes[ext] {
		return nil, &ValidationError{Reason: "only PDF and DOCX files are allowed"}
	}

	text, err := p.Extractor.ExtractText(up.Data, ext)
	if err != nil {
		return nil, err
	}

	fields := extract.Merge(extract.Recognize(text), extract.Fields{
		Name:  sup.Name,
		Email: sup.Email,
		Phone: sup.Phone,
	})

	storedName, err := p.Blobs.Store(ctx, up.Data, up.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	tags := sup.Tags
	if tags == nil {
		tags = []string{}
	}
	rec := &Record{
		ID:               uuid.New(),
		Name:             fields.Name,
		Email:            fields.Email,
		Phone:            fields.Phone,
		Tags:             tags,
		StoredFileName:   storedName,
		OriginalFileName: up.FileName,
		FileType:         ext,
		UploadedAt:       time.Now().UTC(),
	}
	if err := p.Records.Insert(ctx, rec); err != nil {
		// The blob was stored first; remove it so no orphan is left behind.
		if derr := p.Blobs.Delete(ctx, storedName); derr != nil {
			log.Printf("failed to clean up blob %s after record insert error: %v", storedName, derr)
		}
		return nil, fmt.Errorf("failed to save resume record: %w", err)
	}
	return rec, nil
}

// Delete removes the stored file and then the record. A blob that is already
// gone does not block record deletion.
func (p *Pipeline) Delete(ctx context.Context, id uuid.UUID) (*Record, error) {
	rec, err := p.Records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Blobs.Delete(ctx, rec.StoredFileName); err != nil {
		log.Printf("failed to delete blob %s, removing record anyway: %v", rec.StoredFileName, err)
	}
	if err := p.Records.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete resume record: %w", err)
	}
	return rec, nil
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries. Order and duplicates are preserved.
func ParseTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
