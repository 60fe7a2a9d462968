package main

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sriram2907/Resume-organiser-HR/internal/database"
	"github.com/sriram2907/Resume-organiser-HR/internal/ingest"
)

// dbRecordStore adapts the generated Postgres queries to the pipeline's
// RecordStore interface.
type dbRecordStore struct {
	q *database.Queries
}

func (s *dbRecordStore) Insert(ctx context.Context, rec *ingest.Record) error {
	_, err := s.q.CreateResume(ctx, database.CreateResumeParams{
		ID:               rec.ID,
		Name:             rec.Name,
		Email:            rec.Email,
		Phone:            rec.Phone,
		Tags:             rec.Tags,
		StoredFileName:   rec.StoredFileName,
		OriginalFileName: rec.OriginalFileName,
		FileType:         rec.FileType,
		UploadedAt:       rec.UploadedAt,
	})
	return err
}

func (s *dbRecordStore) Get(ctx context.Context, id uuid.UUID) (*ingest.Record, error) {
	row, err := s.q.GetResume(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ingest.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec := recordFromRow(row)
	return &rec, nil
}

func (s *dbRecordStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.q.DeleteResume(ctx, id)
}

func recordFromRow(row database.Resume) ingest.Record {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}
	return ingest.Record{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		Phone:            row.Phone,
		Tags:             tags,
		StoredFileName:   row.StoredFileName,
		OriginalFileName: row.OriginalFileName,
		FileType:         row.FileType,
		UploadedAt:       row.UploadedAt,
	}
}
