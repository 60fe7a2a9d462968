package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const createResume = `-- name: CreateResume :one
INSERT INTO resumes (
id, name, email, phone, tags, stored_file_name, original_file_name, file_type, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, email, phone, tags, stored_file_name, original_file_name, file_type, uploaded_at
`

type CreateResumeParams struct {
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

func (q *Queries) CreateResume(ctx context.Context, arg CreateResumeParams) (Resume, error) {
	row := q.db.QueryRowContext(ctx, createResume,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		pq.Array(arg.Tags),
		arg.StoredFileName,
		arg.OriginalFileName,
		arg.FileType,
		arg.UploadedAt,
	)
	var i Resume
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		pq.Array(&i.Tags),
		&i.StoredFileName,
		&i.OriginalFileName,
		&i.FileType,
		&i.UploadedAt,
	)
	return i, err
}

const getResume = `-- name: GetResume :one
SELECT id, name, email, phone, tags, stored_file_name, original_file_name, file_type, uploaded_at FROM resumes WHERE id=$1
`

func (q *Queries) GetResume(ctx context.Context, id uuid.UUID) (Resume, error) {
	row := q.db.QueryRowContext(ctx, getResume, id)
	var i Resume
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		pq.Array(&i.Tags),
		&i.StoredFileName,
		&i.OriginalFileName,
		&i.FileType,
		&i.UploadedAt,
	)
	return i, err
}

const listResumes = `-- name: ListResumes :many
SELECT id, name, email, phone, tags, stored_file_name, original_file_name, file_type, uploaded_at FROM resumes
WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR array_to_string(tags, ' ') ILIKE '%' || $1 || '%')
AND ($2::text = '' OR $2 = ANY(tags))
ORDER BY uploaded_at DESC
`

type ListResumesParams struct {
	Search string
	Tag    string
}

func (q *Queries) ListResumes(ctx context.Context, arg ListResumesParams) ([]Resume, error) {
	rows, err := q.db.QueryContext(ctx, listResumes, arg.Search, arg.Tag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Resume
	for rows.Next() {
		var i Resume
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Phone,
			pq.Array(&i.Tags),
			&i.StoredFileName,
			&i.OriginalFileName,
			&i.FileType,
			&i.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteResume = `-- name: DeleteResume :exec
DELETE FROM resumes WHERE id=$1
`

func (q *Queries) DeleteResume(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteResume, id)
	return err
}

const getDistinctTags = `-- name: GetDistinctTags :many
SELECT DISTINCT tag FROM resumes, unnest(tags) AS tag
WHERE trim(tag) <> ''
ORDER BY tag
`

func (q *Queries) GetDistinctTags(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getDistinctTags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		items = append(items, tag)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
