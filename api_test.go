package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/sriram2907/Resume-organiser-HR/internal/ingest"
)

type stubExtractor struct {
	text string
}

func (s *stubExtractor) ExtractText(data []byte, ext string) (string, error) {
	return s.text, nil
}

type stubBlobStore struct {
	deleteErr error
}

func (s *stubBlobStore) Store(ctx context.Context, data []byte, originalName string) (string, error) {
	return "stored-" + originalName, nil
}

func (s *stubBlobStore) Delete(ctx context.Context, storedName string) error {
	return s.deleteErr
}

type stubRecordStore struct {
	records map[uuid.UUID]*ingest.Record
}

func (s *stubRecordStore) Insert(ctx context.Context, rec *ingest.Record) error {
	s.records[rec.ID] = rec
	return nil
}

func (s *stubRecordStore) Get(ctx context.Context, id uuid.UUID) (*ingest.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, ingest.ErrNotFound
	}
	return rec, nil
}

func (s *stubRecordStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.records, id)
	return nil
}

func newTestConfig(extractedText string, blobs *stubBlobStore) (*ApiConfig, *stubRecordStore) {
	records := &stubRecordStore{records: map[uuid.UUID]*ingest.Record{}}
	cfg := &ApiConfig{
		Pipeline: &ingest.Pipeline{
			Extractor: &stubExtractor{text: extractedText},
			Blobs:     blobs,
			Records:   records,
		},
	}
	return cfg, records
}

func multipartUpload(t *testing.T, fileName string, fileContent []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := w.CreateFormFile("resume", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, r io.Reader, v any) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHandlerUpload_MissingFile(t *testing.T) {
	cfg, _ := newTestConfig("", &stubBlobStore{})
	app := cfg.NewApp()

	resp, err := app.Test(multipartUpload(t, "", nil, nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandlerUpload_WrongFileType(t *testing.T) {
	cfg, records := newTestConfig("", &stubBlobStore{})
	app := cfg.NewApp()

	resp, err := app.Test(multipartUpload(t, "notes.txt", []byte("plain"), nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	if body["error"] != "only PDF and DOCX files are allowed" {
		t.Errorf("error message = %q", body["error"])
	}
	if len(records.records) != 0 {
		t.Error("no record may be created for a rejected upload")
	}
}

func TestHandlerUpload_Created(t *testing.T) {
	cfg, records := newTestConfig("Jane Doe\nSoftware Engineer\njane.doe@example.com\n(555) 123-4567", &stubBlobStore{})
	app := cfg.NewApp()

	req := multipartUpload(t, "jane.docx", []byte("docx bytes"), map[string]string{
		"tags": "Frontend, , React ,Senior",
	})
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		Message string        `json:"message"`
		Resume  ingest.Record `json:"resume"`
	}
	decodeBody(t, resp.Body, &body)

	if body.Resume.Name != "Jane Doe" {
		t.Errorf("name = %q, want %q", body.Resume.Name, "Jane Doe")
	}
	if body.Resume.Email != "jane.doe@example.com" {
		t.Errorf("email = %q", body.Resume.Email)
	}
	if len(body.Resume.Tags) != 3 || body.Resume.Tags[0] != "Frontend" || body.Resume.Tags[2] != "Senior" {
		t.Errorf("tags = %v", body.Resume.Tags)
	}
	if len(records.records) != 1 {
		t.Errorf("persisted records = %d, want 1", len(records.records))
	}
}

func TestHandlerGetResume(t *testing.T) {
	cfg, records := newTestConfig("", &stubBlobStore{})
	app := cfg.NewApp()

	id := uuid.New()
	records.records[id] = &ingest.Record{ID: id, Name: "Jane Doe", Tags: []string{}}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/resumes/"+id.String(), nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var rec ingest.Record
	decodeBody(t, resp.Body, &rec)
	if rec.Name != "Jane Doe" {
		t.Errorf("name = %q", rec.Name)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/resumes/"+uuid.NewString(), nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status for unknown id = %d, want 404", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/resumes/not-a-uuid", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status for malformed id = %d, want 404", resp.StatusCode)
	}
}

func TestHandlerDeleteResume_MalformedID(t *testing.T) {
	cfg, _ := newTestConfig("", &stubBlobStore{})
	app := cfg.NewApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/resumes/not-a-uuid", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status for malformed id = %d, want 404", resp.StatusCode)
	}
}

func TestHandlerDeleteResume(t *testing.T) {
	cfg, records := newTestConfig("", &stubBlobStore{})
	app := cfg.NewApp()

	id := uuid.New()
	records.records[id] = &ingest.Record{ID: id, StoredFileName: "stored-jane.pdf"}

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/resumes/"+id.String(), nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(records.records) != 0 {
		t.Error("record should be deleted")
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/resumes/"+id.String(), nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status for repeated delete = %d, want 404", resp.StatusCode)
	}
}

func TestHandlerDeleteResume_BlobAlreadyGone(t *testing.T) {
	cfg, records := newTestConfig("", &stubBlobStore{deleteErr: fmt.Errorf("object does not exist")})
	app := cfg.NewApp()

	id := uuid.New()
	records.records[id] = &ingest.Record{ID: id, StoredFileName: "stored-gone.pdf"}

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/resumes/"+id.String(), nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 even when the blob is missing", resp.StatusCode)
	}
	if len(records.records) != 0 {
		t.Error("record should be deleted despite the missing blob")
	}
}

func TestHandlerRoot(t *testing.T) {
	cfg, _ := newTestConfig("", &stubBlobStore{})
	app := cfg.NewApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
