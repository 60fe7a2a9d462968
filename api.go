package main

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sriram2907/Resume-organiser-HR/internal/database"
	"github.com/sriram2907/Resume-organiser-HR/internal/extract"
	"github.com/sriram2907/Resume-organiser-HR/internal/ingest"
)

func (cfg *ApiConfig) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// The pipeline enforces the 10MB ceiling itself; leave headroom for
		// multipart framing so its error is the one the caller sees.
		BodyLimit: ingest.MaxFileSize + 1024*1024,
	})

	app.Get("/", cfg.handlerRoot)
	app.Post("/api/upload", cfg.handlerUpload)
	app.Get("/api/resumes", cfg.handlerListResumes)
	app.Get("/api/resumes/:id", cfg.handlerGetResume)
	app.Get("/api/resumes/:id/file", cfg.handlerDownloadResume)
	app.Delete("/api/resumes/:id", cfg.handlerDeleteResume)
	app.Get("/api/tags", cfg.handlerGetTags)

	return app
}

func (cfg *ApiConfig) handlerRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Resume Organizer API is running!"})
}

func (cfg *ApiConfig) handlerUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file uploaded"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("failed to open uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error uploading resume"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("failed to read uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error uploading resume"})
	}

	rec, err := cfg.Pipeline.Ingest(c.Context(),
		ingest.Upload{
			FileName: fileHeader.Filename,
			Data:     data,
		},
		ingest.Supplied{
			Name:  c.FormValue("name"),
			Email: c.FormValue("email"),
			Phone: c.FormValue("phone"),
			Tags:  ingest.ParseTags(c.FormValue("tags")),
		})
	if err != nil {
		var validationErr *ingest.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Reason})
		case errors.Is(err, extract.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "only PDF and DOCX files are allowed"})
		default:
			log.Printf("upload failed for %s: %v", fileHeader.Filename, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error uploading resume"})
		}
	}

	cfg.publishResumeEvent("resume.uploaded", rec)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded successfully",
		"resume":  rec,
	})
}

func (cfg *ApiConfig) handlerListResumes(c *fiber.Ctx) error {
	rows, err := cfg.DB.ListResumes(c.Context(), database.ListResumesParams{
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
	})
	if err != nil {
		log.Printf("failed to list resumes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error fetching resumes"})
	}

	resumes := make([]ingest.Record, 0, len(rows))
	for _, row := range rows {
		resumes = append(resumes, recordFromRow(row))
	}
	return c.JSON(resumes)
}

func (cfg *ApiConfig) handlerGetResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// A malformed id can never name a record, so it reads as absent.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}

	rec, err := cfg.Pipeline.Records.Get(c.Context(), id)
	if errors.Is(err, ingest.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		log.Printf("failed to fetch resume %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error fetching resume"})
	}
	return c.JSON(rec)
}

func (cfg *ApiConfig) handlerDownloadResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// A malformed id can never name a record, so it reads as absent.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}

	rec, err := cfg.Pipeline.Records.Get(c.Context(), id)
	if errors.Is(err, ingest.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		log.Printf("failed to fetch resume %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error fetching resume"})
	}

	data, err := cfg.Blobs.Get(c.Context(), rec.StoredFileName)
	if err != nil {
		log.Printf("failed to download blob %s: %v", rec.StoredFileName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error downloading resume"})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.OriginalFileName+`"`)
	return c.Send(data)
}

func (cfg *ApiConfig) handlerDeleteResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// A malformed id can never name a record, so it reads as absent.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}

	rec, err := cfg.Pipeline.Delete(c.Context(), id)
	if errors.Is(err, ingest.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		log.Printf("failed to delete resume %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error deleting resume"})
	}

	cfg.publishResumeEvent("resume.deleted", rec)

	return c.JSON(fiber.Map{"message": "Resume deleted successfully"})
}

func (cfg *ApiConfig) handlerGetTags(c *fiber.Ctx) error {
	tags, err := cfg.DB.GetDistinctTags(c.Context())
	if err != nil {
		log.Printf("failed to fetch tags: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error fetching tags"})
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(tags)
}
