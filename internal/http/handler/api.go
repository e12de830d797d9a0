package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"photoapp/internal/service"
)

// ListPhotos returns the gallery view as JSON: photos newest first, the
// total count and the human-readable last-updated label.
func ListPhotos(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := gallery.View(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(view)
	}
}

// GetPhoto returns a single photo by ID.
func GetPhoto(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		photo, err := gallery.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(photo)
	}
}

// UploadPhotoAPI accepts a multipart upload (field name: file) and returns
// the stored photo as JSON.
func UploadPhotoAPI(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		in := service.UploadInput{
			OriginalFilename: fh.Filename,
			ContentType:      fh.Header.Get(fiber.HeaderContentType),
			DeclaredSize:     fh.Size,
			Description:      c.FormValue("description"),
		}

		photo, err := gallery.Upload(c.UserContext(), f, in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(photo)
	}
}

// DeletePhotoAPI removes a photo by ID.
func DeletePhotoAPI(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := gallery.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// HealthCheck reports healthy only when the database answers a ping.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
