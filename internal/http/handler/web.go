package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"photoapp/internal/service"
)

// GalleryPage renders the gallery index: the image grid, the total count
// and the last-updated label. Flash messages arrive via query params set
// by the redirecting handlers.
func GalleryPage(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := gallery.View(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).Render("gallery", fiber.Map{
				"Error": "Could not load the gallery, please try again",
			})
		}

		return c.Render("gallery", fiber.Map{
			"Photos":      view.Photos,
			"Count":       view.Count,
			"LastUpdated": view.LastUpdated,
			"Success":     c.Query("success"),
			"Error":       c.Query("error"),
		})
	}
}

// UploadForm renders the upload page.
func UploadForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("upload", fiber.Map{
			"Success": c.Query("success"),
			"Error":   c.Query("error"),
		})
	}
}

// UploadPhoto accepts a multipart upload and redirects back to the upload
// page with a flash message for either outcome.
func UploadPhoto(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return redirectWithError(c, "/upload", service.ErrEmptyFile)
		}

		f, err := fileHeader.Open()
		if err != nil {
			return redirectWithError(c, "/upload", err)
		}
		defer f.Close()

		in := service.UploadInput{
			OriginalFilename: fileHeader.Filename,
			ContentType:      fileHeader.Header.Get(fiber.HeaderContentType),
			DeclaredSize:     fileHeader.Size,
			Description:      c.FormValue("description"),
		}

		if _, err := gallery.Upload(c.UserContext(), f, in); err != nil {
			return redirectWithError(c, "/upload", err)
		}

		return redirectWithSuccess(c, "/upload", "Image uploaded successfully")
	}
}

// DeletePhoto removes a photo and redirects to the gallery with a flash.
func DeletePhoto(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := gallery.Delete(c.UserContext(), id); err != nil {
			return redirectWithError(c, "/", err)
		}
		return redirectWithSuccess(c, "/", "Image deleted successfully")
	}
}

// PhotoDetail renders the single-image page. Unknown IDs bounce back to the
// gallery instead of surfacing a bare 404 page.
func PhotoDetail(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photo, err := gallery.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return redirectWithError(c, "/", err)
		}
		return c.Render("detail", fiber.Map{"Photo": photo})
	}
}

// PhotoData streams the raw image bytes for inline-stored photos.
func PhotoData(gallery service.Gallery) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, contentType, err := gallery.Data(c.UserContext(), c.Params("id"))
		if err != nil {
			return fiber.ErrNotFound
		}
		c.Set(fiber.HeaderContentType, contentType)
		return c.Send(data)
	}
}

func redirectWithSuccess(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path+"?success="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectWithError(c *fiber.Ctx, path string, err error) error {
	return c.Redirect(path+"?error="+url.QueryEscape(userMessage(err)), fiber.StatusSeeOther)
}
