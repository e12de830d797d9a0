package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"photoapp/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. The raw
// image-bytes route is mounted only when photos are stored inline; in
// object mode browsers fetch images straight from the presigned URLs.
func RegisterRoutes(app *fiber.App, db *sql.DB, gallery service.Gallery, inlineData bool) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint checks DB connectivity, healthz is a bare liveness probe
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Browser-facing pages
	app.Get("/", GalleryPage(gallery))
	app.Get("/upload", UploadForm())
	app.Post("/upload", UploadPhoto(gallery))
	app.Post("/delete/:id", DeletePhoto(gallery))
	app.Get("/image/:id", PhotoDetail(gallery))
	if inlineData {
		app.Get("/images/:id/data", PhotoData(gallery))
	}

	// JSON API
	api := app.Group("/api")
	api.Get("/photos", ListPhotos(gallery))
	api.Post("/photos", UploadPhotoAPI(gallery))
	api.Get("/photos/:id", GetPhoto(gallery))
	api.Delete("/photos/:id", DeletePhotoAPI(gallery))
}
