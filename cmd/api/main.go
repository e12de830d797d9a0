package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photoapp/internal/config"
	"photoapp/internal/database"
	"photoapp/internal/database/migration"
	handlers "photoapp/internal/http/handler"
	"photoapp/internal/http/middleware"
	"photoapp/internal/otel"
	"photoapp/internal/repository/postgres"
	"photoapp/internal/service"
	"photoapp/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Pick the storage variant. Inline keeps image bytes in the metadata
	// rows; object puts them in an S3-compatible store behind presigned URLs.
	var gallery service.Gallery
	switch cfg.StorageMode {
	case config.StorageObject:
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		gallery = service.NewObjectGallery(
			objStore,
			postgres.NewObjectPhotoPostgres(db),
			cfg.MaxUploadBytes,
			time.Duration(cfg.PresignTTLHours)*time.Hour,
			cfg.DeletePolicy,
		)
	default:
		gallery = service.NewInlineGallery(postgres.NewInlinePhotoPostgres(db), cfg.MaxUploadBytes)
	}

	app := fiber.New(fiber.Config{
		Views:        handlers.NewViewEngine(),
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.MaxUploadBytes) + (1 << 20),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, gallery, cfg.StorageMode == config.StorageInline)

	addr := ":" + cfg.Port
	log.Printf("gallery available at http://%s/ (storage mode: %s)", cfg.AppHost, cfg.StorageMode)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
