package repository

import (
	"context"

	"photoapp/internal/model"
)

// InlinePhotoRepository defines data access for the inline-blob variant.
// Strictly persistence operations; no business logic here.
//
// List and FindByID return metadata only — the BYTEA column is fetched
// exclusively through FindDataByID so gallery reads never drag image bytes
// out of the database.
type InlinePhotoRepository interface {
	// Create inserts a new image row (including its bytes) and returns the
	// stored record without the data payload.
	Create(ctx context.Context, photo *model.InlinePhoto) (*model.InlinePhoto, error)

	// FindByID returns an image's metadata by its ID.
	FindByID(ctx context.Context, id string) (*model.InlinePhoto, error)

	// FindDataByID returns the raw image bytes and the stored content type.
	FindDataByID(ctx context.Context, id string) ([]byte, string, error)

	// List returns all image metadata ordered by upload date descending.
	List(ctx context.Context) ([]model.InlinePhoto, error)

	// Count returns the total number of image rows.
	Count(ctx context.Context) (int, error)

	// Delete removes an image row by ID. Deleting the row removes the only
	// copy of the bytes. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}

// ObjectPhotoRepository defines data access for the object-store variant.
// The rows reference blobs held externally; this layer never talks to the
// object store itself.
type ObjectPhotoRepository interface {
	// Create inserts a new photo row and returns the stored record.
	Create(ctx context.Context, photo *model.ObjectPhoto) (*model.ObjectPhoto, error)

	// FindByID returns a photo row by its ID.
	FindByID(ctx context.Context, id string) (*model.ObjectPhoto, error)

	// List returns all photo rows ordered by creation time descending.
	List(ctx context.Context) ([]model.ObjectPhoto, error)

	// Count returns the total number of photo rows.
	Count(ctx context.Context) (int, error)

	// Delete removes a photo row by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
