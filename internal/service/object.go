package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"photoapp/internal/config"
	"photoapp/internal/model"
	"photoapp/internal/repository"
	"photoapp/internal/storage"
)

// objectGallery implements Gallery with image bytes held in an S3-compatible
// object store and metadata rows referencing them. The put and the insert
// are not atomic: a failure between them leaves an orphaned blob behind,
// which is logged and never compensated or retried.
type objectGallery struct {
	store        storage.ObjectStore
	repo         repository.ObjectPhotoRepository
	maxBytes     int64
	presignTTL   time.Duration
	strictDelete bool
}

// NewObjectGallery constructs the object-store variant of the gallery
// service. deletePolicy is config.DeleteStrict or config.DeleteLenient.
func NewObjectGallery(store storage.ObjectStore, repo repository.ObjectPhotoRepository,
	maxUploadBytes int64, presignTTL time.Duration, deletePolicy string,
) Gallery {
	return &objectGallery{
		store:        store,
		repo:         repo,
		maxBytes:     maxUploadBytes,
		presignTTL:   presignTTL,
		strictDelete: deletePolicy != config.DeleteLenient,
	}
}

func (s *objectGallery) Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Photo, error) {
	data, err := readUpload(r, in, s.maxBytes)
	if err != nil {
		return nil, err
	}

	key := objectKey(in.OriginalFilename)
	if _, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.OriginalFilename,
		},
	}); err != nil {
		return nil, &StorageError{Op: "put object", Err: err}
	}

	// A record without a usable URL is not created; the blob written above
	// stays behind as an orphan when presigning fails.
	url, err := s.store.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		logEvent("error", "orphan_object", map[string]any{
			"object_key": key,
			"reason":     "presign failed",
			"error":      err.Error(),
		})
		return nil, &StorageError{Op: "presign object", Err: err}
	}

	photo := model.NewObjectPhoto(uuid.New().String(), key, in.Description, url)
	stored, err := s.repo.Create(ctx, photo)
	if err != nil {
		logEvent("error", "orphan_object", map[string]any{
			"object_key": key,
			"reason":     "metadata insert failed",
			"error":      err.Error(),
		})
		return nil, &StorageError{Op: "insert photo row", Err: err}
	}

	v := stored.View()
	return &v, nil
}

func (s *objectGallery) View(ctx context.Context) (*GalleryView, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list photos", Err: err}
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, &StorageError{Op: "count photos", Err: err}
	}

	photos := make([]model.Photo, 0, len(items))
	for i := range items {
		photos = append(photos, items[i].View())
	}
	return newGalleryView(photos, count, time.Now()), nil
}

func (s *objectGallery) Get(ctx context.Context, id string) (*model.Photo, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "find photo", Err: err}
	}
	v := photo.View()
	return &v, nil
}

// Data is not supported in this variant; reads go through the presigned URL.
func (s *objectGallery) Data(ctx context.Context, id string) ([]byte, string, error) {
	return nil, "", ErrNoInlineData
}

func (s *objectGallery) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return &StorageError{Op: "find photo", Err: err}
	}

	if err := s.store.Delete(ctx, photo.ObjectKey); err != nil {
		if s.strictDelete {
			return &StorageError{Op: "delete object", Err: err}
		}
		// Lenient policy: keep going and accept the orphan blob.
		logEvent("warn", "orphan_object", map[string]any{
			"object_key": photo.ObjectKey,
			"reason":     "object delete failed, proceeding per lenient policy",
			"error":      err.Error(),
		})
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return &StorageError{Op: "delete photo row", Err: err}
	}
	return nil
}
