package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"photoapp/internal/model"
	"photoapp/internal/repository"
)

// inlineGallery implements Gallery with image bytes stored directly in the
// metadata row. Deleting the row removes the only copy of the bytes, so the
// delete workflow has a single step and no partial-failure window.
type inlineGallery struct {
	repo     repository.InlinePhotoRepository
	maxBytes int64
}

// NewInlineGallery constructs the inline-blob variant of the gallery service.
func NewInlineGallery(repo repository.InlinePhotoRepository, maxUploadBytes int64) Gallery {
	return &inlineGallery{repo: repo, maxBytes: maxUploadBytes}
}

func (s *inlineGallery) Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Photo, error) {
	data, err := readUpload(r, in, s.maxBytes)
	if err != nil {
		return nil, err
	}

	photo := model.NewInlinePhoto(
		uuid.New().String(),
		generatedFilename(in.OriginalFilename, in.ContentType),
		in.OriginalFilename,
		in.Description,
		in.ContentType,
		data,
	)
	stored, err := s.repo.Create(ctx, photo)
	if err != nil {
		return nil, &StorageError{Op: "insert image row", Err: err}
	}

	v := stored.View()
	return &v, nil
}

func (s *inlineGallery) View(ctx context.Context) (*GalleryView, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list images", Err: err}
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, &StorageError{Op: "count images", Err: err}
	}

	photos := make([]model.Photo, 0, len(items))
	for i := range items {
		photos = append(photos, items[i].View())
	}
	return newGalleryView(photos, count, time.Now()), nil
}

func (s *inlineGallery) Get(ctx context.Context, id string) (*model.Photo, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "find image", Err: err}
	}
	v := photo.View()
	return &v, nil
}

func (s *inlineGallery) Data(ctx context.Context, id string) ([]byte, string, error) {
	if id == "" {
		return nil, "", ErrIDRequired
	}
	data, contentType, err := s.repo.FindDataByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", &StorageError{Op: "read image data", Err: err}
	}
	return data, contentType, nil
}

func (s *inlineGallery) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return &StorageError{Op: "find image", Err: err}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &StorageError{Op: "delete image row", Err: err}
	}
	return nil
}
