package mocks

import (
	"context"
	"io"

	"photoapp/internal/model"
	"photoapp/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockGallery struct {
	mock.Mock
}

func (m *MockGallery) Upload(ctx context.Context, r io.Reader, in service.UploadInput) (*model.Photo, error) {
	args := m.Called(ctx, r, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockGallery) View(ctx context.Context) (*service.GalleryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GalleryView), args.Error(1)
}

func (m *MockGallery) Get(ctx context.Context, id string) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockGallery) Data(ctx context.Context, id string) ([]byte, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockGallery) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
