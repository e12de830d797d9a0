package mocks

import (
	"context"

	"photoapp/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockObjectPhotoRepository struct {
	mock.Mock
}

func (m *MockObjectPhotoRepository) Create(ctx context.Context, photo *model.ObjectPhoto) (*model.ObjectPhoto, error) {
	args := m.Called(ctx, photo)
	if f, ok := args.Get(0).(func(context.Context, *model.ObjectPhoto) *model.ObjectPhoto); ok {
		return f(ctx, photo), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ObjectPhoto), args.Error(1)
}

func (m *MockObjectPhotoRepository) FindByID(ctx context.Context, id string) (*model.ObjectPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ObjectPhoto), args.Error(1)
}

func (m *MockObjectPhotoRepository) List(ctx context.Context) ([]model.ObjectPhoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ObjectPhoto), args.Error(1)
}

func (m *MockObjectPhotoRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockObjectPhotoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
