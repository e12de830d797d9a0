package mocks

import (
	"context"

	"photoapp/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockInlinePhotoRepository struct {
	mock.Mock
}

func (m *MockInlinePhotoRepository) Create(ctx context.Context, photo *model.InlinePhoto) (*model.InlinePhoto, error) {
	args := m.Called(ctx, photo)
	if f, ok := args.Get(0).(func(context.Context, *model.InlinePhoto) *model.InlinePhoto); ok {
		return f(ctx, photo), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InlinePhoto), args.Error(1)
}

func (m *MockInlinePhotoRepository) FindByID(ctx context.Context, id string) (*model.InlinePhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InlinePhoto), args.Error(1)
}

func (m *MockInlinePhotoRepository) FindDataByID(ctx context.Context, id string) ([]byte, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockInlinePhotoRepository) List(ctx context.Context) ([]model.InlinePhoto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InlinePhoto), args.Error(1)
}

func (m *MockInlinePhotoRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockInlinePhotoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
