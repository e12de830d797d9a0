package service

import (
	"errors"
	"fmt"
)

// Validation errors are detected before any store mutation and are
// user-correctable; handlers surface them as messages, not crashes.
var (
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrUnsupportedType = errors.New("unsupported content type: only images are accepted")
	ErrTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrUnsafeName      = errors.New("original filename is missing or unsafe")

	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("photo not found")

	// ErrNoInlineData is returned by the raw-bytes read path when the
	// deployment stores blobs in the object store instead of the row.
	ErrNoInlineData = errors.New("photo bytes are not stored inline")
)

// StorageError marks a failed call to an external store (object store or
// metadata store). The workflow state at failure time is documented per
// operation; no retry or compensation is attempted.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is one of the pre-mutation upload
// rejections.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyFile) ||
		errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrUnsafeName)
}
