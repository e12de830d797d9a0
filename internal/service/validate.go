package service

import (
	"io"
	"strings"
)

// UploadInput carries the declared properties of a candidate upload.
type UploadInput struct {
	OriginalFilename string
	ContentType      string
	DeclaredSize     int64
	Description      string
}

// validateUpload checks a candidate against the upload contract using only
// its declared properties. No side effects; it must pass before any store
// mutation.
func validateUpload(in UploadInput, maxBytes int64) error {
	if in.DeclaredSize <= 0 {
		return ErrEmptyFile
	}
	if in.ContentType == "" || !strings.HasPrefix(in.ContentType, "image/") {
		return ErrUnsupportedType
	}
	if in.DeclaredSize > maxBytes {
		return ErrTooLarge
	}
	if in.OriginalFilename == "" || strings.Contains(in.OriginalFilename, "..") {
		return ErrUnsafeName
	}
	return nil
}

// readUpload validates the candidate and drains its bytes. The declared size
// is not trusted: the actual byte count is re-checked against the ceiling
// while reading, so a lying Content-Length cannot smuggle an oversized body.
func readUpload(r io.Reader, in UploadInput, maxBytes int64) ([]byte, error) {
	if r == nil {
		return nil, ErrEmptyFile
	}
	if err := validateUpload(in, maxBytes); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, &StorageError{Op: "read upload", Err: err}
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
