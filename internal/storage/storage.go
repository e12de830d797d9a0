package storage

import (
	"context"
	"io"
	"time"
)

// Package storage abstracts the S3-compatible object store used by the
// object-store variant. Implementations stream from the provided reader and
// never touch local disk.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; pass -1 if unknown and
// the backend will buffer/chunk as it supports.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// ObjectStore is the capability the photo workflows consume:
// put bytes under a key, mint a time-limited read URL, delete by key.
type ObjectStore interface {
	// Put uploads an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// PresignGet returns a time-limited URL granting read access to the key
	// without further authentication.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
