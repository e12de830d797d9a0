package model

import (
	"path"
	"strings"
	"time"
)

// InlinePhoto is the inline-blob record shape: the image bytes live directly
// in the metadata row. Data is only populated on the raw-bytes read path;
// list and lookup queries leave it nil.
type InlinePhoto struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	Description      string    `json:"description"`
	UploadDate       time.Time `json:"upload_date"`
	Size             int64     `json:"size"`
	ContentType      string    `json:"content_type"`
	Data             []byte    `json:"-"`
}

// ObjectPhoto is the object-store record shape: the bytes live in an
// S3-compatible store under ObjectKey and the row keeps a presigned read URL.
// The URL is a cached, expiring capability; ObjectKey is the durable identity.
type ObjectPhoto struct {
	ID           string    `json:"id"`
	ObjectKey    string    `json:"object_key"`
	Description  string    `json:"description"`
	PresignedURL string    `json:"presigned_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewInlinePhoto stamps the upload time at construction. The ID is assigned
// by the caller before insert.
func NewInlinePhoto(id, filename, originalFilename, description, contentType string, data []byte) *InlinePhoto {
	return &InlinePhoto{
		ID:               id,
		Filename:         filename,
		OriginalFilename: originalFilename,
		Description:      description,
		UploadDate:       time.Now().UTC(),
		Size:             int64(len(data)),
		ContentType:      contentType,
		Data:             data,
	}
}

// NewObjectPhoto stamps the creation time at construction.
func NewObjectPhoto(id, objectKey, description, presignedURL string) *ObjectPhoto {
	return &ObjectPhoto{
		ID:           id,
		ObjectKey:    objectKey,
		Description:  description,
		PresignedURL: presignedURL,
		CreatedAt:    time.Now().UTC(),
	}
}

// Photo is the read-only view handed to templates and the JSON API. It is
// derived from either record shape; the shapes themselves are never merged.
type Photo struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	Description      string    `json:"description"`
	Size             int64     `json:"size,omitempty"`
	ContentType      string    `json:"content_type,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at"`
	ImageURL         string    `json:"image_url"`
}

// View converts an inline record to its gallery view. The image URL points
// at the raw-bytes endpoint.
func (p *InlinePhoto) View() Photo {
	return Photo{
		ID:               p.ID,
		OriginalFilename: p.OriginalFilename,
		Description:      p.Description,
		Size:             p.Size,
		ContentType:      p.ContentType,
		UploadedAt:       p.UploadDate,
		ImageURL:         "/images/" + p.ID + "/data",
	}
}

// View converts an object-store record to its gallery view. The display name
// is recovered from the object key; size and content type are not stored in
// this variant and stay unset.
func (p *ObjectPhoto) View() Photo {
	return Photo{
		ID:               p.ID,
		OriginalFilename: displayName(p.ObjectKey),
		Description:      p.Description,
		UploadedAt:       p.CreatedAt,
		ImageURL:         p.PresignedURL,
	}
}

// displayName strips the namespace and the millisecond prefix from an object
// key ("photos/1712345678901_cat.png" -> "cat.png").
func displayName(objectKey string) string {
	base := path.Base(objectKey)
	if i := strings.Index(base, "_"); i >= 0 && i < len(base)-1 {
		return base[i+1:]
	}
	return base
}
