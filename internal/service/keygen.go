package service

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// objectKeyPrefix is the logical namespace for photo blobs in the object store.
const objectKeyPrefix = "photos/"

var nowMillis = func() int64 { return time.Now().UnixMilli() }

// objectKey derives a storage key from the original filename by prefixing a
// millisecond epoch value under the photos/ namespace. Collisions are
// accepted as negligible at single-writer upload rates; this is a weak
// uniqueness guarantee, not a proof, and no collision retry is performed.
func objectKey(originalFilename string) string {
	return fmt.Sprintf("%s%d_%s", objectKeyPrefix, nowMillis(), originalFilename)
}

// generatedFilename replaces the base name with a timestamp token while
// preserving the original extension. When the original name carries no
// extension, one is derived from the content type.
func generatedFilename(originalFilename, contentType string) string {
	ext := filepath.Ext(originalFilename)
	if ext == "" {
		if mt := mimetype.Lookup(contentType); mt != nil {
			ext = mt.Extension()
		}
	}
	return fmt.Sprintf("img_%d%s", nowMillis(), ext)
}
