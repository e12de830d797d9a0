package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	orig := nowMillis
	nowMillis = func() int64 { return 1712345678901 }
	defer func() { nowMillis = orig }()

	assert.Equal(t, "photos/1712345678901_cat.png", objectKey("cat.png"))
}

func TestGeneratedFilename(t *testing.T) {
	orig := nowMillis
	nowMillis = func() int64 { return 1712345678901 }
	defer func() { nowMillis = orig }()

	t.Run("preserves the original extension", func(t *testing.T) {
		assert.Equal(t, "img_1712345678901.png", generatedFilename("cat.png", "image/jpeg"))
	})

	t.Run("derives the extension from the content type", func(t *testing.T) {
		assert.Equal(t, "img_1712345678901.jpg", generatedFilename("holiday-photo", "image/jpeg"))
	})

	t.Run("unknown content type leaves no extension", func(t *testing.T) {
		assert.Equal(t, "img_1712345678901", generatedFilename("blob", "image/x-unknown-format"))
	})

	t.Run("generated name differs from the original", func(t *testing.T) {
		assert.NotEqual(t, "cat.png", generatedFilename("cat.png", "image/png"))
	})
}
