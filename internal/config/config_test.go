package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageInline, cfg.StorageMode)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 72, cfg.PresignTTLHours)
	assert.Equal(t, DeleteStrict, cfg.DeletePolicy)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_MODE", "object")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("PRESIGN_TTL_HOURS", "24")
	t.Setenv("DELETE_POLICY", "lenient")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageObject, cfg.StorageMode)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, 24, cfg.PresignTTLHours)
	assert.Equal(t, DeleteLenient, cfg.DeletePolicy)
	assert.Equal(t, "minio:9000", cfg.MinIO.Endpoint)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("MINIO_USE_SSL", "maybe")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	cfg := Load()

	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			StorageMode:     StorageInline,
			DeletePolicy:    DeleteStrict,
			MaxUploadBytes:  10 << 20,
			PresignTTLHours: 72,
		}
	}

	t.Run("valid inline config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("invalid storage mode", func(t *testing.T) {
		cfg := valid()
		cfg.StorageMode = "hybrid"
		assert.ErrorContains(t, cfg.Validate(), "STORAGE_MODE")
	})

	t.Run("invalid delete policy", func(t *testing.T) {
		cfg := valid()
		cfg.DeletePolicy = "maybe"
		assert.ErrorContains(t, cfg.Validate(), "DELETE_POLICY")
	})

	t.Run("non-positive size ceiling", func(t *testing.T) {
		cfg := valid()
		cfg.MaxUploadBytes = 0
		assert.ErrorContains(t, cfg.Validate(), "MAX_UPLOAD_BYTES")
	})

	t.Run("non-positive presign ttl", func(t *testing.T) {
		cfg := valid()
		cfg.PresignTTLHours = -1
		assert.ErrorContains(t, cfg.Validate(), "PRESIGN_TTL_HOURS")
	})

	t.Run("object mode requires minio settings", func(t *testing.T) {
		cfg := valid()
		cfg.StorageMode = StorageObject
		assert.ErrorContains(t, cfg.Validate(), "MINIO_ENDPOINT")

		cfg.MinIO = MinIOConfig{
			Endpoint:  "minio:9000",
			AccessKey: "key",
			SecretKey: "secret",
			Bucket:    "photos",
		}
		assert.NoError(t, cfg.Validate())
	})
}
