package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage modes. One strategy is picked per deployment; the record shapes
// of the two modes are distinct and never mixed.
const (
	StorageInline = "inline"
	StorageObject = "object"
)

// Delete policies for the object-store variant. Strict aborts the workflow
// when the object-store delete fails; lenient logs the failure and still
// removes the metadata row, accepting orphan blobs.
const (
	DeleteStrict  = "strict"
	DeleteLenient = "lenient"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO (or any S3-compatible
// endpoint). Only required when STORAGE_MODE=object.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost         string
	Port            string
	StorageMode     string
	MaxUploadBytes  int64
	PresignTTLHours int
	DeletePolicy    string
	Database        DatabaseConfig
	MinIO           MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:         getEnv("APP_HOST", "localhost:8080"),
		Port:            getEnv("PORT", "8080"),
		StorageMode:     getEnv("STORAGE_MODE", StorageInline),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		PresignTTLHours: getEnvInt("PRESIGN_TTL_HOURS", 72),
		DeletePolicy:    getEnv("DELETE_POLICY", DeleteStrict),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Validate rejects configurations the upload and delete workflows cannot run with.
func (c *AppConfig) Validate() error {
	switch c.StorageMode {
	case StorageInline, StorageObject:
	default:
		return fmt.Errorf("invalid STORAGE_MODE %q: must be %q or %q", c.StorageMode, StorageInline, StorageObject)
	}
	switch c.DeletePolicy {
	case DeleteStrict, DeleteLenient:
	default:
		return fmt.Errorf("invalid DELETE_POLICY %q: must be %q or %q", c.DeletePolicy, DeleteStrict, DeleteLenient)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.PresignTTLHours <= 0 {
		return fmt.Errorf("PRESIGN_TTL_HOURS must be positive, got %d", c.PresignTTLHours)
	}
	if c.StorageMode == StorageObject {
		if c.MinIO.Endpoint == "" || c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("STORAGE_MODE=object requires MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY and MINIO_BUCKET")
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
