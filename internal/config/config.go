package config

import (
	"os"
	"strconv"
	"time"
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

// StorageConfig selects where generated PDFs are persisted.
// Backend "local" writes to Dir and serves files under PublicPrefix;
// backend "s3" uploads to the configured MinIO bucket instead.
type StorageConfig struct {
	Backend      string
	Dir          string
	PublicPrefix string
}

// MinIOConfig holds object storage settings for the S3 backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// PDFConfig holds headless-browser rendering settings.
type PDFConfig struct {
	RenderTimeout time.Duration
	BrowserBin    string
	NoSandbox     bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string

	// TemplatePath optionally overrides the embedded proposal template
	// with an HTML file on disk.
	TemplatePath string

	Database DatabaseConfig
	Storage  StorageConfig
	MinIO    MinIOConfig
	PDF      PDFConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:      getEnv("APP_HOST", "localhost:8080"),
		Port:         getEnv("PORT", "8080"), // default only for non-sensitive value
		TemplatePath: getEnv("TEMPLATE_PATH", ""),
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
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", "local"),
			Dir:          getEnv("STORAGE_DIR", "generated-documents"),
			PublicPrefix: getEnv("STORAGE_PUBLIC_PREFIX", "/generated-documents"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		PDF: PDFConfig{
			RenderTimeout: time.Duration(getEnvInt("PDF_RENDER_TIMEOUT_SEC", 30)) * time.Second,
			BrowserBin:    getEnv("PDF_BROWSER_BIN", ""),
			NoSandbox:     getEnvBool("PDF_BROWSER_NO_SANDBOX", true),
		},
	}
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
