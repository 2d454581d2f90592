package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PDF extraction backends selectable with PDF_BACKEND.
const (
	PDFBackendNative  = "native"
	PDFBackendDocconv = "docconv"
)

type Config struct {
	Port            string
	AppEnv          string
	TessdataDir     string
	PDFBackend      string
	MaxUploadBytes  int64
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	JWTSecret       string
	ArchiveBucket   string
	AwsRegion       string
	AwsAccessKey    string
	AwsSecretKey    string
	S3Endpoint      string
}

// LoadConfig loads .env (if present) and the process environment into a Config.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		TessdataDir:    getEnv("TESSDATA_DIR", defaultTessdataDir()),
		PDFBackend:     strings.ToLower(getEnv("PDF_BACKEND", PDFBackendNative)),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		ArchiveBucket:  getEnv("ARCHIVE_BUCKET", ""),
		AwsRegion:      getEnv("AWS_REGION", "us-east-2"),
		AwsAccessKey:   getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey:   getEnv("AWS_SECRET_KEY", ""),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
	}

	var err error
	if cfg.MaxUploadBytes, err = getEnvInt64("MAX_UPLOAD_BYTES", 52<<20); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.PDFBackend {
	case PDFBackendNative, PDFBackendDocconv:
	default:
		return fmt.Errorf("PDF_BACKEND must be %q or %q, got %q", PDFBackendNative, PDFBackendDocconv, c.PDFBackend)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.ArchiveBucket != "" && c.AwsRegion == "" {
		return fmt.Errorf("AWS_REGION not set but ARCHIVE_BUCKET is %q", c.ArchiveBucket)
	}
	return nil
}

// IsProduction reports whether APP_ENV selects production logging.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Tesseract language data lives next to the binary's working directory.
func defaultTessdataDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return filepath.Join("Tesseract", "tessdata")
	}
	return filepath.Join(wd, "Tesseract", "tessdata")
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, def int64) (int64, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
