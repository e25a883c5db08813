package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultUploadTimeout     = 120 * time.Second
	DefaultUploadRetryCount  = 1
	DefaultUploadConcurrency = 4

	// MaxUploadBytes caps every uploaded file (multer memory limit in
	// the admin stack is the same 25 MB).
	MaxUploadBytes = 25 << 20
)

type Config struct {
	Port         string
	AdminKey     string
	ClientOrigin string
	AdminOrigin  string

	MongoURI string
	DBName   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	UploadTimeout     time.Duration
	UploadRetryCount  int
	UploadConcurrency int

	NewsletterWebhookURL string

	Production bool
}

// Load reads configuration from the environment. Missing media-host or
// document-store settings are startup failures, everything else has a
// development default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 envOr("PORT", "4000"),
		AdminKey:             envOr("ADMIN_KEY", "change-this-admin-key"),
		ClientOrigin:         envOr("CLIENT_ORIGIN", "http://localhost:5173"),
		AdminOrigin:          envOr("ADMIN_ORIGIN", "http://localhost:5174"),
		MongoURI:             os.Getenv("MONGODB_URI"),
		DBName:               envOr("MONGODB_DB_NAME", "femifunmi_foundation"),
		CloudinaryCloudName:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:     os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:  os.Getenv("CLOUDINARY_API_SECRET"),
		UploadTimeout:        time.Duration(envInt("CLOUDINARY_UPLOAD_TIMEOUT_MS", int(DefaultUploadTimeout/time.Millisecond))) * time.Millisecond,
		UploadRetryCount:     envInt("CLOUDINARY_UPLOAD_RETRY_COUNT", DefaultUploadRetryCount),
		UploadConcurrency:    envInt("MEDIA_UPLOAD_CONCURRENCY", DefaultUploadConcurrency),
		NewsletterWebhookURL: os.Getenv("NEWSLETTER_WEBHOOK_URL"),
		Production:           os.Getenv("APP_ENV") == "production",
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("missing Cloudinary configuration: set CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
	}
	// envInt already floors negatives to the fallback; only an explicit
	// zero concurrency needs correcting here.
	if cfg.UploadConcurrency < 1 {
		cfg.UploadConcurrency = DefaultUploadConcurrency
	}

	return cfg, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
