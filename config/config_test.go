package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "4000", cfg.Port)
	require.Equal(t, "change-this-admin-key", cfg.AdminKey)
	require.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
	require.Equal(t, "http://localhost:5174", cfg.AdminOrigin)
	require.Equal(t, "femifunmi_foundation", cfg.DBName)
	require.Equal(t, 120*time.Second, cfg.UploadTimeout)
	require.Equal(t, 1, cfg.UploadRetryCount)
	require.Equal(t, 4, cfg.UploadConcurrency)
	require.False(t, cfg.Production)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGODB_URI", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoadRequiresCloudinaryCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDINARY_API_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Cloudinary")
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("CLOUDINARY_UPLOAD_TIMEOUT_MS", "5000")
	t.Setenv("CLOUDINARY_UPLOAD_RETRY_COUNT", "3")
	t.Setenv("MEDIA_UPLOAD_CONCURRENCY", "2")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 5*time.Second, cfg.UploadTimeout)
	require.Equal(t, 3, cfg.UploadRetryCount)
	require.Equal(t, 2, cfg.UploadConcurrency)
	require.True(t, cfg.Production)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDINARY_UPLOAD_RETRY_COUNT", "lots")
	t.Setenv("MEDIA_UPLOAD_CONCURRENCY", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultUploadRetryCount, cfg.UploadRetryCount)
	require.Equal(t, DefaultUploadConcurrency, cfg.UploadConcurrency)
}

func TestLoadAllowsZeroRetries(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLOUDINARY_UPLOAD_RETRY_COUNT", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultUploadRetryCount, cfg.UploadRetryCount)

	t.Setenv("CLOUDINARY_UPLOAD_RETRY_COUNT", "0")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, 0, cfg.UploadRetryCount)
}
