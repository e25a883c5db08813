package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testUploader(retryCount int, uploadOnce func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error)) (*MediaUploader, *[]time.Duration) {
	sleeps := []time.Duration{}
	u := &MediaUploader{
		timeout:    time.Second,
		retryCount: retryCount,
		uploadOnce: uploadOnce,
		sleep: func(d time.Duration) {
			sleeps = append(sleeps, d)
		},
	}
	return u, &sleeps
}

func TestUploadRetriesAfterTimeout(t *testing.T) {
	attempts := 0
	u, sleeps := testUploader(1, func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
		attempts++
		if attempts == 1 {
			return UploadResult{}, context.DeadlineExceeded
		}
		return UploadResult{SecureURL: "https://cdn.example/ok", PublicID: "ok"}, nil
	})

	result, err := u.Upload(context.Background(), []byte("payload"), UploadOptions{Folder: "f", ResourceType: "image"})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/ok", result.SecureURL)
	require.Equal(t, 2, attempts)
	require.Equal(t, []time.Duration{time.Second}, *sleeps)
}

func TestUploadDoesNotRetryRejection(t *testing.T) {
	attempts := 0
	rejection := &UploadRejectedError{Message: "invalid signature"}
	u, sleeps := testUploader(3, func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
		attempts++
		return UploadResult{}, rejection
	})

	_, err := u.Upload(context.Background(), []byte("payload"), UploadOptions{Folder: "f", ResourceType: "image"})
	var rejected *UploadRejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, "invalid signature", rejected.Message)
	require.Equal(t, 1, attempts)
	require.Empty(t, *sleeps)
}

func TestUploadExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	u, sleeps := testUploader(2, func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
		attempts++
		return UploadResult{}, context.DeadlineExceeded
	})

	_, err := u.Upload(context.Background(), []byte("payload"), UploadOptions{Folder: "f", ResourceType: "image"})
	require.ErrorIs(t, err, ErrUploadTimeout)
	require.Equal(t, 3, attempts)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *sleeps)
}

func TestUploadStopsWhenCallerGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	u, _ := testUploader(5, func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
		attempts++
		return UploadResult{}, context.Canceled
	})

	_, err := u.Upload(ctx, []byte("payload"), UploadOptions{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, attempts)
}

func TestUploadDefaultsFolderAndResourceType(t *testing.T) {
	var seen UploadOptions
	u, _ := testUploader(0, func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
		seen = opts
		return UploadResult{SecureURL: "https://cdn.example/x"}, nil
	})

	_, err := u.Upload(context.Background(), []byte("payload"), UploadOptions{})
	require.NoError(t, err)
	require.Equal(t, "femifunmi-foundation", seen.Folder)
	require.Equal(t, "auto", seen.ResourceType)
}

func TestUploadBackoffIsCapped(t *testing.T) {
	require.Equal(t, time.Second, uploadBackoff(0))
	require.Equal(t, 2*time.Second, uploadBackoff(1))
	require.Equal(t, 4*time.Second, uploadBackoff(2))
	require.Equal(t, 5*time.Second, uploadBackoff(3))
	require.Equal(t, 5*time.Second, uploadBackoff(10))
}

func TestNewMediaUploaderRequiresCredentials(t *testing.T) {
	_, err := NewMediaUploader("", "key", "secret", time.Second, 1)
	require.Error(t, err)
}
