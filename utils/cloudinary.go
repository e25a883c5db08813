package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrUploadTimeout marks an upload attempt that hit the configured
// deadline. Timeouts are the only retryable upload failure.
var ErrUploadTimeout = errors.New("cloudinary upload timed out")

// UploadRejectedError is a remote-side rejection (bad payload, bad
// credentials, provider error). Never retried.
type UploadRejectedError struct {
	Message string
}

func (e *UploadRejectedError) Error() string {
	return fmt.Sprintf("cloudinary rejected upload: %s", e.Message)
}

type UploadOptions struct {
	Folder       string
	ResourceType string // image, video or auto
}

type UploadResult struct {
	SecureURL    string `json:"secureUrl"`
	PublicID     string `json:"publicId"`
	ResourceType string `json:"resourceType"`
	Format       string `json:"format"`
	Bytes        int    `json:"bytes"`
}

// MediaUploader wraps the Cloudinary upload API with a per-attempt
// timeout and a retry budget that applies to timeouts only.
type MediaUploader struct {
	timeout    time.Duration
	retryCount int

	uploadOnce func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error)
	sleep      func(d time.Duration)
}

func NewMediaUploader(cloudName, apiKey, apiSecret string, timeout time.Duration, retryCount int) (*MediaUploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("missing Cloudinary configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}

	u := &MediaUploader{
		timeout:    timeout,
		retryCount: retryCount,
		sleep:      time.Sleep,
	}
	u.uploadOnce = func(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
		resp, err := cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
			Folder:       opts.Folder,
			ResourceType: opts.ResourceType,
		})
		if err != nil {
			return UploadResult{}, err
		}
		if resp.Error.Message != "" {
			return UploadResult{}, &UploadRejectedError{Message: resp.Error.Message}
		}

		return UploadResult{
			SecureURL:    resp.SecureURL,
			PublicID:     resp.PublicID,
			ResourceType: resp.ResourceType,
			Format:       resp.Format,
			Bytes:        resp.Bytes,
		}, nil
	}

	return u, nil
}

// Upload pushes a buffer to the media host and returns its durable URL.
// A timed-out attempt is retried with exponential backoff (capped at 5s
// between attempts) while the retry budget lasts; any other failure is
// returned immediately.
func (u *MediaUploader) Upload(ctx context.Context, data []byte, opts UploadOptions) (UploadResult, error) {
	if opts.Folder == "" {
		opts.Folder = "femifunmi-foundation"
	}
	if opts.ResourceType == "" {
		opts.ResourceType = "auto"
	}

	var lastErr error
	for attempt := 0; attempt <= u.retryCount; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, u.timeout)
		result, err := u.uploadOnce(attemptCtx, data, opts)
		cancel()
		if err == nil {
			return result, nil
		}

		if ctx.Err() != nil {
			// Caller is gone; do not keep retrying on its behalf.
			return UploadResult{}, ctx.Err()
		}

		if !errors.Is(err, context.DeadlineExceeded) {
			return UploadResult{}, err
		}

		lastErr = fmt.Errorf("%w after %s (attempt %d of %d)", ErrUploadTimeout, u.timeout, attempt+1, u.retryCount+1)
		if attempt < u.retryCount {
			u.sleep(uploadBackoff(attempt))
		}
	}

	return UploadResult{}, lastErr
}

func uploadBackoff(attempt int) time.Duration {
	if attempt > 2 {
		return 5 * time.Second
	}
	d := time.Second * (1 << uint(attempt))
	if d > 5*time.Second {
		return 5 * time.Second
	}
	return d
}
