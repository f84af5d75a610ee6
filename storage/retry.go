package storage

import (
	"context"
	"io"
	"log"
)

// retryingUploader retries a failed upload exactly once. The provider call
// already carries its own timeout, so a stalled attempt fails instead of
// hanging the caller.
type retryingUploader struct {
	next Uploader
}

func WithRetry(next Uploader) Uploader {
	return &retryingUploader{next: next}
}

func (u *retryingUploader) Upload(ctx context.Context, r io.ReadSeeker, name, contentType string) (string, error) {
	url, err := u.next.Upload(ctx, r, name, contentType)
	if err == nil {
		return url, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	log.Printf("Upload of %s failed, retrying once: %v", name, err)
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return "", err
	}
	return u.next.Upload(ctx, r, name, contentType)
}
