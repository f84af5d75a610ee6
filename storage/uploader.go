// Package storage abstracts the blob-hosting provider behind a single
// Uploader interface. The concrete backend is chosen once at startup from
// configuration; handlers and services never know which provider is active.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	config "github.com/mainamuchara/course_market/configs"
)

// File is an uploaded form part captured into memory.
type File struct {
	Name string
	Data []byte
}

// IsEmpty reports whether the part carries no payload. An empty file is the
// "no file supplied" case, never an upload failure.
func (f *File) IsEmpty() bool {
	return f == nil || len(f.Data) == 0
}

// Uploader stores the content of r under the given name and returns a
// publicly reachable URL for it.
type Uploader interface {
	Upload(ctx context.Context, r io.ReadSeeker, name, contentType string) (string, error)
}

// ContentTypeFor resolves the concrete content type from the file name
// extension, falling back to the declared hint for anything unrecognised.
func ContentTypeFor(name, declared string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".mp4"):
		return "video/mp4"
	}
	return declared
}

// NewUploader builds the backend named by UPLOAD_PROVIDER and wraps it with
// the single-retry policy.
func NewUploader() (Uploader, error) {
	provider := config.ConfigOr("UPLOAD_PROVIDER", "cloudinary")

	var backend Uploader
	switch provider {
	case "cloudinary":
		cld, err := NewCloudinaryUploader()
		if err != nil {
			return nil, err
		}
		backend = cld
	case "imgur":
		backend = NewImgurUploader()
	default:
		return nil, fmt.Errorf("unknown upload provider %q", provider)
	}

	return WithRetry(backend), nil
}
