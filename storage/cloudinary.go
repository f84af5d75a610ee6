package storage

import (
	"context"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	config "github.com/mainamuchara/course_market/configs"
)

const uploadTimeout = 10 * time.Second

// CloudinaryUploader stores files in a Cloudinary folder and returns the
// secure delivery URL.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{
		cld:    cld,
		folder: config.ConfigOr("UPLOAD_FOLDER", "course_market_media"),
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.ReadSeeker, name, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	uploadResult, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     name,
		ResourceType: "auto",
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
