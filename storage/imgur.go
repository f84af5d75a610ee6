package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	config "github.com/mainamuchara/course_market/configs"
)

const imgurUploadURL = "https://api.imgur.com/3/upload"

// ImgurUploader pushes files to the Imgur v3 API using anonymous Client-ID
// authentication. The /3/upload endpoint accepts both images and video.
type ImgurUploader struct {
	clientID string
	baseURL  string
	client   *http.Client
}

func NewImgurUploader() *ImgurUploader {
	return &ImgurUploader{
		clientID: config.Config("IMGUR_CLIENT_ID"),
		baseURL:  imgurUploadURL,
		client:   &http.Client{Timeout: uploadTimeout},
	}
}

type imgurResponse struct {
	Data struct {
		Link  string `json:"link"`
		Error string `json:"error"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

func (u *ImgurUploader) Upload(ctx context.Context, r io.ReadSeeker, name, contentType string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	field := "image"
	if contentType == "video/mp4" {
		field = "video"
	}

	part, err := writer.CreateFormFile(field, name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", fmt.Sprintf("Client-ID %s", u.clientID))

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("imgur upload failed, status %s: %s", resp.Status, string(respBody))
	}

	var result imgurResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if !result.Success || result.Data.Link == "" {
		return "", fmt.Errorf("imgur upload rejected: %s", result.Data.Error)
	}

	return result.Data.Link, nil
}
