package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeFor(t *testing.T) {
	cases := []struct {
		name     string
		declared string
		want     string
	}{
		{"cover.jpg", "application/octet-stream", "image/jpeg"},
		{"cover.JPEG", "application/octet-stream", "image/jpeg"},
		{"cover.png", "image/jpeg", "image/png"},
		{"intro.mp4", "image/jpeg", "video/mp4"},
		{"notes.pdf", "image/jpeg", "image/jpeg"},
		{"", "video/mp4", "video/mp4"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ContentTypeFor(tc.name, tc.declared), "file %q", tc.name)
	}
}

func TestFileIsEmpty(t *testing.T) {
	var missing *File
	assert.True(t, missing.IsEmpty())
	assert.True(t, (&File{Name: "cover.jpg"}).IsEmpty())
	assert.False(t, (&File{Name: "cover.jpg", Data: []byte("x")}).IsEmpty())
}
