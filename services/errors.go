package services

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a rejected input field before any side effect runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports that no course exists for the requested ID.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course not found with ID: %s", e.ID)
}

// UploadError wraps a failure of the storage provider while uploading media.
type UploadError struct {
	Media string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s: %v", e.Media, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a database failure.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save course to database: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
