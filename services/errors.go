package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrUpload is returned when the blob store rejects an upload. The mutation
// is aborted before any database write.
var ErrUpload = errors.New("image upload failed")

// ValidationError reports input that fails shape or range constraints. It is
// always raised before any side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
