package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrInternal      = errors.New("internal error")
	ErrUploadFailed  = errors.New("upload failed")
	ErrDuplicateFile = errors.New("duplicate file")
	ErrMailFailed    = errors.New("mail failed")
)

// ValidationError carries per-field messages for inline form feedback.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return ErrInvalidInput.Error() + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
