package domain

import (
	"errors"
)

// ErrNotFound is returned when an entity or its parent entity is absent.
// It is an expected outcome, not a storage fault; the transport layer maps
// it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a request before any mutation happens, e.g. an
// edit whose username does not match the stored author.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
