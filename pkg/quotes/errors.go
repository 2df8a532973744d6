package quotes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a tag filter matched no quotes.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCollection indicates an empty collection or a quote with a missing field.
	ErrInvalidCollection = errors.New("invalid quote collection")
)

// NotFoundError is returned by Pick when no quote carries the requested tag.
type NotFoundError struct {
	Tag string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No quotes found for tag: '%s'.", e.Tag)
}

// Unwrap returns ErrNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
