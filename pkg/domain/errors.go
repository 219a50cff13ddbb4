package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEntityNotFound     *notFoundError
	ErrURLSegmentRequired = errors.New("url_segment is required")
	ErrURLSegmentTaken    = errors.New("url_segment already in use")
	ErrSessionRequired    = errors.New("a visitor session is required")
)

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType string, id uuid.UUID) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id.String(),
	}
}

// NewNotFoundByKeyError is used for entities looked up by a natural key.
func NewNotFoundByKeyError(entityType string, key string) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         key,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	return errors.As(err, &notFoundError)
}
