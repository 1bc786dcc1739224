package service

import (
	"fmt"

	"github.com/rrogerthat/shoppinglist/internal/storage"
)

// ValidationError reports malformed or incomplete client input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports that no entity of Resource has the given ID.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Unwrap lets errors.Is(err, storage.ErrNotFound) match.
func (e *NotFoundError) Unwrap() error {
	return storage.ErrNotFound
}

// missingField builds the ValidationError for an absent required field.
func missingField(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("missing `%s` in request body", field),
	}
}

// checkPathID rejects a body ID that disagrees with the path ID.
func checkPathID(pathID string, bodyID *string) error {
	if bodyID != nil && *bodyID != pathID {
		return &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("request path id (%s) and request body id (%s) must match", pathID, *bodyID),
		}
	}
	return nil
}
