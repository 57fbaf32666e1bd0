// Package repository holds the data-access layer for items and locations,
// including the rules that keep the two tables coherent: merge-on-insert for
// duplicate items and cascading rename/delete from a location to its items.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Sentinel errors surfaced by the repositories. Handlers match them with
// errors.Is to pick a status code; anything else is a store failure.
var (
	ErrValidation = errors.New("invalid input")
	ErrInvalidID  = errors.New("invalid id format")
	ErrNotFound   = errors.New("not found")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseID converts a raw path parameter into a UUID. A malformed id is
// rejected here regardless of whether any record could match it.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// hasFailedTag reports whether any field failed validation on the given tag.
func hasFailedTag(err error, tag string) bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
