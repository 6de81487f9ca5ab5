// Package catalog holds the error taxonomy and validation rules shared by the
// category, sub-category, and item services.
package catalog

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrMissingLookup is returned by id-or-name lookups when the caller supplied
// neither parameter.
var ErrMissingLookup = errors.New("provide id or name")

// ValidationError indicates a payload that failed input validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AlreadyExistsError indicates a create that collides with an existing entity
// of the same name.
type AlreadyExistsError struct {
	Entity string
	Name   string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Name)
}
