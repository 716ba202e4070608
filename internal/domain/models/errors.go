package models

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a requested record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// ConfigurationError reports a reference to missing or inconsistent reference
// data, e.g. a batch pointing at an unknown breed.
type ConfigurationError struct {
	Entity string
	ID     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: unknown %s %q", e.Entity, e.ID)
}

// ValidationError reports an out-of-range or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

// InvalidInputError reports a value that cannot be processed, e.g. a zero
// ideal weight reaching the deviation analysis.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
