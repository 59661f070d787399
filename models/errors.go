package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Required returns the validation error for a missing or empty field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// Invalid returns a validation error for a field that failed to parse.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s %s", field, reason)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
