package validators

import (
	"errors"
	"strings"
)

// ErrUnsupportedType is returned when a validator receives an object of a
// type it does not know how to validate.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationErrors is the list of human-readable messages for every field
// constraint an object violated. It implements the error interface so it can
// travel through the usual error-returning call chain; handlers unwrap it
// with errors.As to render the individual messages.
type ValidationErrors []string

// Error implements the error interface by joining all messages.
func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// Messages returns the individual field-level messages.
func (v ValidationErrors) Messages() []string {
	return v
}
