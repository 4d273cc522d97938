// Package template implements variable extraction and substitution for prompt template text.
package template

// file: internal/template/errors.go

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InvalidNameError reports a malformed variable name encountered during
// extraction. The offending token is carried as a structured field; message
// formatting for protocol responses happens at the serialization boundary.
type InvalidNameError struct {
	// Name is the offending token as it appeared in the template.
	Name string
}

// Error implements the standard error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid variable name: %q", e.Name)
}

// NewInvalidNameError creates an InvalidNameError with stack capture.
func NewInvalidNameError(name string) error {
	return errors.WithStack(&InvalidNameError{Name: name})
}

// AsInvalidNameError extracts an InvalidNameError from err's chain, if present.
func AsInvalidNameError(err error) (*InvalidNameError, bool) {
	var nameErr *InvalidNameError
	if errors.As(err, &nameErr) {
		return nameErr, true
	}
	return nil, false
}
