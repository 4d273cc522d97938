// Package schema validates request parameters against embedded JSON schemas.
package schema

// file: internal/schema/errors.go

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ValidationError reports a parameter payload that does not conform to the
// schema for its message type.
type ValidationError struct {
	MessageType string
	Message     string
	Cause       error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s params: %s: %v", e.MessageType, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s params: %s", e.MessageType, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error { return e.Cause }

// NewValidationError creates a ValidationError with a captured stack trace.
func NewValidationError(messageType, message string, cause error) error {
	return errors.WithStack(&ValidationError{
		MessageType: messageType,
		Message:     message,
		Cause:       cause,
	})
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	ok := errors.As(err, &valErr)
	return valErr, ok
}
