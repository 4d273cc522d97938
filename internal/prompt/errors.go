// Package prompt defines the prompt object served over MCP.
package prompt

// file: internal/prompt/errors.go

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ArgumentsNotEmptyError reports a record that declares argument metadata
// while auto-discovery is enabled; the two modes are mutually exclusive.
type ArgumentsNotEmptyError struct {
	// Prompt is the name of the offending prompt record.
	Prompt string
}

// Error implements the standard error interface.
func (e *ArgumentsNotEmptyError) Error() string {
	return fmt.Sprintf("prompt %q: declared arguments must be empty when argument auto-discovery is enabled", e.Prompt)
}

// NewArgumentsNotEmptyError creates an ArgumentsNotEmptyError with stack capture.
func NewArgumentsNotEmptyError(promptName string) error {
	return errors.WithStack(&ArgumentsNotEmptyError{Prompt: promptName})
}

// ArgumentMismatchError reports a construction-time contract violation: the
// set of variables extracted from the content differs from the set of
// declared argument names. Both sets are carried sorted, for reporting.
type ArgumentMismatchError struct {
	Prompt    string
	Extracted []string
	Declared  []string
}

// Error implements the standard error interface.
func (e *ArgumentMismatchError) Error() string {
	return fmt.Sprintf("prompt %q: content arguments [%s] don't match declared arguments [%s]",
		e.Prompt, strings.Join(e.Extracted, ", "), strings.Join(e.Declared, ", "))
}

// NewArgumentMismatchError creates an ArgumentMismatchError with stack capture.
func NewArgumentMismatchError(promptName string, extracted, declared []string) error {
	return errors.WithStack(&ArgumentMismatchError{
		Prompt:    promptName,
		Extracted: extracted,
		Declared:  declared,
	})
}

// MissingArgumentError reports a render call that omitted a required
// argument. It is caller-correctable and maps to an invalid-params protocol
// error at the dispatch boundary.
type MissingArgumentError struct {
	Prompt string
	Name   string
}

// Error implements the standard error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("prompt %q: missing required argument %q", e.Prompt, e.Name)
}

// NewMissingArgumentError creates a MissingArgumentError with stack capture.
func NewMissingArgumentError(promptName, argName string) error {
	return errors.WithStack(&MissingArgumentError{Prompt: promptName, Name: argName})
}

// AsMissingArgumentError extracts a MissingArgumentError from err's chain, if present.
func AsMissingArgumentError(err error) (*MissingArgumentError, bool) {
	var missErr *MissingArgumentError
	if errors.As(err, &missErr) {
		return missErr, true
	}
	return nil, false
}
