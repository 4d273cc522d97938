// Package mcp implements the Model Context Protocol server logic for
// serving prompt templates over newline-delimited JSON-RPC 2.0.
package mcp

// file: internal/mcp/errors.go

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/DiscreteTom/shinkuro-go/internal/prompt"
	"github.com/DiscreteTom/shinkuro-go/internal/schema"
)

// JSON-RPC error codes used in responses.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// MethodNotFoundError reports a request for a method the server does not
// implement.
type MethodNotFoundError struct {
	Method string
}

// Error implements the error interface for MethodNotFoundError.
func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("method not found: %s", e.Method)
}

// NewMethodNotFoundError creates a MethodNotFoundError with a stack trace.
func NewMethodNotFoundError(method string) error {
	return errors.WithStack(&MethodNotFoundError{Method: method})
}

// MissingNameError reports a prompts/get request without the name parameter.
type MissingNameError struct{}

// Error implements the error interface for MissingNameError.
func (e *MissingNameError) Error() string {
	return "missing required parameter: name"
}

// NewMissingNameError creates a MissingNameError with a stack trace.
func NewMissingNameError() error {
	return errors.WithStack(&MissingNameError{})
}

// PromptNotFoundError reports a prompts/get request naming an unknown prompt.
type PromptNotFoundError struct {
	Name string
}

// Error implements the error interface for PromptNotFoundError.
func (e *PromptNotFoundError) Error() string {
	return fmt.Sprintf("prompt not found: %s", e.Name)
}

// NewPromptNotFoundError creates a PromptNotFoundError with a stack trace.
func NewPromptNotFoundError(name string) error {
	return errors.WithStack(&PromptNotFoundError{Name: name})
}

// mapError converts a handler error into JSON-RPC error components. Every
// request-level failure maps to invalid params except unknown methods;
// anything unrecognized is an internal error.
func mapError(err error) *ErrorObject {
	var methodErr *MethodNotFoundError
	if errors.As(err, &methodErr) {
		return &ErrorObject{Code: CodeMethodNotFound, Message: methodErr.Error()}
	}

	var nameErr *MissingNameError
	if errors.As(err, &nameErr) {
		return &ErrorObject{Code: CodeInvalidParams, Message: nameErr.Error()}
	}

	var notFoundErr *PromptNotFoundError
	if errors.As(err, &notFoundErr) {
		return &ErrorObject{Code: CodeInvalidParams, Message: notFoundErr.Error()}
	}

	if missingErr, ok := prompt.AsMissingArgumentError(err); ok {
		return &ErrorObject{Code: CodeInvalidParams, Message: missingErr.Error()}
	}

	if valErr, ok := schema.AsValidationError(err); ok {
		return &ErrorObject{Code: CodeInvalidParams, Message: valErr.Error()}
	}

	return &ErrorObject{Code: CodeInternalError, Message: "internal error"}
}
