// Package transport defines the framing layer for MCP messages.
// This file defines the structured error types used by the transport layer
// and the JSON-RPC 2.0 error code constants shared with the dispatcher.
package transport

// file: internal/transport/errors.go

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// ErrorCode defines specific numeric codes for transport-layer errors.
type ErrorCode int

// Defined error codes for the transport layer.
const (
	// ErrGeneric represents a general or unspecified transport error.
	ErrGeneric ErrorCode = iota + 1000
	// ErrMessageTooLarge signifies a message exceeded MaxMessageSize.
	ErrMessageTooLarge
	// ErrTransportClosed indicates end of input or an operation on a closed transport.
	ErrTransportClosed
)

// Error represents a transport-level error, carrying a code and the
// underlying cause alongside the message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error

	// Size and MaxSize are populated for ErrMessageTooLarge errors.
	Size    int
	MaxSize int
}

// Error implements the standard Go error interface.
func (e *Error) Error() string {
	base := fmt.Sprintf("transport error [%d] %s", e.Code, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

// Unwrap returns the underlying cause, enabling errors.Is/As traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a transport error, attaching a stack trace to the cause.
func NewError(code ErrorCode, message string, cause error) *Error {
	var wrapped error
	if cause != nil {
		wrapped = errors.WithStack(cause)
	}
	return &Error{Code: code, Message: message, Cause: wrapped}
}

// NewMessageSizeError creates a transport error for oversized messages.
func NewMessageSizeError(size, maxSize int) *Error {
	err := NewError(ErrMessageTooLarge,
		fmt.Sprintf("message size %d exceeds maximum allowed size %d", size, maxSize), nil)
	err.Size = size
	err.MaxSize = maxSize
	return err
}

// NewClosedError creates a transport error for operations on a closed transport.
func NewClosedError(operation string) *Error {
	return NewError(ErrTransportClosed,
		fmt.Sprintf("cannot perform %s on closed transport", operation), nil)
}

// IsClosedError checks whether an error (or its cause chain) signifies end of
// input or a closed transport — the normal way the dispatch loop terminates.
func IsClosedError(err error) bool {
	var transportErr *Error
	if errors.As(err, &transportErr) && transportErr.Code == ErrTransportClosed {
		return true
	}
	return errors.Is(err, io.EOF)
}

// --- JSON-RPC 2.0 Error Code Constants ---
// Standard codes used when mapping errors to JSON-RPC responses.
const (
	// JSONRPCParseError indicates invalid JSON was received by the server.
	JSONRPCParseError = -32700
	// JSONRPCInvalidRequest indicates the JSON sent is not a valid Request object.
	JSONRPCInvalidRequest = -32600
	// JSONRPCMethodNotFound indicates the method does not exist / is not available.
	JSONRPCMethodNotFound = -32601
	// JSONRPCInvalidParams indicates invalid method parameter(s).
	JSONRPCInvalidParams = -32602
	// JSONRPCInternalError indicates an internal JSON-RPC error.
	JSONRPCInternalError = -32603
)
