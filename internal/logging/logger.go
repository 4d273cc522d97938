// Package logging provides the logging abstraction used across the server.
// Stdout carries the MCP protocol, so every implementation writes elsewhere
// (stderr in practice); a no-op logger stands in wherever none is configured.
package logging

// file: internal/logging/logger.go

import (
	"context"
)

// Logger is the minimal structured-logging surface the server's components
// depend on. Keeping it an interface lets tests run silent and keeps the
// slog wiring in one place.
type Logger interface {
	// Debug logs a debug-level message with alternating key-value args.
	Debug(msg string, args ...any)

	// Info logs an info-level message.
	Info(msg string, args ...any)

	// Warn logs a warning-level message.
	Warn(msg string, args ...any)

	// Error logs an error-level message.
	Error(msg string, args ...any)

	// WithContext returns a logger carrying values from ctx.
	WithContext(ctx context.Context) Logger

	// WithField returns a logger that attaches key/value to every record.
	WithField(key string, value any) Logger
}

// NoopLogger discards everything. It is the fallback when a constructor
// receives a nil logger.
type NoopLogger struct{}

// Debug implements Logger, discarding the record.
func (l *NoopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger, discarding the record.
func (l *NoopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger, discarding the record.
func (l *NoopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger, discarding the record.
func (l *NoopLogger) Error(_ string, _ ...any) {}

// WithContext implements Logger, returning the same no-op logger.
func (l *NoopLogger) WithContext(_ context.Context) Logger { return l }

// WithField implements Logger, returning the same no-op logger.
func (l *NoopLogger) WithField(_ string, _ any) Logger { return l }

var noop = &NoopLogger{}

// GetNoopLogger returns the shared no-op logger.
func GetNoopLogger() Logger {
	return noop
}

// defaultLogger backs GetLogger. It starts as the no-op logger until the CLI
// installs a real one.
var defaultLogger = GetNoopLogger()

// SetDefaultLogger installs the process-wide default logger. A nil argument
// is ignored.
func SetDefaultLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// GetLogger returns the default logger tagged with a component name.
func GetLogger(name string) Logger {
	return defaultLogger.WithField("component", name)
}
