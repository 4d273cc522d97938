// Package logging provides a common interface and setup for application-wide logging.
package logging

// file: internal/logging/slog_logger.go

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// SlogLogger implements the Logger interface using the standard library's
// structured logger. All output goes to the configured writer; the server
// must keep stdout free for protocol traffic, so the default sink is stderr.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger backed by slog, writing text-formatted
// records to w at the given minimum level.
func NewSlogLogger(w io.Writer, level slog.Level) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(handler)}
}

// NewStderrLogger creates a Logger writing to stderr. When debug is true
// the level is lowered to include debug records.
func NewStderrLogger(debug bool) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return NewSlogLogger(os.Stderr, level)
}

// Debug logs a debug-level message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info-level message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning-level message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error-level message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// WithContext implements Logger. Context values are not currently mapped to
// log attributes; the logger itself is returned unchanged.
func (l *SlogLogger) WithContext(_ context.Context) Logger {
	return l
}

// WithField returns a logger with an additional key-value attribute attached
// to every record.
func (l *SlogLogger) WithField(key string, value any) Logger {
	return &SlogLogger{logger: l.logger.With(key, value)}
}
