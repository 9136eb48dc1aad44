// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context, and a slog-backed sink for resolution
// warnings.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WarnSink forwards resolution warnings to a logger at warn level.
type WarnSink struct {
	Logger *slog.Logger
}

// Warn logs msg. It never fails.
func (s WarnSink) Warn(msg string) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(msg)
}
