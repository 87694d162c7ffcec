package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx).With().Str("component", component).Logger()
	return WithContext(ctx, logger)
}

// WithWorkspace creates a child logger with a workspace field
func WithWorkspace(ctx context.Context, index int) context.Context {
	logger := FromContext(ctx).With().Int("workspace", index).Logger()
	return WithContext(ctx, logger)
}

// WithPaneID creates a child logger with a pane_id field
func WithPaneID(ctx context.Context, paneID string) context.Context {
	logger := FromContext(ctx).With().Str("pane_id", paneID).Logger()
	return WithContext(ctx, logger)
}
