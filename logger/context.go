package logger

import (
	"context"
)

// WithContext returns a new context with the provided logger.
func WithContext(ctx context.Context, logger AppLogger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext retrieves the logger from the context. If no logger is found, the default logger is returned.
func FromContext(ctx context.Context) AppLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey).(AppLogger); ok {
			return logger
		}
	}

	return Default()
}

// Unexported new type so that our context key never collides with another.
type contextKeyType struct{}

// contextKey is the key used for the context to store the logger.
var contextKey = contextKeyType{}
