package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

//nolint:gochecknoglobals // context keys are package globals by convention
var loggerKey = contextKey{}

// WithLogger attaches a logger to the context. The preview engine
// threads the context through Rebuild, so callers can route
// handler-fault and scan warnings to a logger of their choosing.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached via WithLogger, falling back
// to the package default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// FromContextFor returns the context logger tagged with a component
// name under FieldComponent.
func FromContextFor(ctx context.Context, component string) *log.Logger {
	return FromContext(ctx).With(FieldComponent, component)
}
