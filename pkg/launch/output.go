package launch

import (
	"context"

	"github.com/rs/zerolog"
)

type logKey struct{}

// log returns the logger attached with WithLogger, falling back to the one stored by
// zerolog itself (a disabled logger if there is none)
func log(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(logKey{}).(*zerolog.Logger); ok {
		return logger
	}

	return zerolog.Ctx(ctx)
}

// WithLogger attaches the given logger to the context
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, logKey{}, logger)
}
