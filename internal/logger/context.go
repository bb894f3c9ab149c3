package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

// WithRequestID tags ctx so loggers taken from it carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// FromCtx returns the global logger, with a request_id field when ctx has one.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	return l
}
