package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const invocationIDKey ctxKey = "invocationID"

// GenerateInvocationID creates a new UUID for tracing command invocations.
func GenerateInvocationID() string {
	return uuid.NewString()
}

// WithInvocationID returns a new context containing the invocation ID.
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	return context.WithValue(ctx, invocationIDKey, invocationID)
}

// InvocationIDFromContext extracts the invocation ID from the context, if present.
func InvocationIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(invocationIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the invocation_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := InvocationIDFromContext(ctx); ok {
		return slog.Default().With("invocation_id", id)
	}
	return slog.Default()
}
