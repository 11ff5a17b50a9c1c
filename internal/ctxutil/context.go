// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const requestIDKey contextKey = "ctxutil.requestID"

// WithRequestID adds a request ID to the context for tracing.
// A request ID is generated per HTTP request for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and true if found, empty string and false otherwise.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// PreserveTracing creates a detached context that keeps the request ID but
// is independent of the parent's cancellation and deadlines. Useful for
// work that must outlive the HTTP response.
func PreserveTracing(ctx context.Context) context.Context {
	newCtx := context.Background()
	if requestID, ok := GetRequestID(ctx); ok && requestID != "" {
		newCtx = WithRequestID(newCtx, requestID)
	}
	return newCtx
}
