package ctxutil

import (
	"context"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	languageKey  ctxKey = "language"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithLanguage stores the client's preferred language tag in the context.
func WithLanguage(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, languageKey, tag)
}

// LanguageFromCtx extracts the preferred language tag from the context.
// Returns an empty string if the client did not state one.
func LanguageFromCtx(ctx context.Context) string {
	tag, _ := ctx.Value(languageKey).(string)
	return tag
}
