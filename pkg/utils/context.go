package utils

import (
	"context"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
)

// GetSessionIDFromContext returns the form session id set by the session
// middleware.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(SessionIDKey)
	if val == nil {
		return "", false
	}

	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

func SetSessionContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}
