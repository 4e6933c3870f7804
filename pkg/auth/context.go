package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const sessionCtxKey contextKey = "session"

// Session is the resolved authentication state attached to a request context
// by ResolveSession. A request without one is anonymous.
type Session struct {
	// ID is the server-side session identifier (Redis key suffix).
	ID string
	// UserID identifies the authenticated user the session belongs to.
	UserID uuid.UUID
}

// ErrNoSession is returned when no Session exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrNoSession = errors.New("no session in context")

// SessionFromCtx extracts the resolved session from the request context.
// Returns ErrNoSession for anonymous requests.
func SessionFromCtx(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(sessionCtxKey).(Session)
	if !ok || s.UserID == uuid.Nil {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// UserIDFromCtx extracts the authenticated user ID from the request context.
// Returns uuid.Nil and ErrNoSession for anonymous requests.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	s, err := SessionFromCtx(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return s.UserID, nil
}

// WithSession returns a new context with the given session attached.
// Used by ResolveSession after validating the session cookie.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}
