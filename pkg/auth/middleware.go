package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
)

// SessionName is the cookie name carrying the encrypted session ID.
const SessionName = "stockroom_session"

const sessionUserIDKey = "user_id"

// ResolveSession is a chi middleware that resolves the session cookie and, if
// valid, attaches a Session to the request context. It makes no authorization
// decision: a missing, invalid, or expired cookie simply leaves the request
// anonymous and passes it through. Guard protected routes with RequireAuth.
func ResolveSession(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil || session.IsNew {
				next.ServeHTTP(w, r)
				return
			}

			userIDStr, ok := session.Values[sessionUserIDKey].(string)
			if !ok || userIDStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "user_id", userIDStr, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSession(r.Context(), Session{ID: session.ID, UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth is a chi middleware that rejects requests ResolveSession left
// anonymous. It must run after ResolveSession.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := SessionFromCtx(r.Context()); err != nil {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"message": "You are not authenticated"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Establish creates a fresh session for userID and writes the session cookie.
// Called by the account service after successful sign-up or sign-in.
func Establish(store sessions.Store, w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	session, err := store.New(r, SessionName)
	if err != nil {
		return err
	}
	session.Values[sessionUserIDKey] = userID.String()
	return session.Save(r, w)
}

// Clear destroys the current session (if any) and expires the cookie.
func Clear(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		// A tampered cookie still gets expired client-side.
		session, _ = store.New(r, SessionName)
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
