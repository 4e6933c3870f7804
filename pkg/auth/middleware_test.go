package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// requestWithSession builds an *http.Request that carries a valid session
// cookie containing the given user ID.
func requestWithSession(t *testing.T, store sessions.Store, userID uuid.UUID) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	if err := Establish(store, w, r, userID); err != nil {
		t.Fatalf("establish session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// resolveThen wraps next with ResolveSession for the given store.
func resolveThen(store sessions.Store, next http.Handler) http.Handler {
	return ResolveSession(store, newTestLogger())(next)
}

func TestResolveSession_ValidCookie(t *testing.T) {
	store := newTestStore()
	userID := uuid.New()

	var captured Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = SessionFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	resolveThen(store, next).ServeHTTP(w, requestWithSession(t, store, userID))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured.UserID != userID {
		t.Fatalf("expected user %v in context, got %v", userID, captured.UserID)
	}
}

func TestResolveSession_NoCookiePassesThroughAnonymous(t *testing.T) {
	store := newTestStore()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, err := SessionFromCtx(r.Context()); err != ErrNoSession {
			t.Errorf("expected ErrNoSession, got %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	resolveThen(store, next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	if !called {
		t.Fatal("resolver must never short-circuit anonymous requests")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestResolveSession_InvalidUserIDLeftAnonymous(t *testing.T) {
	store := newTestStore()

	// Write a session whose user_id is not a UUID.
	writeReq := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	w1 := httptest.NewRecorder()
	session, _ := store.Get(writeReq, SessionName)
	session.Values[sessionUserIDKey] = "not-a-valid-uuid"
	_ = session.Save(writeReq, w1)

	r := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := SessionFromCtx(r.Context()); err == nil {
			t.Error("expected anonymous context for malformed user_id")
		}
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	resolveThen(store, next).ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireAuth_AnonymousRejected(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	w := httptest.NewRecorder()
	RequireAuth()(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	want := `{"message":"You are not authenticated"}`
	if got := w.Body.String(); got != want+"\n" {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestRequireAuth_AuthenticatedPassesThrough(t *testing.T) {
	store := newTestStore()
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	resolveThen(store, RequireAuth()(next)).ServeHTTP(w, requestWithSession(t, store, userID))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestClear_ExpiresCookie(t *testing.T) {
	store := newTestStore()
	r := requestWithSession(t, store, uuid.New())

	w := httptest.NewRecorder()
	if err := Clear(store, w, r); err != nil {
		t.Fatalf("clear session: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected an expired session cookie to be written")
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("expected negative MaxAge, got %d", cookies[0].MaxAge)
	}
}
