package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	accountdomain "github.com/ghuser/stockroom/services/account/domain"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
)

func TestWriteError_StatusAndMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"ErrNotAuthenticated", itemdomain.ErrNotAuthenticated, http.StatusUnauthorized, "Not authenticated"},
		{"ErrNameRequired", itemdomain.ErrNameRequired, http.StatusBadRequest, "Name is required"},
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound, "Item not found"},
		{"ErrNotOwner", itemdomain.ErrNotOwner, http.StatusForbidden, "Not authorized"},
		{"ErrInvalidCredentials", accountdomain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"ErrEmailTaken", accountdomain.ErrEmailTaken, http.StatusConflict, "Email already registered"},
		{"ErrUserNotFound", accountdomain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound, "Item not found"},
		{"wrapped ErrNotOwner", fmt.Errorf("%w: item %s", itemdomain.ErrNotOwner, "abc"), http.StatusForbidden, "Not authorized"},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "Internal server error"},
		{"wrapped storage error", fmt.Errorf("insert item: %w", errors.New("db down")), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["error"] != tt.wantMessage {
				t.Fatalf("expected error %q, got %q", tt.wantMessage, body["error"])
			}
		})
	}
}

// Internal detail from wrapped errors must never reach the response body.
func TestWriteError_NoInternalLeak(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("query failed on host db-prod-1: %w", errors.New("connection refused")))

	if got := w.Body.String(); got != "{\"error\":\"Internal server error\"}\n" {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, itemdomain.ErrItemNotFound)

	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type: %q", ct)
	}
}
