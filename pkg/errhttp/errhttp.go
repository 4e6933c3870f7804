// Package errhttp maps domain sentinel errors to HTTP status codes and
// canonical client-facing messages. Add a case to mapError for each new
// domain sentinel error.
//
// Wire messages are fixed strings, never err.Error(): wrapped errors carry
// internal context ("query item: ...") that must not reach clients, and the
// API contract pins the exact JSON bodies ({"error":"Item not found"} etc.).
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	accountdomain "github.com/ghuser/stockroom/services/account/domain"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes the canonical JSON
// error response. Uses errors.Is() so wrapped sentinel errors are matched
// correctly. Unrecognized errors (storage failures and the like) become a
// generic 500 with no internal detail.
func WriteError(w http.ResponseWriter, err error) {
	status, message := mapError(err)
	httpx.JSONError(w, status, message)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, itemdomain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "Not authenticated" // 401
	case errors.Is(err, itemdomain.ErrNameRequired):
		return http.StatusBadRequest, "Name is required" // 400
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, "Item not found" // 404
	case errors.Is(err, itemdomain.ErrNotOwner):
		return http.StatusForbidden, "Not authorized" // 403
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password" // 401
	case errors.Is(err, accountdomain.ErrEmailTaken):
		return http.StatusConflict, "Email already registered" // 409
	case errors.Is(err, accountdomain.ErrUserNotFound):
		return http.StatusNotFound, "User not found" // 404
	default:
		return http.StatusInternalServerError, "Internal server error" // 500
	}
}
