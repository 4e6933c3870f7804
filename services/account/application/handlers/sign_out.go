package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
)

// SignOutHandler handles POST /auth/sign-out requests.
type SignOutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewSignOutHandler returns a SignOutHandler backed by the given session store.
func NewSignOutHandler(store sessions.Store, log logger.Logger) *SignOutHandler {
	return &SignOutHandler{store: store, log: log}
}

// Execute destroys the current session. Signing out while already signed out
// succeeds; the operation is idempotent.
//
//	@Summary		Sign out
//	@Description	Destroys the current session and expires the cookie
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]bool
//	@Router			/auth/sign-out [post]
func (h *SignOutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.Clear(h.store, w, r); err != nil {
		h.log.WarnContext(r.Context(), "failed to clear session", "error", err)
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
