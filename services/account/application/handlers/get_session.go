package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/account/application/services"
	accountdomain "github.com/ghuser/stockroom/services/account/domain"
)

// SessionResponse is returned by GET /auth/session for authenticated callers.
// Anonymous callers receive a JSON null body with status 200.
type SessionResponse struct {
	Session sessionInfo  `json:"session"`
	User    UserResponse `json:"user"`
} // @name SessionResponse

type sessionInfo struct {
	ID     string    `json:"id"`
	UserID uuid.UUID `json:"userId"`
}

// GetSessionHandler handles GET /auth/session requests.
type GetSessionHandler struct {
	svc *appsvcs.AccountService
}

// NewGetSessionHandler returns a GetSessionHandler backed by the given service.
func NewGetSessionHandler(svc *appsvcs.AccountService) *GetSessionHandler {
	return &GetSessionHandler{svc: svc}
}

// Execute reports the caller's current session, or null if anonymous.
// An anonymous request is a normal outcome here, never an error.
//
//	@Summary		Get session
//	@Description	Returns the current session and user, or null when not signed in
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Router			/auth/session [get]
func (h *GetSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, err := auth.SessionFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusOK, nil)
		return
	}

	user, err := h.svc.GetByID(r.Context(), session.UserID)
	if err != nil {
		// The session outlived the user row; report anonymous rather than 404.
		if errors.Is(err, accountdomain.ErrUserNotFound) {
			httpx.JSON(w, http.StatusOK, nil)
			return
		}
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SessionResponse{
		Session: sessionInfo{ID: session.ID, UserID: session.UserID},
		User:    toUserResponse(user),
	})
}
