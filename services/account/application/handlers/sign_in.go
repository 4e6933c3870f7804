package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/account/application/services"
)

// SignInRequest is the request body for POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"kim@example.com"`
	Password string `json:"password" validate:"required"       example:"correct horse battery"`
} // @name SignInRequest

// SignInHandler handles POST /auth/sign-in requests.
type SignInHandler struct {
	svc   *appsvcs.AccountService
	store sessions.Store
	log   logger.Logger
}

// NewSignInHandler returns a SignInHandler backed by the given service and session store.
func NewSignInHandler(svc *appsvcs.AccountService, store sessions.Store, log logger.Logger) *SignInHandler {
	return &SignInHandler{svc: svc, store: store, log: log}
}

// Execute verifies credentials and establishes a session.
//
//	@Summary		Sign in
//	@Description	Verifies email and password and establishes a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignInRequest	true	"Credentials"
//	@Success		200		{object}	UserResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/sign-in [post]
func (h *SignInHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignInRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.Establish(h.store, w, r, user.ID); err != nil {
		h.log.ErrorContext(r.Context(), "failed to establish session after sign-in",
			"user_id", user.ID, "error", err)
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
