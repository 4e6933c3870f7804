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

// SignUpRequest is the request body for POST /auth/sign-up.
type SignUpRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=255"  example:"Kim"`
	Email    string `json:"email"    validate:"required,email,max=255"  example:"kim@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128"  example:"correct horse battery"`
} // @name SignUpRequest

// SignUpHandler handles POST /auth/sign-up requests.
type SignUpHandler struct {
	svc   *appsvcs.AccountService
	store sessions.Store
	log   logger.Logger
}

// NewSignUpHandler returns a SignUpHandler backed by the given service and session store.
func NewSignUpHandler(svc *appsvcs.AccountService, store sessions.Store, log logger.Logger) *SignUpHandler {
	return &SignUpHandler{svc: svc, store: store, log: log}
}

// Execute registers a new user and signs them in.
//
//	@Summary		Sign up
//	@Description	Registers a new user with email and password and establishes a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignUpRequest	true	"Registration request"
//	@Success		200		{object}	UserResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/sign-up [post]
func (h *SignUpHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignUpRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.Establish(h.store, w, r, user.ID); err != nil {
		h.log.ErrorContext(r.Context(), "failed to establish session after sign-up",
			"user_id", user.ID, "error", err)
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toUserResponse(user))
}
