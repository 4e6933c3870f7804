package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/account/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/account/application/services"
)

// AccountRoutes registers authentication endpoints on the provided chi router.
// None of these sit behind the authentication guard — they are how a session
// comes to exist in the first place.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", handlers.NewSignUpHandler(svcs.Account, a.SessionStore, a.Logger).Execute)
		r.Post("/sign-in", handlers.NewSignInHandler(svcs.Account, a.SessionStore, a.Logger).Execute)
		r.Post("/sign-out", handlers.NewSignOutHandler(a.SessionStore, a.Logger).Execute)
		r.Get("/session", handlers.NewGetSessionHandler(svcs.Account).Execute)
	})
}
