package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/services/item/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
// All item routes sit behind the authentication guard; the session resolver
// runs further up the stack, on the whole /api subtree.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth())
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs.Item).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs.Item).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs.Item).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs.Item).Execute)
		})
	})
}
