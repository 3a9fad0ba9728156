// internal/app/features/identity/routes.go
package identity

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeProfile)
	r.Post("/upgrade", h.HandleUpgrade)
	r.Post("/login", h.HandleLogin)

	return r
}
