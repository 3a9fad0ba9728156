// internal/app/features/passport/routes.go
package passport

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// The user's stamp collection, newest first.
	r.Get("/", h.ServePassport)

	// STAMP a visited place.
	r.Post("/stamps", h.HandleStamp)

	return r
}
