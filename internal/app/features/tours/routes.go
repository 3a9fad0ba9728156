// internal/app/features/tours/routes.go
package tours

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeTourList)
	r.Post("/", h.HandleCreateTour)
	r.Get("/{id}", h.ServeTourView)

	return r
}
