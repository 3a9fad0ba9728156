// internal/app/features/places/routes.go
package places

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// CATALOG
	r.Get("/", h.ServePlaceList)

	// SUBMISSIONS — registered before /{id} so "submissions" is not
	// mistaken for a place id.
	r.Get("/submissions", h.ServeMySubmissions)
	r.Post("/submissions", h.HandleSubmitPlace)

	// VIEW
	r.Get("/{id}", h.ServePlaceView)

	// COMMENTS
	r.Get("/{id}/comments", h.ServeComments)
	r.Post("/{id}/comments", h.HandleAddComment)

	return r
}
