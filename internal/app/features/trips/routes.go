// internal/app/features/trips/routes.go
package trips

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST + CREATE
	r.Get("/", h.ServeTripList)
	r.Post("/", h.HandleCreateTrip)

	// LIVE FEED (SSE) — registered before /{id} so "feed" is not
	// mistaken for a trip id.
	r.Get("/feed", h.ServeTripFeed)

	// VIEW
	r.Get("/{id}", h.ServeTripView)

	// JOIN
	r.Post("/{id}/join", h.HandleJoinTrip)

	// BOARDING PASS
	r.Get("/{id}/pass", h.ServeBoardingPass)

	return r
}
