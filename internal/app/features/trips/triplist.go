// internal/app/features/trips/triplist.go
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeTripList handles GET /trips. Trips come back in creation order.
func (h *Handler) ServeTripList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	trips, err := h.Trips.List(ctx)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toResponse(t))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// ServeTripView handles GET /trips/{id}.
func (h *Handler) ServeTripView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.BadRequest(w, "invalid trip id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	trip, err := h.Trips.Get(ctx, id)
	if err != nil {
		if errors.Is(err, tripstore.ErrNotFound) {
			httperr.NotFound(w, "trip not found")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toResponse(trip))
}
