// internal/app/features/trips/tripjoin.go
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleJoinTrip handles POST /trips/{id}/join.
//
// The seat is claimed with a single conditional update in the store, so
// concurrent joins cannot exceed capacity no matter how they interleave.
// Repeat joins and full trips come back as 409s.
func (h *Handler) HandleJoinTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.BadRequest(w, "invalid trip id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	trip, err := h.Trips.Join(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, tripstore.ErrNotFound) {
			httperr.NotFound(w, "trip not found")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("trip joined",
		zap.String("trip_id", trip.ID.Hex()),
		zap.String("user_id", user.ID),
		zap.Int("participants", len(trip.Participants)),
		zap.Int("capacity", trip.Capacity))

	h.Hub.Publish(trip)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toResponse(trip))
}
