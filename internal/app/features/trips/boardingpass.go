// internal/app/features/trips/boardingpass.go
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// boardingPass is the shareable proof of a claimed seat.
type boardingPass struct {
	TripID      string    `json:"trip_id"`
	PlaceName   string    `json:"place_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	UserID      string    `json:"user_id"`
	Seat        int       `json:"seat"`
	Capacity    int       `json:"capacity"`
	IsCreator   bool      `json:"is_creator"`
}

// ServeBoardingPass handles GET /trips/{id}/pass.
//
// Only participants hold a pass; the seat number is the user's position
// in the roster (the creator is always seat 1).
func (h *Handler) ServeBoardingPass(w http.ResponseWriter, r *http.Request) {
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

	seat := 0
	for i, p := range trip.Participants {
		if p == user.ID {
			seat = i + 1
			break
		}
	}
	if seat == 0 {
		httperr.NotFound(w, "no boarding pass: user has not joined this trip")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(boardingPass{
		TripID:      trip.ID.Hex(),
		PlaceName:   trip.PlaceName,
		ScheduledAt: trip.ScheduledAt,
		UserID:      user.ID,
		Seat:        seat,
		Capacity:    trip.Capacity,
		IsCreator:   trip.CreatorID == user.ID,
	})
}
