// internal/app/features/trips/tripnew.go
package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.uber.org/zap"
)

type createTripRequest struct {
	PlaceName   string    `json:"place_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
}

// HandleCreateTrip handles POST /trips.
//
// The creator automatically occupies the first seat. Validation runs
// before any write; a 422 response guarantees nothing was stored.
func (h *Handler) HandleCreateTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	trip, err := h.Trips.Create(ctx, roster.NewTrip{
		PlaceName:   normalize.PlaceName(req.PlaceName),
		ScheduledAt: req.ScheduledAt,
		Description: req.Description,
		Capacity:    req.Capacity,
		CreatorID:   user.ID,
	})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("trip created",
		zap.String("trip_id", trip.ID.Hex()),
		zap.String("creator_id", user.ID),
		zap.Int("capacity", trip.Capacity))

	h.Hub.Publish(trip)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toResponse(trip))
}
