// internal/app/features/passport/stamp.go
package passport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	visitstore "github.com/pasaporteapp/pasaporte/internal/app/store/visits"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/app/system/txn"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stampRequest struct {
	PlaceID string `json:"place_id"`
}

// HandleStamp handles POST /passport/stamps.
//
// A place can be stamped once per user; the unique visit index is the
// arbiter, so concurrent stamps of the same place resolve to a single
// stamp and a single counter increment. Repeats come back as 409.
func (h *Handler) HandleStamp(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	var req stampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}
	placeID, err := primitive.ObjectIDFromHex(req.PlaceID)
	if err != nil {
		httperr.BadRequest(w, "invalid place id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	place, err := h.Places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, placestore.ErrNotFound) {
			httperr.NotFound(w, "place not found")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	// The visit insert and the counter move together. The unique visit
	// index is the arbiter: the counter only $incs when the insert won,
	// so repeats and concurrent stamps can never inflate it.
	var visit models.Visit
	err = txn.WithTransaction(ctx, h.Client, h.Log, func(ctx context.Context) error {
		v, err := h.Visits.Add(ctx, user.ID, place)
		if err != nil {
			return err
		}
		visit = v
		return h.Stats.RecordStamp(ctx, user.ID, v.VisitedAt)
	})
	if err != nil {
		if errors.Is(err, visitstore.ErrAlreadyStamped) {
			httperr.Conflict(w, "place already stamped")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("place stamped",
		zap.String("user_id", user.ID),
		zap.String("place_id", place.ID.Hex()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(visit)
}

// ServePassport handles GET /passport: the user's stamps, newest first.
func (h *Handler) ServePassport(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	visits, err := h.Visits.ListByUser(ctx, user.ID)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	out := struct {
		UserID string `json:"user_id"`
		Count  int    `json:"count"`
		Stamps any    `json:"stamps"`
	}{
		UserID: user.ID,
		Count:  len(visits),
		Stamps: visits,
	}
	if visits == nil {
		out.Stamps = []struct{}{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
