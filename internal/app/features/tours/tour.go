// internal/app/features/tours/tour.go
package tours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	tourstore "github.com/pasaporteapp/pasaporte/internal/app/store/tours"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/htmlsanitize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const maxTourStops = 10

type createTourRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PlaceIDs    []string `json:"place_ids"`
}

// HandleCreateTour handles POST /tours.
//
// Every stop must reference a place in the public catalog; stop names
// are denormalized at creation time so tour listings never need a
// second lookup.
func (h *Handler) HandleCreateTour(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	var req createTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}

	name := normalize.PlaceName(req.Name)
	if name == "" {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "name", Reason: "must not be empty"})
		return
	}
	if len(req.PlaceIDs) == 0 {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "place_ids", Reason: "must include at least one stop"})
		return
	}
	if len(req.PlaceIDs) > maxTourStops {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "place_ids", Reason: "too many stops"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stops := make([]models.TourStop, 0, len(req.PlaceIDs))
	seen := make(map[primitive.ObjectID]bool, len(req.PlaceIDs))
	for _, raw := range req.PlaceIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httperr.BadRequest(w, "invalid place id")
			return
		}
		if seen[id] {
			httperr.Write(w, h.Log, &roster.ValidationError{Field: "place_ids", Reason: "duplicate stop"})
			return
		}
		seen[id] = true

		place, err := h.Places.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, placestore.ErrNotFound) {
				httperr.NotFound(w, "place not found: "+raw)
				return
			}
			httperr.Write(w, h.Log, err)
			return
		}
		stops = append(stops, models.TourStop{PlaceID: place.ID, PlaceName: place.Name})
	}

	tour, err := h.Tours.Create(ctx, models.Tour{
		Name:        name,
		Description: htmlsanitize.Sanitize(req.Description),
		CreatorID:   user.ID,
		Stops:       stops,
	})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("tour created",
		zap.String("tour_id", tour.ID.Hex()),
		zap.String("creator_id", user.ID),
		zap.Int("stops", len(tour.Stops)))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(tour)
}

// ServeTourList handles GET /tours, newest first.
func (h *Handler) ServeTourList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tours, err := h.Tours.List(ctx)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tours)
}

// ServeTourView handles GET /tours/{id}.
func (h *Handler) ServeTourView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.BadRequest(w, "invalid tour id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	tour, err := h.Tours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourstore.ErrNotFound) {
			httperr.NotFound(w, "tour not found")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tour)
}
