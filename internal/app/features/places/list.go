// internal/app/features/places/list.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServePlaceList handles GET /places. An optional ?difficulty=1..3
// filters the catalog; "all" or absence means everything.
func (h *Handler) ServePlaceList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Places.List(ctx)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	out := all
	if f := normalize.Filter(r.URL.Query().Get("difficulty")); f != "" {
		want, err := strconv.Atoi(f)
		if err != nil || want < 1 || want > 3 {
			httperr.BadRequest(w, "difficulty must be 1, 2, or 3")
			return
		}
		out = make([]models.Place, 0, len(all))
		for _, p := range all {
			if p.Difficulty == want {
				out = append(out, p)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// placeView is a place plus its comment count for the detail page.
type placeView struct {
	models.Place
	CommentCount int64 `json:"comment_count"`
}

// ServePlaceView handles GET /places/{id}.
func (h *Handler) ServePlaceView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.BadRequest(w, "invalid place id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	place, err := h.Places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placestore.ErrNotFound) {
			httperr.NotFound(w, "place not found")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	count, err := h.Comments.CountByPlace(ctx, place.ID)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(placeView{Place: place, CommentCount: count})
}
