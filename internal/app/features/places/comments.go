// internal/app/features/places/comments.go
package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/htmlsanitize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type addCommentRequest struct {
	Text             string `json:"text"`
	DifficultyRating int    `json:"difficulty_rating"`
	ExperienceRating int    `json:"experience_rating"`
}

// HandleAddComment handles POST /places/{id}/comments.
//
// Difficulty is rated 1..3, the overall experience 1..5. Text is
// sanitized before storage.
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	placeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.BadRequest(w, "invalid place id")
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}

	text := htmlsanitize.Sanitize(req.Text)
	if text == "" {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "text", Reason: "must not be empty"})
		return
	}
	if req.DifficultyRating < 1 || req.DifficultyRating > 3 {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "difficulty_rating", Reason: "must be between 1 and 3"})
		return
	}
	if req.ExperienceRating < 1 || req.ExperienceRating > 5 {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "experience_rating", Reason: "must be between 1 and 5"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The place must exist; commenting on ghosts is a 404.
	if _, err := h.Places.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, placestore.ErrNotFound) {
			httperr.NotFound(w, "place not found")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	comment, err := h.Comments.Add(ctx, models.Comment{
		PlaceID:          placeID,
		UserID:           user.ID,
		Text:             text,
		DifficultyRating: req.DifficultyRating,
		ExperienceRating: req.ExperienceRating,
	})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(comment)
}

// ServeComments handles GET /places/{id}/comments, newest first.
func (h *Handler) ServeComments(w http.ResponseWriter, r *http.Request) {
	placeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httperr.BadRequest(w, "invalid place id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	comments, err := h.Comments.ListByPlace(ctx, placeID)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(comments)
}
