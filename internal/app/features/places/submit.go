// internal/app/features/places/submit.go
package places

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/htmlsanitize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.uber.org/zap"
)

type submitPlaceRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Activities    []string `json:"activities"`
	HowToGetThere string   `json:"how_to_get_there"`
}

// HandleSubmitPlace handles POST /places/submissions.
//
// Submissions land in a review queue and never appear in the public
// catalog directly.
func (h *Handler) HandleSubmitPlace(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	var req submitPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}

	name := normalize.PlaceName(req.Name)
	if name == "" {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "name", Reason: "must not be empty"})
		return
	}
	description := htmlsanitize.Sanitize(req.Description)
	if description == "" {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "description", Reason: "must not be empty"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	sub, err := h.Pending.Create(ctx, models.PendingPlace{
		Name:          name,
		Description:   description,
		ImageURL:      req.ImageURL,
		Activities:    req.Activities,
		HowToGetThere: htmlsanitize.Sanitize(req.HowToGetThere),
		SubmittedBy:   user.ID,
	})
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("place submitted for review",
		zap.String("submission_id", sub.ID.Hex()),
		zap.String("user_id", user.ID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sub)
}

// ServeMySubmissions handles GET /places/submissions: the requesting
// user's own review queue.
func (h *Handler) ServeMySubmissions(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	subs, err := h.Pending.ListByUser(ctx, user.ID)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}
	if subs == nil {
		subs = []models.PendingPlace{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(subs)
}
