// internal/app/features/identity/profile.go
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	identitystore "github.com/pasaporteapp/pasaporte/internal/app/store/identities"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
)

type profileResponse struct {
	UserID      string     `json:"user_id"`
	DisplayName string     `json:"display_name,omitempty"`
	Upgraded    bool       `json:"upgraded"`
	UpgradedAt  *time.Time `json:"upgraded_at,omitempty"`
}

// ServeProfile handles GET /me. The session is the source of truth for
// the id; the upgrade record fills in when the id was claimed.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	resp := profileResponse{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Upgraded:    user.Upgraded,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Identities.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		resp.DisplayName = rec.DisplayName
		resp.Upgraded = true
		resp.UpgradedAt = &rec.UpgradedAt
	case errors.Is(err, identitystore.ErrNotFound):
		// purely anonymous, nothing to add
	default:
		httperr.Write(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
