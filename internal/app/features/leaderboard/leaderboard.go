// internal/app/features/leaderboard/leaderboard.go
package leaderboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
)

type entry struct {
	Rank        int       `json:"rank"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Stamps      int64     `json:"stamps"`
	LastVisitAt time.Time `json:"last_visit_at"`
}

// ServeLeaderboard handles GET /leaderboard: explorers ranked by stamp
// count, most recent visit breaking ties. Users without a display name
// show up as "Explorador anónimo".
func (h *Handler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultLimit)
	if raw := normalize.QueryParam(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > 100 {
			httperr.BadRequest(w, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	top, err := h.Stats.Top(ctx, limit)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	entries := make([]entry, 0, len(top))
	for i, s := range top {
		entries = append(entries, entry{
			Rank:        i + 1,
			UserID:      s.UserID,
			DisplayName: displayName(s),
			Stamps:      s.StampedPlacesCount,
			LastVisitAt: s.LastVisitAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

func displayName(s models.UserStats) string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return "Explorador anónimo"
}
