// internal/app/features/leaderboard/routes.go
package leaderboard

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLeaderboard)
	return r
}
