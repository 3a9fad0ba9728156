// internal/app/features/leaderboard/handler.go
package leaderboard

import (
	userstatsstore "github.com/pasaporteapp/pasaporte/internal/app/store/userstats"
	"go.uber.org/zap"
)

const defaultLimit = 20

type Handler struct {
	Stats *userstatsstore.Store
	Log   *zap.Logger
}

func NewHandler(stats *userstatsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Stats: stats,
		Log:   logger,
	}
}
