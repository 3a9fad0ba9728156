// internal/app/features/trips/handler.go
package trips

import (
	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	"github.com/pasaporteapp/pasaporte/internal/app/system/watch"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the trips feature.
// It holds the trips store, the live-update hub, and the logger so the
// various handlers (list, create, join, feed, boarding pass) can all
// share the same core dependencies.
type Handler struct {
	Trips *tripstore.Store
	Hub   *watch.Hub
	Log   *zap.Logger
}

// NewHandler constructs a new trips Handler. It is typically called
// from the bootstrap BuildHandler function, where the application's
// stores and logger are already initialized.
func NewHandler(trips *tripstore.Store, hub *watch.Hub, logger *zap.Logger) *Handler {
	return &Handler{
		Trips: trips,
		Hub:   hub,
		Log:   logger,
	}
}
