// internal/app/features/passport/handler.go
package passport

import (
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	userstatsstore "github.com/pasaporteapp/pasaporte/internal/app/store/userstats"
	visitstore "github.com/pasaporteapp/pasaporte/internal/app/store/visits"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the passport feature:
// stamping visited places and browsing the collected stamps.
type Handler struct {
	Visits *visitstore.Store
	Places *placestore.Store
	Stats  *userstatsstore.Store
	Client *mongo.Client
	Log    *zap.Logger
}

func NewHandler(visits *visitstore.Store, places *placestore.Store, stats *userstatsstore.Store, client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Visits: visits,
		Places: places,
		Stats:  stats,
		Client: client,
		Log:    logger,
	}
}
