// internal/app/features/identity/handler.go
package identity

import (
	identitystore "github.com/pasaporteapp/pasaporte/internal/app/store/identities"
	userstatsstore "github.com/pasaporteapp/pasaporte/internal/app/store/userstats"
	"github.com/pasaporteapp/pasaporte/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler covers the identity feature: who the current session is,
// upgrading an anonymous id with a display name and passcode, and
// re-attaching an upgraded id from a fresh session.
type Handler struct {
	Identities *identitystore.Store
	Stats      *userstatsstore.Store
	Client     *mongo.Client
	Limiter    *ratelimit.LoginLimiter
	Log        *zap.Logger
}

func NewHandler(identities *identitystore.Store, stats *userstatsstore.Store, client *mongo.Client, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Identities: identities,
		Stats:      stats,
		Client:     client,
		Limiter:    limiter,
		Log:        logger,
	}
}
