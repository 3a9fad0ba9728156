// internal/app/features/places/handler.go
package places

import (
	commentstore "github.com/pasaporteapp/pasaporte/internal/app/store/comments"
	pendingplacestore "github.com/pasaporteapp/pasaporte/internal/app/store/pendingplaces"
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the places feature:
// the public catalog, its comments, and user place submissions.
type Handler struct {
	Places   *placestore.Store
	Pending  *pendingplacestore.Store
	Comments *commentstore.Store
	Log      *zap.Logger
}

func NewHandler(places *placestore.Store, pending *pendingplacestore.Store, comments *commentstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Places:   places,
		Pending:  pending,
		Comments: comments,
		Log:      logger,
	}
}
