// internal/app/features/tours/handler.go
package tours

import (
	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	tourstore "github.com/pasaporteapp/pasaporte/internal/app/store/tours"
	"go.uber.org/zap"
)

type Handler struct {
	Tours  *tourstore.Store
	Places *placestore.Store
	Log    *zap.Logger
}

func NewHandler(tours *tourstore.Store, places *placestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Tours:  tours,
		Places: places,
		Log:    logger,
	}
}
