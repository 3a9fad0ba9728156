package health

import (
	"context"
	"encoding/json"
	"net/http"

	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Places *placestore.Store
	Log    *zap.Logger
}

func NewHandler(client *mongo.Client, places *placestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Places: places,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Catalog  int64  `json:"catalog_places"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "catalog_places":8 }
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// An empty catalog means seeding never ran; surface it here rather
	// than letting the first place request 200 with an empty list.
	count, err := h.Places.Count(ctx)
	if err != nil {
		h.Log.Warn("health-check: catalog count failed", zap.Error(err))
	}
	resp.Catalog = count

	_ = json.NewEncoder(w).Encode(resp)
}
