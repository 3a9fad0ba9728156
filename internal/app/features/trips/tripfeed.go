// internal/app/features/trips/tripfeed.go
package trips

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
)

// ServeTripFeed handles GET /trips/feed.
//
// It streams roster updates as server-sent events. Every successful
// create or join publishes the fresh trip snapshot to the hub; this
// handler relays those snapshots until the client disconnects. An
// optional ?trip=<id> filters the stream to one trip.
func (h *Handler) ServeTripFeed(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httperr.BadRequest(w, "streaming not supported")
		return
	}

	tripFilter := normalize.QueryParam(r.URL.Query().Get("trip"))

	updates, unsubscribe := h.Hub.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case trip, open := <-updates:
			if !open {
				// Hub shut down (server stopping).
				return
			}
			if tripFilter != "" && trip.ID.Hex() != tripFilter {
				continue
			}

			data, err := json.Marshal(toResponse(trip))
			if err != nil {
				h.Log.Error("failed to encode trip update")
				continue
			}
			fmt.Fprintf(w, "event: trip\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
