// internal/app/system/watch/hub.go
package watch

import (
	"sync"

	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.uber.org/zap"
)

// subscriber channels hold a few updates so a briefly slow reader does
// not stall publishers; beyond that, updates are dropped for that
// subscriber (the SSE client re-reads state on reconnect anyway).
const subscriberBuffer = 8

// Hub fans out trip roster updates to live feed subscribers. All writes
// to trips go through this process, so publishing after each successful
// store write gives every subscriber a consistent update stream without
// requiring change-stream support from the server.
type Hub struct {
	log *zap.Logger

	mu     sync.Mutex
	subs   map[int]chan models.Trip
	nextID int
	closed bool
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		log:  logger,
		subs: make(map[int]chan models.Trip),
	}
}

// Subscribe registers a new subscriber and returns its update channel
// plus an unsubscribe func. The channel is closed on unsubscribe or hub
// shutdown; callers must stop reading after either.
func (h *Hub) Subscribe() (<-chan models.Trip, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan models.Trip, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(ch)
			}
		})
	}
	return ch, unsubscribe
}

// Publish delivers a trip update to every subscriber. Slow subscribers
// whose buffers are full miss the update rather than block the writer.
func (h *Hub) Publish(t models.Trip) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for id, ch := range h.subs {
		select {
		case ch <- t:
		default:
			h.log.Debug("dropping trip update for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("trip_id", t.ID.Hex()))
		}
	}
}

// Close shuts the hub down and closes all subscriber channels.
// Publish and Subscribe become no-ops afterwards.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
