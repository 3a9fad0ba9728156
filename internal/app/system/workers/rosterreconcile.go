// internal/app/system/workers/rosterreconcile.go
package workers

import (
	"context"
	"sync"
	"time"

	tripstore "github.com/pasaporteapp/pasaporte/internal/app/store/trips"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/app/system/watch"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RosterReconcile is a background worker that scans for trips whose
// roster exceeds capacity and trims them back. The atomic join keeps
// this from happening in normal operation; the worker is the safety net
// for rosters damaged by out-of-band writes (imports, manual edits).
type RosterReconcile struct {
	trips    *tripstore.Store
	hub      *watch.Hub
	log      *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewRosterReconcile creates a new roster reconciliation worker.
// hub may be nil; repaired trips are then not announced to live feeds.
func NewRosterReconcile(trips *tripstore.Store, hub *watch.Hub, logger *zap.Logger, interval time.Duration) *RosterReconcile {
	return &RosterReconcile{
		trips:    trips,
		hub:      hub,
		log:      logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background reconciliation loop.
func (w *RosterReconcile) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("roster reconcile worker started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *RosterReconcile) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("roster reconcile worker stopped")
}

func (w *RosterReconcile) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if err := w.ReconcileOnce(context.Background()); err != nil {
				w.log.Error("roster reconciliation failed", zap.Error(err))
			}
		}
	}
}

// ReconcileOnce runs a single reconciliation pass. Exported so startup
// can run one synchronous pass before serving traffic.
func (w *RosterReconcile) ReconcileOnce(ctx context.Context) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Batch(), w.log, "roster reconcile sweep")
	defer cancel()

	damaged, err := w.trips.Overfilled(ctx)
	if err != nil {
		return err
	}
	if len(damaged) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, trip := range damaged {
		g.Go(func() error {
			return w.repair(gctx, trip)
		})
	}
	return g.Wait()
}

func (w *RosterReconcile) repair(ctx context.Context, trip models.Trip) error {
	trimmed := TrimRoster(trip.Participants, trip.CreatorID, trip.Capacity)

	if err := w.trips.ReplaceParticipants(ctx, trip.ID, trimmed); err != nil {
		return err
	}

	w.log.Warn("trimmed overfilled trip roster",
		zap.String("trip_id", trip.ID.Hex()),
		zap.Int("capacity", trip.Capacity),
		zap.Int("before", len(trip.Participants)),
		zap.Int("after", len(trimmed)))

	if w.hub != nil {
		trip.Participants = trimmed
		w.hub.Publish(trip)
	}
	return nil
}

// TrimRoster cuts a participant list down to capacity. The creator is
// always kept; remaining seats go to the earliest joiners, preserving
// order and dropping duplicates.
func TrimRoster(participants []string, creatorID string, capacity int) []string {
	if capacity < 1 {
		capacity = 1
	}

	seen := make(map[string]struct{}, capacity)
	trimmed := make([]string, 0, capacity)

	if creatorID != "" {
		trimmed = append(trimmed, creatorID)
		seen[creatorID] = struct{}{}
	}

	for _, p := range participants {
		if len(trimmed) >= capacity {
			break
		}
		if _, dup := seen[p]; dup {
			continue
		}
		trimmed = append(trimmed, p)
		seen[p] = struct{}{}
	}
	return trimmed
}
