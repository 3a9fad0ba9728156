// internal/domain/roster/roster.go

// Package roster holds the join-eligibility rules for group trips.
// The rules are pure functions over a trip snapshot; the trips store
// re-states them inside an atomic conditional update so the database,
// not the snapshot, has the last word (see store/trips).
package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel outcomes of a join attempt. Handlers surface both as
// informational conflicts; neither warrants a retry.
var (
	ErrAlreadyJoined = errors.New("user has already joined this trip")
	ErrTripFull      = errors.New("trip is at capacity")
)

// Status values derived from the participant count.
const (
	StatusOpen = "open"
	StatusFull = "full"
)

// ValidationError names the first invalid field of a create request.
// The caller must not attempt a store write when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewTrip is the validated input for creating a trip.
type NewTrip struct {
	PlaceName   string
	ScheduledAt time.Time
	Description string
	Capacity    int
	CreatorID   string
}

// ValidateNewTrip checks a create request against the trip invariants.
// now anchors the "not in the past" check so callers and tests agree on
// the clock.
func ValidateNewTrip(in NewTrip, now time.Time) error {
	if strings.TrimSpace(in.PlaceName) == "" {
		return &ValidationError{Field: "place_name", Reason: "must not be empty"}
	}
	if in.ScheduledAt.IsZero() {
		return &ValidationError{Field: "scheduled_at", Reason: "must be provided"}
	}
	if in.ScheduledAt.Before(now.Truncate(time.Minute)) {
		return &ValidationError{Field: "scheduled_at", Reason: "must not be in the past"}
	}
	if in.Capacity < 1 {
		return &ValidationError{Field: "capacity", Reason: "must be at least 1"}
	}
	if strings.TrimSpace(in.CreatorID) == "" {
		return &ValidationError{Field: "creator_id", Reason: "must be provided"}
	}
	return nil
}

// CheckJoin reports whether userID may join a roster with the given
// participants and capacity. Membership is checked before capacity so a
// repeat join on a full trip reads as "already joined", not "full".
func CheckJoin(participants []string, capacity int, userID string) error {
	for _, p := range participants {
		if p == userID {
			return ErrAlreadyJoined
		}
	}
	if len(participants) >= capacity {
		return ErrTripFull
	}
	return nil
}

// Status derives the open/full condition from the participant count.
func Status(participants []string, capacity int) string {
	if len(participants) >= capacity {
		return StatusFull
	}
	return StatusOpen
}
