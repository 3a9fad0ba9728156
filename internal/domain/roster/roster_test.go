package roster

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func validNew() NewTrip {
	return NewTrip{
		PlaceName:   "Casco Viejo",
		ScheduledAt: now.Add(48 * time.Hour),
		Capacity:    4,
		CreatorID:   "user-a",
	}
}

func TestValidateNewTrip_Valid(t *testing.T) {
	if err := ValidateNewTrip(validNew(), now); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateNewTrip_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*NewTrip)
		wantField string
	}{
		{"empty place name", func(in *NewTrip) { in.PlaceName = "" }, "place_name"},
		{"whitespace place name", func(in *NewTrip) { in.PlaceName = "   " }, "place_name"},
		{"zero scheduled time", func(in *NewTrip) { in.ScheduledAt = time.Time{} }, "scheduled_at"},
		{"past scheduled time", func(in *NewTrip) { in.ScheduledAt = now.Add(-time.Hour) }, "scheduled_at"},
		{"zero capacity", func(in *NewTrip) { in.Capacity = 0 }, "capacity"},
		{"negative capacity", func(in *NewTrip) { in.Capacity = -3 }, "capacity"},
		{"missing creator", func(in *NewTrip) { in.CreatorID = "" }, "creator_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validNew()
			tt.mutate(&in)

			err := ValidateNewTrip(in, now)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field: got %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateNewTrip_PresentTimeAllowed(t *testing.T) {
	in := validNew()
	in.ScheduledAt = now
	if err := ValidateNewTrip(in, now); err != nil {
		t.Fatalf("scheduling for the current time should be allowed, got %v", err)
	}
}

func TestCheckJoin(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		capacity     int
		userID       string
		want         error
	}{
		{"open slot", []string{"a"}, 2, "b", nil},
		{"already joined", []string{"a", "b"}, 3, "b", ErrAlreadyJoined},
		{"full", []string{"a", "b"}, 2, "c", ErrTripFull},
		{"already joined wins over full", []string{"a", "b"}, 2, "b", ErrAlreadyJoined},
		{"creator counts toward capacity", []string{"a"}, 1, "b", ErrTripFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckJoin(tt.participants, tt.capacity, tt.userID); got != tt.want {
				t.Errorf("CheckJoin() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Any sequence of joins filtered through CheckJoin keeps the roster
// within capacity and free of duplicates.
func TestCheckJoin_SequencesHoldInvariants(t *testing.T) {
	const capacity = 3
	attempts := []string{"a", "b", "a", "c", "d", "b", "e", "c", "f"}

	participants := []string{"creator"}
	for _, u := range attempts {
		if err := CheckJoin(participants, capacity, u); err == nil {
			participants = append(participants, u)
		}
	}

	if len(participants) > capacity {
		t.Fatalf("capacity invariant broken: %d > %d", len(participants), capacity)
	}
	seen := make(map[string]bool)
	for _, p := range participants {
		if seen[p] {
			t.Fatalf("duplicate participant %q", p)
		}
		seen[p] = true
	}
}

func TestStatus(t *testing.T) {
	if got := Status([]string{"a"}, 2); got != StatusOpen {
		t.Errorf("Status() = %q, want %q", got, StatusOpen)
	}
	if got := Status([]string{"a", "b"}, 2); got != StatusFull {
		t.Errorf("Status() = %q, want %q", got, StatusFull)
	}
}
