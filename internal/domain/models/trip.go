// internal/domain/models/trip.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a scheduled group outing with a fixed participant capacity.
//
// Invariants (enforced by the trips store, arbitrated by MongoDB):
//   - Participants holds no duplicate id.
//   - len(Participants) <= Capacity at all times.
//   - CreatorID is Participants[0] from creation onward; there is no
//     leave or cancel operation.
//
// Open/Full is derived from the participant count, never stored.
type Trip struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlaceName    string             `bson:"place_name" json:"place_name"`
	ScheduledAt  time.Time          `bson:"scheduled_at" json:"scheduled_at"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Capacity     int                `bson:"capacity" json:"capacity"`
	CreatorID    string             `bson:"creator_id" json:"creator_id"`
	Participants []string           `bson:"participants" json:"participants"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// IsFull reports whether the roster has no open slot.
func (t Trip) IsFull() bool {
	return len(t.Participants) >= t.Capacity
}

// HasParticipant reports whether userID is already on the roster.
func (t Trip) HasParticipant(userID string) bool {
	for _, p := range t.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
