// internal/domain/models/visit.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visit is one passport stamp: exactly one document per (user_id,
// place_id), enforced by a unique compound index. PlaceName and
// StampImageURL are denormalized so the passport page renders without
// a second lookup.
type Visit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	PlaceID       primitive.ObjectID `bson:"place_id" json:"place_id"`
	PlaceName     string             `bson:"place_name" json:"place_name"`
	StampImageURL string             `bson:"stamp_image_url,omitempty" json:"stamp_image_url,omitempty"`
	VisitedAt     time.Time          `bson:"visited_at" json:"visited_at"`
}
