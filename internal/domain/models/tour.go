// internal/domain/models/tour.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourStop is one ordered stop in a tour. PlaceName is denormalized
// from the place document at creation time.
type TourStop struct {
	PlaceID   primitive.ObjectID `bson:"place_id" json:"place_id"`
	PlaceName string             `bson:"place_name" json:"place_name"`
}

// Tour is a user-assembled sequence of place stops.
type Tour struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatorID   string             `bson:"creator_id" json:"creator_id"`
	Stops       []TourStop         `bson:"stops" json:"stops"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
