// internal/domain/models/place.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Place is a point of interest users can visit and stamp.
//
// NOTE:
//   - NameCI is the folded name used for the unique index; the curated
//     seed set is keyed on it so seeding stays idempotent.
//   - Difficulty is 1..3, Popularity 0..5 (display ratings, not
//     aggregates of comments).
type Place struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	NameCI        string             `bson:"name_ci" json:"-"`
	Description   string             `bson:"description" json:"description"`
	ImageURL      string             `bson:"image_url" json:"image_url"`
	StampImageURL string             `bson:"stamp_image_url,omitempty" json:"stamp_image_url,omitempty"`
	Activities    []string           `bson:"activities,omitempty" json:"activities,omitempty"`
	HowToGetThere string             `bson:"how_to_get_there,omitempty" json:"how_to_get_there,omitempty"`
	Latitude      float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Difficulty    int                `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Popularity    int                `bson:"popularity,omitempty" json:"popularity,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
