// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user's review of a place. Text is stored sanitized.
// DifficultyRating is 1..3, ExperienceRating 1..5.
type Comment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlaceID          primitive.ObjectID `bson:"place_id" json:"place_id"`
	UserID           string             `bson:"user_id" json:"user_id"`
	Text             string             `bson:"text" json:"text"`
	DifficultyRating int                `bson:"difficulty_rating" json:"difficulty_rating"`
	ExperienceRating int                `bson:"experience_rating" json:"experience_rating"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
