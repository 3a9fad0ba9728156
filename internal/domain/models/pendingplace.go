// internal/domain/models/pendingplace.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingPlace is a user-submitted place suggestion awaiting review.
// Submissions never appear in the public place list until promoted.
type PendingPlace struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Activities    []string           `bson:"activities,omitempty" json:"activities,omitempty"`
	HowToGetThere string             `bson:"how_to_get_there,omitempty" json:"how_to_get_there,omitempty"`
	SubmittedBy   string             `bson:"submitted_by" json:"submitted_by"`
	Status        string             `bson:"status" json:"status"` // "pending"
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
