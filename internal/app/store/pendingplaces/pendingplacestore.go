// internal/app/store/pendingplaces/pendingplacestore.go
package pendingplacestore

import (
	"context"
	"time"

	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statusPending = "pending"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pending_places")}
}

// Create records a place suggestion with status "pending".
func (s *Store) Create(ctx context.Context, p models.PendingPlace) (models.PendingPlace, error) {
	p.ID = primitive.NewObjectID()
	p.Status = statusPending
	p.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.PendingPlace{}, err
	}
	return p, nil
}

// ListByUser returns a user's own submissions, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.PendingPlace, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"submitted_by": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []models.PendingPlace
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
