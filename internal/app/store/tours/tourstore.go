// internal/app/store/tours/tourstore.go
package tourstore

import (
	"context"
	"errors"
	"time"

	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("tour not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tours")}
}

func (s *Store) Create(ctx context.Context, t models.Tour) (models.Tour, error) {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Tour{}, err
	}
	return t, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Tour, error) {
	var t models.Tour
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Tour{}, ErrNotFound
		}
		return models.Tour{}, err
	}
	return t, nil
}

// List returns all tours, newest first.
func (s *Store) List(ctx context.Context) ([]models.Tour, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tours []models.Tour
	if err := cur.All(ctx, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}
