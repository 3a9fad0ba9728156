// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
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

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("place_comments")}
}

// Add persists a comment. Text is expected to be sanitized and ratings
// validated by the caller; the store only assigns identity and time.
func (s *Store) Add(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

// ListByPlace returns a place's comments, newest first.
func (s *Store) ListByPlace(ctx context.Context, placeID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"place_id": placeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []models.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPlace returns the number of comments on a place.
func (s *Store) CountByPlace(ctx context.Context, placeID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"place_id": placeID})
}
