// internal/app/store/visits/visitstore.go
package visitstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrAlreadyStamped is returned when the user has already stamped this
// place; the unique (user_id, place_id) index is the arbiter, so two
// concurrent stamps cannot both land.
var ErrAlreadyStamped = errors.New("place already stamped by this user")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("visits")}
}

// Add records a stamp for (userID, place). Idempotency comes from the
// unique index, not a prior read.
func (s *Store) Add(ctx context.Context, userID string, place models.Place) (models.Visit, error) {
	v := models.Visit{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		PlaceID:       place.ID,
		PlaceName:     place.Name,
		StampImageURL: place.StampImageURL,
		VisitedAt:     time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, v); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Visit{}, ErrAlreadyStamped
		}
		return models.Visit{}, err
	}
	return v, nil
}

// ListByUser returns a user's stamps, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Visit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "visited_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var visits []models.Visit
	if err := cur.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// Exists reports whether the user already stamped the place.
func (s *Store) Exists(ctx context.Context, userID string, placeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "place_id": placeID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
