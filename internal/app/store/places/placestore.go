// internal/app/store/places/placestore.go
package placestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound      = errors.New("place not found")
	ErrDuplicateName = errors.New("a place with this name already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("places")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Place, error) {
	var p models.Place
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Place{}, ErrNotFound
		}
		return models.Place{}, err
	}
	return p, nil
}

// List returns all places sorted by name.
func (s *Store) List(ctx context.Context) ([]models.Place, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var places []models.Place
	if err := cur.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (s *Store) Create(ctx context.Context, p models.Place) (models.Place, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.NameCI = text.Fold(p.Name)
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Place{}, ErrDuplicateName
		}
		return models.Place{}, err
	}
	return p, nil
}

// UpsertByName inserts the place if no place with the same folded name
// exists, and leaves existing documents untouched. The seed step calls
// this so provisioning can run any number of times.
func (s *Store) UpsertByName(ctx context.Context, p models.Place) (created bool, err error) {
	now := time.Now().UTC()
	p.NameCI = text.Fold(p.Name)

	res, err := s.c.UpdateOne(ctx,
		bson.M{"name_ci": p.NameCI},
		bson.M{
			"$setOnInsert": bson.M{
				"name":             p.Name,
				"name_ci":          p.NameCI,
				"description":      p.Description,
				"image_url":        p.ImageURL,
				"stamp_image_url":  p.StampImageURL,
				"activities":       p.Activities,
				"how_to_get_there": p.HowToGetThere,
				"latitude":         p.Latitude,
				"longitude":        p.Longitude,
				"difficulty":       p.Difficulty,
				"popularity":       p.Popularity,
				"created_at":       now,
				"updated_at":       now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount == 1, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
