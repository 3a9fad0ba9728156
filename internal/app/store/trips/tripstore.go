// internal/app/store/trips/tripstore.go
package tripstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store owns the group_trips collection. It is the only writer of trip
// documents; every mutation goes through a single conditional update so
// MongoDB arbitrates the roster invariants, not client snapshots.
type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("trip not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("group_trips")}
}

// Create validates and inserts a new trip with the creator as the sole
// participant. Validation failures return *roster.ValidationError and
// perform no write.
func (s *Store) Create(ctx context.Context, in roster.NewTrip) (models.Trip, error) {
	now := time.Now().UTC()
	if err := roster.ValidateNewTrip(in, now); err != nil {
		return models.Trip{}, err
	}

	t := models.Trip{
		ID:           primitive.NewObjectID(),
		PlaceName:    strings.TrimSpace(in.PlaceName),
		ScheduledAt:  in.ScheduledAt.UTC(),
		Description:  strings.TrimSpace(in.Description),
		Capacity:     in.Capacity,
		CreatorID:    in.CreatorID,
		Participants: []string{in.CreatorID},
		CreatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Trip, error) {
	var t models.Trip
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Trip{}, ErrNotFound
		}
		return models.Trip{}, err
	}
	return t, nil
}

// List returns all trips in insertion order (_id ascending). Ordering
// follows the store's insertion order, not scheduled_at.
func (s *Store) List(ctx context.Context) ([]models.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Join appends userID to the roster and returns the updated trip.
//
// The filter re-states both join rules — user absent, participant count
// below capacity — so check and append happen in one atomic document
// update. Two users racing for the last slot cannot both match; the
// loser's update matches zero documents and is classified below. The
// classification read is sound because rosters only grow: if the filter
// failed, one of the two conditions held then and still holds now.
func (s *Store) Join(ctx context.Context, id primitive.ObjectID, userID string) (models.Trip, error) {
	filter := bson.M{
		"_id":          id,
		"participants": bson.M{"$ne": userID},
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": "$participants"}, "$capacity"},
		},
	}
	update := bson.M{"$addToSet": bson.M{"participants": userID}}

	res, err := s.c.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.Trip{}, err
	}
	if res.MatchedCount == 1 {
		return s.Get(ctx, id)
	}

	t, err := s.Get(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}
	if err := roster.CheckJoin(t.Participants, t.Capacity, userID); err != nil {
		return models.Trip{}, err
	}
	// Unreachable while rosters are append-only; kept so a future leave
	// operation fails loudly here instead of mis-reporting.
	return models.Trip{}, errors.New("join conflict: trip state changed between update and read")
}

// ParticipantCount returns the roster size without decoding the full
// document. Used by the reconciliation worker's reporting.
func (s *Store) ParticipantCount(ctx context.Context, id primitive.ObjectID) (int, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return len(t.Participants), nil
}

// Overfilled returns trips whose roster exceeds capacity or carries
// duplicates. Such documents can only have been written by clients
// predating the conditional join; the reconciliation worker prunes them.
func (s *Store) Overfilled(ctx context.Context) ([]models.Trip, error) {
	// A roster is damaged when it is larger than capacity, or larger than
	// its own set of distinct members (i.e. it holds duplicates).
	filter := bson.M{
		"$expr": bson.M{
			"$or": bson.A{
				bson.M{"$gt": bson.A{bson.M{"$size": "$participants"}, "$capacity"}},
				bson.M{"$gt": bson.A{
					bson.M{"$size": "$participants"},
					bson.M{"$size": bson.M{"$setUnion": bson.A{"$participants", bson.A{}}}},
				}},
			},
		},
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// ReplaceParticipants overwrites the roster of one trip. Only the
// reconciliation worker calls this, with a pruned list that keeps the
// creator and insertion order.
func (s *Store) ReplaceParticipants(ctx context.Context, id primitive.ObjectID, participants []string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"participants": participants}})
	return err
}
