// internal/app/store/userstats/userstatsstore.go
package userstatsstore

import (
	"context"
	"time"

	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_stats")}
}

// RecordStamp bumps the user's stamp counter with an $inc upsert, so a
// first stamp creates the document and concurrent stamps never lose
// increments.
func (s *Store) RecordStamp(ctx context.Context, userID string, at time.Time) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$inc":         bson.M{"stamped_places_count": 1},
			"$set":         bson.M{"last_visit_at": at.UTC()},
			"$setOnInsert": bson.M{"user_id": userID},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// SetDisplayName attaches a display name once an identity is upgraded.
func (s *Store) SetDisplayName(ctx context.Context, userID, name string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set":         bson.M{"display_name": name},
			"$setOnInsert": bson.M{"user_id": userID, "stamped_places_count": int64(0)},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Top returns the leaderboard: highest stamp counts first, recent
// visitors breaking ties.
func (s *Store) Top(ctx context.Context, limit int64) ([]models.UserStats, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "stamped_places_count", Value: -1},
			{Key: "last_visit_at", Value: -1},
		}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"stamped_places_count": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stats []models.UserStats
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
