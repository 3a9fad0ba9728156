// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The unique indexes here are load-bearing, not just query accelerators:
visits(user_id, place_id) is what makes stamping idempotent, and
users(user_id) is what makes an identity upgrade first-writer-wins.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensurePlaces(ctx, db); err != nil {
		problems = append(problems, "places: "+err.Error())
	}
	if err := ensureVisits(ctx, db); err != nil {
		problems = append(problems, "visits: "+err.Error())
	}
	if err := ensureUserStats(ctx, db); err != nil {
		problems = append(problems, "user_stats: "+err.Error())
	}
	if err := ensurePlaceComments(ctx, db); err != nil {
		problems = append(problems, "place_comments: "+err.Error())
	}
	if err := ensureGroupTrips(ctx, db); err != nil {
		problems = append(problems, "group_trips: "+err.Error())
	}
	if err := ensurePendingPlaces(ctx, db); err != nil {
		problems = append(problems, "pending_places: "+err.Error())
	}
	if err := ensureTours(ctx, db); err != nil {
		problems = append(problems, "tours: "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := false
	bv := false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	// Load existing indexes once; reconcile each desired model against them.
	existing := map[string]existingIndex{} // sig -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				zap.L().Warn("failed to decode existing index",
					zap.String("collection", coll.Name()),
					zap.Error(err))
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
		cur.Close(ctx)
	}

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) && (desiredName == "" || ex.Name == desiredName) {
				continue
			}

			// Name or options mismatch (e.g. upgrading to unique, or an
			// old name): drop & recreate under the desired definition.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
			if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
				if isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique {
					errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), desiredName))
				} else {
					errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
				}
				continue
			}
			zap.L().Info("index dropped and recreated",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Bool("unique", desiredUnique != nil && *desiredUnique),
				zap.String("took", time.Since(start).String()))
			continue
		}

		// No existing index with the same keys: create it.
		if created, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				// Same keys already exist under another definition that the
				// listing missed; treat as reconciled rather than fatal.
				zap.L().Warn("index options conflict, reusing existing",
					zap.String("collection", coll.Name()),
					zap.String("name", desiredName),
					zap.String("keys", desiredSig),
					zap.Error(err))
				continue
			}
			if isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), desiredName))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		} else {
			zap.L().Info("index ensured",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("created_name", created),
				zap.String("keys", desiredSig),
				zap.Bool("unique", desiredUnique != nil && *desiredUnique),
				zap.String("took", time.Since(start).String()))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensurePlaces(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("places")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One place per folded name; the seed upsert keys on this.
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_places_nameci"),
		},
	})
}

func ensureVisits(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("visits")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// At most one stamp per (user, place); concurrent stamps race to
		// this index and exactly one wins.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "place_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_visits_user_place"),
		},

		// Passport page: a user's stamps newest first.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "visited_at", Value: -1},
			},
			Options: options.Index().SetName("idx_visits_user_visitedat"),
		},
	})
}

func ensureUserStats(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("user_stats")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One counter document per user; $inc upserts key on this.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_userstats_user"),
		},

		// Leaderboard sort.
		{
			Keys: bson.D{
				{Key: "stamped_places_count", Value: -1},
				{Key: "last_visit_at", Value: -1},
			},
			Options: options.Index().SetName("idx_userstats_count_lastvisit"),
		},
	})
}

func ensurePlaceComments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("place_comments")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// A place's comments newest first.
		{
			Keys: bson.D{
				{Key: "place_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_comments_place_createdat"),
		},
	})
}

func ensureGroupTrips(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("group_trips")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Upcoming-trips listings.
		{
			Keys:    bson.D{{Key: "scheduled_at", Value: 1}},
			Options: options.Index().SetName("idx_trips_scheduledat"),
		},

		// Multikey: "trips I'm on" lookups.
		{
			Keys:    bson.D{{Key: "participants", Value: 1}},
			Options: options.Index().SetName("idx_trips_participants"),
		},
	})
}

func ensurePendingPlaces(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("pending_places")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// A user's own submissions newest first.
		{
			Keys: bson.D{
				{Key: "submitted_by", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_pending_submitter_createdat"),
		},
	})
}

func ensureTours(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("tours")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_tours_createdat"),
		},
	})
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One upgrade record per anonymous id; a second upgrade attempt
		// hits this index instead of overwriting the credential.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_userid"),
		},
	})
}
