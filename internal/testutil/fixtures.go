package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreatePlace creates a test place with the given name.
// Returns the created place with its generated ID.
func (f *Fixtures) CreatePlace(ctx context.Context, name string) models.Place {
	f.t.Helper()

	now := time.Now().UTC()
	place := models.Place{
		ID:            primitive.NewObjectID(),
		Name:          name,
		NameCI:        text.Fold(name),
		Description:   "Test place description",
		ImageURL:      "https://example.com/" + text.Fold(name) + ".jpg",
		StampImageURL: "https://example.com/" + text.Fold(name) + "-stamp.png",
		Difficulty:    2,
		Popularity:    4,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := f.db.Collection("places").InsertOne(ctx, place)
	if err != nil {
		f.t.Fatalf("failed to create test place: %v", err)
	}

	return place
}

// CreateTrip creates a test trip with the given capacity. The creator
// is the sole participant, matching what trip creation produces.
func (f *Fixtures) CreateTrip(ctx context.Context, placeName, creatorID string, capacity int) models.Trip {
	f.t.Helper()

	now := time.Now().UTC()
	trip := models.Trip{
		ID:           primitive.NewObjectID(),
		PlaceName:    placeName,
		ScheduledAt:  now.Add(48 * time.Hour),
		Capacity:     capacity,
		CreatorID:    creatorID,
		Participants: []string{creatorID},
		CreatedAt:    now,
	}

	_, err := f.db.Collection("group_trips").InsertOne(ctx, trip)
	if err != nil {
		f.t.Fatalf("failed to create test trip: %v", err)
	}

	return trip
}

// CreateVisit records a stamp for the user at the given place.
func (f *Fixtures) CreateVisit(ctx context.Context, userID string, place models.Place) models.Visit {
	f.t.Helper()

	visit := models.Visit{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		PlaceID:       place.ID,
		PlaceName:     place.Name,
		StampImageURL: place.StampImageURL,
		VisitedAt:     time.Now().UTC(),
	}

	_, err := f.db.Collection("visits").InsertOne(ctx, visit)
	if err != nil {
		f.t.Fatalf("failed to create test visit: %v", err)
	}

	return visit
}

// CreateComment creates a test comment on the given place.
func (f *Fixtures) CreateComment(ctx context.Context, placeID primitive.ObjectID, userID, body string) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ID:               primitive.NewObjectID(),
		PlaceID:          placeID,
		UserID:           userID,
		Text:             body,
		DifficultyRating: 2,
		ExperienceRating: 4,
		CreatedAt:        time.Now().UTC(),
	}

	_, err := f.db.Collection("place_comments").InsertOne(ctx, comment)
	if err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}

	return comment
}

// CreateUserStats seeds a leaderboard entry for the user.
func (f *Fixtures) CreateUserStats(ctx context.Context, userID, displayName string, count int64) models.UserStats {
	f.t.Helper()

	stats := models.UserStats{
		UserID:             userID,
		DisplayName:        displayName,
		StampedPlacesCount: count,
		LastVisitAt:        time.Now().UTC(),
	}

	_, err := f.db.Collection("user_stats").InsertOne(ctx, stats)
	if err != nil {
		f.t.Fatalf("failed to create test user stats: %v", err)
	}

	return stats
}

// CreateTour creates a test tour over the given places, in order.
func (f *Fixtures) CreateTour(ctx context.Context, name, creatorID string, places ...models.Place) models.Tour {
	f.t.Helper()

	stops := make([]models.TourStop, 0, len(places))
	for _, p := range places {
		stops = append(stops, models.TourStop{PlaceID: p.ID, PlaceName: p.Name})
	}

	tour := models.Tour{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatorID: creatorID,
		Stops:     stops,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("tours").InsertOne(ctx, tour)
	if err != nil {
		f.t.Fatalf("failed to create test tour: %v", err)
	}

	return tour
}
