package indexes_test

import (
	"testing"

	"github.com/pasaporteapp/pasaporte/internal/app/system/indexes"
	"github.com/pasaporteapp/pasaporte/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Running again should not error
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func indexNames(t *testing.T, db *mongo.Database, collection string) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(collection).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_CreatesVisitIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, db, "visits")
	for _, name := range []string{
		"uniq_visits_user_place",
		"idx_visits_user_visitedat",
	} {
		if !names[name] {
			t.Errorf("expected index %q to exist on visits collection", name)
		}
	}
}

func TestEnsureAll_CreatesPlaceIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, db, "places")
	if !names["uniq_places_nameci"] {
		t.Errorf("expected index %q to exist on places collection", "uniq_places_nameci")
	}
}

func TestEnsureAll_CreatesTripIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, db, "group_trips")
	for _, name := range []string{
		"idx_trips_scheduledat",
		"idx_trips_participants",
	} {
		if !names[name] {
			t.Errorf("expected index %q to exist on group_trips collection", name)
		}
	}
}

func TestEnsureAll_CreatesUserStatsIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, db, "user_stats")
	for _, name := range []string{
		"uniq_userstats_user",
		"idx_userstats_count_lastvisit",
	} {
		if !names[name] {
			t.Errorf("expected index %q to exist on user_stats collection", name)
		}
	}
}

func TestEnsureAll_VisitUniquenessEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection("visits")
	doc := bson.M{"user_id": "u1", "place_id": "p1"}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := coll.InsertOne(ctx, doc); err == nil {
		t.Fatal("expected duplicate (user_id, place_id) insert to fail")
	}
}
