package seed_test

import (
	"testing"

	placestore "github.com/pasaporteapp/pasaporte/internal/app/store/places"
	"github.com/pasaporteapp/pasaporte/internal/app/system/seed"
	"github.com/pasaporteapp/pasaporte/internal/testutil"
	"go.uber.org/zap"
)

func TestPlaces_SeedsCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := seed.Places(ctx, db, zap.NewNop())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if created == 0 {
		t.Fatal("expected catalog places to be created on a clean database")
	}

	count, err := placestore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != int64(created) {
		t.Errorf("place count: got %d, want %d", count, created)
	}
}

func TestPlaces_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := seed.Places(ctx, db, zap.NewNop())
	if err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	second, err := seed.Places(ctx, db, zap.NewNop())
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if second != 0 {
		t.Errorf("second seed created %d places, want 0", second)
	}

	count, err := placestore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != int64(first) {
		t.Errorf("place count after reseed: got %d, want %d", count, first)
	}
}
