package visitstore_test

import (
	"errors"
	"sync"
	"testing"

	visitstore "github.com/pasaporteapp/pasaporte/internal/app/store/visits"
	"github.com/pasaporteapp/pasaporte/internal/app/system/indexes"
	"github.com/pasaporteapp/pasaporte/internal/testutil"
)

func TestStore_Add(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	fx := testutil.NewFixtures(t, db)
	place := fx.CreatePlace(ctx, "Casco Antiguo")
	store := visitstore.New(db)

	visit, err := store.Add(ctx, "user-a", place)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if visit.PlaceName != place.Name {
		t.Errorf("denormalized place name: got %q, want %q", visit.PlaceName, place.Name)
	}
	if visit.StampImageURL != place.StampImageURL {
		t.Errorf("denormalized stamp url: got %q, want %q", visit.StampImageURL, place.StampImageURL)
	}

	ok, err := store.Exists(ctx, "user-a", place.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Error("expected visit to exist after Add")
	}
}

func TestStore_Add_SecondStampRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	fx := testutil.NewFixtures(t, db)
	place := fx.CreatePlace(ctx, "Bocas del Toro")
	store := visitstore.New(db)

	if _, err := store.Add(ctx, "user-a", place); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	_, err := store.Add(ctx, "user-a", place)
	if !errors.Is(err, visitstore.ErrAlreadyStamped) {
		t.Fatalf("second Add: got %v, want ErrAlreadyStamped", err)
	}

	// A different user stamping the same place is fine.
	if _, err := store.Add(ctx, "user-b", place); err != nil {
		t.Fatalf("other user's Add failed: %v", err)
	}
}

func TestStore_Add_ConcurrentStampsSingleWinner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	fx := testutil.NewFixtures(t, db)
	place := fx.CreatePlace(ctx, "Volcán Barú")
	store := visitstore.New(db)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Add(ctx, "user-a", place)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, rejected int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, visitstore.ErrAlreadyStamped):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Errorf("winners: got %d, want exactly 1", won)
	}
	if rejected != attempts-1 {
		t.Errorf("rejections: got %d, want %d", rejected, attempts-1)
	}

	visits, err := store.ListByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(visits) != 1 {
		t.Errorf("stored visits: got %d, want 1", len(visits))
	}
}

func TestStore_ListByUser_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	store := visitstore.New(db)

	first := fx.CreatePlace(ctx, "Valle de Antón")
	second := fx.CreatePlace(ctx, "Santa Catalina")

	if _, err := store.Add(ctx, "user-a", first); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := store.Add(ctx, "user-a", second); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	visits, err := store.ListByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(visits) != 2 {
		t.Fatalf("visits: got %d, want 2", len(visits))
	}
	if visits[0].PlaceID != second.ID {
		t.Errorf("expected most recent stamp first, got %q", visits[0].PlaceName)
	}
}
