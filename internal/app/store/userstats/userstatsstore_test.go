package userstatsstore_test

import (
	"sync"
	"testing"
	"time"

	userstatsstore "github.com/pasaporteapp/pasaporte/internal/app/store/userstats"
	"github.com/pasaporteapp/pasaporte/internal/app/system/indexes"
	"github.com/pasaporteapp/pasaporte/internal/testutil"
)

func TestStore_RecordStamp_ConcurrentIncrementsAllCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	store := userstatsstore.New(db)

	const stamps = 10
	var wg sync.WaitGroup
	errs := make(chan error, stamps)
	for i := 0; i < stamps; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.RecordStamp(ctx, "user-a", time.Now())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("RecordStamp failed: %v", err)
		}
	}

	top, err := store.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("stats documents: got %d, want 1", len(top))
	}
	if top[0].StampedPlacesCount != stamps {
		t.Errorf("count: got %d, want %d — increments were lost", top[0].StampedPlacesCount, stamps)
	}
}

func TestStore_Top_OrdersByCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateUserStats(ctx, "user-a", "Ana", 3)
	fx.CreateUserStats(ctx, "user-b", "Beto", 7)
	fx.CreateUserStats(ctx, "user-c", "Carla", 5)

	top, err := userstatsstore.New(db).Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("entries: got %d, want 3", len(top))
	}
	if top[0].UserID != "user-b" || top[1].UserID != "user-c" || top[2].UserID != "user-a" {
		t.Errorf("order: got %s, %s, %s; want user-b, user-c, user-a",
			top[0].UserID, top[1].UserID, top[2].UserID)
	}
}

func TestStore_Top_ExcludesZeroCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateUserStats(ctx, "user-a", "Ana", 2)
	fx.CreateUserStats(ctx, "user-b", "Beto", 0)

	top, err := userstatsstore.New(db).Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("entries: got %d, want 1", len(top))
	}
	if top[0].UserID != "user-a" {
		t.Errorf("expected only user-a on the board, got %s", top[0].UserID)
	}
}

func TestStore_SetDisplayName_UpsertsWhenMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := userstatsstore.New(db)
	if err := store.SetDisplayName(ctx, "user-a", "Ana"); err != nil {
		t.Fatalf("SetDisplayName failed: %v", err)
	}

	// Stamping afterwards keeps the name on the same document.
	if err := store.RecordStamp(ctx, "user-a", time.Now()); err != nil {
		t.Fatalf("RecordStamp failed: %v", err)
	}

	top, err := store.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("entries: got %d, want 1", len(top))
	}
	if top[0].DisplayName != "Ana" {
		t.Errorf("display name: got %q, want %q", top[0].DisplayName, "Ana")
	}
}
