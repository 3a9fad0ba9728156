package bootstrap

import (
	"testing"

	"github.com/pasaporteapp/pasaporte/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestEnsureSchema_SeedsCatalogOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	appCfg := AppConfig{SeedCatalog: true}

	if err := EnsureSchema(ctx, nil, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	first, err := db.Collection("places").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if first == 0 {
		t.Fatal("expected seeded catalog, got empty")
	}

	// A second run must not duplicate the catalog.
	if err := EnsureSchema(ctx, nil, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}
	second, err := db.Collection("places").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if second != first {
		t.Errorf("catalog grew on re-run: %d -> %d", first, second)
	}
}

func TestEnsureSchema_SeedDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{SeedCatalog: false}, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	count, err := db.Collection("places").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no seeded places, got %d", count)
	}
}

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	good := AppConfig{MongoURI: "mongodb://localhost:27017", ReconcileInterval: 1}
	if err := ValidateConfig(nil, good, logger); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := AppConfig{MongoURI: "not-a-uri", ReconcileInterval: 1}
	if err := ValidateConfig(nil, bad, logger); err == nil {
		t.Error("expected invalid URI to be rejected")
	}

	zeroInterval := AppConfig{MongoURI: "mongodb://localhost:27017"}
	if err := ValidateConfig(nil, zeroInterval, logger); err == nil {
		t.Error("expected zero reconcile interval to be rejected")
	}
}
