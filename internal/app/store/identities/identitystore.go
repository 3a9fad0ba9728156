// internal/app/store/identities/identitystore.go
package identitystore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("identity not found")
	ErrAlreadyUpgraded = errors.New("identity already upgraded")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Upgrade records a credential for an anonymous user id. The unique
// user_id index makes a second upgrade fail rather than overwrite.
func (s *Store) Upgrade(ctx context.Context, userID, displayName string, passcodeHash []byte) (models.Identity, error) {
	id := models.Identity{
		UserID:       userID,
		DisplayName:  displayName,
		PasscodeHash: passcodeHash,
		UpgradedAt:   time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, id); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Identity{}, ErrAlreadyUpgraded
		}
		return models.Identity{}, err
	}
	return id, nil
}

func (s *Store) GetByUserID(ctx context.Context, userID string) (models.Identity, error) {
	var id models.Identity
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&id); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Identity{}, ErrNotFound
		}
		return models.Identity{}, err
	}
	return id, nil
}
