// internal/domain/models/identity.go
package models

import "time"

// Identity is the upgrade record for an anonymous user id. A user who
// sets a display name and passcode can re-attach their id from another
// session; users without one stay purely anonymous.
type Identity struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	DisplayName  string    `bson:"display_name" json:"display_name"`
	PasscodeHash []byte    `bson:"passcode_hash" json:"-"`
	UpgradedAt   time.Time `bson:"upgraded_at" json:"upgraded_at"`
}
