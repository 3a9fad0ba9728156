// internal/domain/models/userstats.go
package models

import "time"

// UserStats is the per-user counter document behind the leaderboard.
// One document per user_id (unique index); StampedPlacesCount is only
// ever moved with $inc upserts so concurrent stamps cannot lose counts.
type UserStats struct {
	UserID             string    `bson:"user_id" json:"user_id"`
	DisplayName        string    `bson:"display_name,omitempty" json:"display_name,omitempty"`
	StampedPlacesCount int64     `bson:"stamped_places_count" json:"stamped_places_count"`
	LastVisitAt        time.Time `bson:"last_visit_at" json:"last_visit_at"`
}
