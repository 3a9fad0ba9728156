// internal/app/features/trips/types.go
package trips

import (
	"time"

	"github.com/pasaporteapp/pasaporte/internal/domain/models"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
)

// tripResponse is the JSON shape for a trip. Status and seat counts are
// derived on the way out rather than stored.
type tripResponse struct {
	ID               string    `json:"id"`
	PlaceName        string    `json:"place_name"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	Description      string    `json:"description,omitempty"`
	Capacity         int       `json:"capacity"`
	CreatorID        string    `json:"creator_id"`
	Participants     []string  `json:"participants"`
	ParticipantCount int       `json:"participant_count"`
	SeatsLeft        int       `json:"seats_left"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func toResponse(t models.Trip) tripResponse {
	seats := t.Capacity - len(t.Participants)
	if seats < 0 {
		seats = 0
	}
	return tripResponse{
		ID:               t.ID.Hex(),
		PlaceName:        t.PlaceName,
		ScheduledAt:      t.ScheduledAt,
		Description:      t.Description,
		Capacity:         t.Capacity,
		CreatorID:        t.CreatorID,
		Participants:     t.Participants,
		ParticipantCount: len(t.Participants),
		SeatsLeft:        seats,
		Status:           roster.Status(t.Participants, t.Capacity),
		CreatedAt:        t.CreatedAt,
	}
}
