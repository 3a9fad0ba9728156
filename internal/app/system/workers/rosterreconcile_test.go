package workers

import (
	"reflect"
	"testing"
)

func TestTrimRoster(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		creatorID    string
		capacity     int
		want         []string
	}{
		{
			name:         "within capacity unchanged",
			participants: []string{"creator", "a"},
			creatorID:    "creator",
			capacity:     3,
			want:         []string{"creator", "a"},
		},
		{
			name:         "overfilled drops latest joiners",
			participants: []string{"creator", "a", "b", "c"},
			creatorID:    "creator",
			capacity:     2,
			want:         []string{"creator", "a"},
		},
		{
			name:         "creator kept even when not first",
			participants: []string{"a", "b", "creator"},
			creatorID:    "creator",
			capacity:     2,
			want:         []string{"creator", "a"},
		},
		{
			name:         "duplicates removed",
			participants: []string{"creator", "a", "a", "b"},
			creatorID:    "creator",
			capacity:     3,
			want:         []string{"creator", "a", "b"},
		},
		{
			name:         "capacity one keeps only creator",
			participants: []string{"creator", "a", "b"},
			creatorID:    "creator",
			capacity:     1,
			want:         []string{"creator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimRoster(tt.participants, tt.creatorID, tt.capacity)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TrimRoster(%v, %q, %d) = %v, want %v",
					tt.participants, tt.creatorID, tt.capacity, got, tt.want)
			}
		})
	}
}
