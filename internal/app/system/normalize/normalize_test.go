package normalize

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ana Torres", "Ana Torres"},
		{"  Ana Torres  ", "Ana Torres"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // case preserved
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlaceName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Salto El Limón", "Salto El Limón"},
		{"  Salto El Limón ", "Salto El Limón"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := PlaceName(tt.input); got != tt.want {
				t.Errorf("PlaceName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryParam(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"search term", "search term"},
		{"  trimmed  ", "trimmed"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE", "UPPERCASE"}, // case preserved
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := QueryParam(tt.input); got != tt.want {
				t.Errorf("QueryParam(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"easy", "easy"},
		{"EASY", "easy"},
		{"  Moderate  ", "moderate"},
		{"all", ""}, // "all" converts to empty
		{"ALL", ""},
		{"  All  ", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Filter(tt.input); got != tt.want {
				t.Errorf("Filter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUserID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"8d3f8a9e-0c5d-4f7a-9b2e-1a2b3c4d5e6f", "8d3f8a9e-0c5d-4f7a-9b2e-1a2b3c4d5e6f"},
		{"  8d3f8a9e-0c5d-4f7a-9b2e-1a2b3c4d5e6f  ", "8d3f8a9e-0c5d-4f7a-9b2e-1a2b3c4d5e6f"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := UserID(tt.input); got != tt.want {
				t.Errorf("UserID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
