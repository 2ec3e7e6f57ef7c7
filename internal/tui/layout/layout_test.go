package layout

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name        string
		wide        bool
		determining bool
		want        Kind
	}{
		{"determining narrow", false, true, Loading},
		{"determining wide", true, true, Loading},
		{"wide", true, false, Desktop},
		{"narrow", false, false, Mobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.wide, tt.determining); got != tt.want {
				t.Fatalf("Select(%v, %v) = %v, want %v", tt.wide, tt.determining, got, tt.want)
			}
		})
	}
}
