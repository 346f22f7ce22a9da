package wordcheck

import (
	"strings"
	"testing"
)

func TestTileInventory(t *testing.T) {
	if got := TotalTiles(); got != 144 {
		t.Fatalf("TotalTiles() = %d, want 144", got)
	}
	if got := Alphabet(); got != "abdeghijklmnoprstuvyäö" {
		t.Fatalf("Alphabet() = %q", got)
	}
	if got := TileCount('a'); got != 16 {
		t.Fatalf("TileCount('a') = %d, want 16", got)
	}
	if got := TileCount('c'); got != 0 {
		t.Fatalf("TileCount('c') = %d, want 0", got)
	}
}

func TestCharsAllowed(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"kala", true},
		{"päivä", true},
		{"öljy", true},
		{"cat", false},
		{"faksi", false},
		{"Kala", false},
		{"rekka-auto", false},
		{"å", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := CharsAllowed(tt.word); got != tt.want {
			t.Errorf("CharsAllowed(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestFitsTileBudget(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{"plain", "kala", true},
		{"sixteen a", strings.Repeat("a", 16), true},
		{"seventeen a", strings.Repeat("a", 17), false},
		{"single ö", "öö", false},
		{"two y", "yy", true},
		{"three y", "yyy", false},
		{"single b", "bb", false},
		{"letter without tiles", "c", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitsTileBudget(tt.word); got != tt.want {
				t.Fatalf("FitsTileBudget(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
