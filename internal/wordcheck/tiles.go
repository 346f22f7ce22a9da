package wordcheck

import (
	"sort"
	"strings"
)

// Finnish Bananagrams tile distribution (144 tiles).
var tiles = map[rune]int{
	'a': 16, 'b': 1, 'd': 1, 'e': 12, 'g': 1, 'h': 3,
	'i': 15, 'j': 3, 'k': 8, 'l': 8, 'm': 5, 'n': 12,
	'o': 8, 'p': 2, 'r': 3, 's': 11, 't': 14, 'u': 7,
	'v': 4, 'y': 2, 'ä': 7, 'ö': 1,
}

// TileCount returns the number of tiles available for r. Letters outside the
// tile set report zero.
func TileCount(r rune) int {
	return tiles[r]
}

// TotalTiles returns the size of the full tile set.
func TotalTiles() int {
	total := 0
	for _, count := range tiles {
		total += count
	}
	return total
}

// Alphabet returns the allowed letters in a stable order.
func Alphabet() string {
	letters := make([]rune, 0, len(tiles))
	for r := range tiles {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	var b strings.Builder
	for _, r := range letters {
		b.WriteRune(r)
	}
	return b.String()
}

// CharsAllowed reports whether every character of word is a tile letter.
func CharsAllowed(word string) bool {
	for _, r := range word {
		if _, ok := tiles[r]; !ok {
			return false
		}
	}
	return true
}

// FitsTileBudget reports whether word can be laid out with a single tile set.
// Characters without tiles have a budget of zero and therefore never fit.
func FitsTileBudget(word string) bool {
	used := make(map[rune]int, len(word))
	for _, r := range word {
		used[r]++
		if used[r] > tiles[r] {
			return false
		}
	}
	return true
}
