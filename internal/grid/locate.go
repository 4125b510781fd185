// internal/grid/locate.go
//
// Placement locator: finds every straight-line occurrence of a word.
//
// For each cell holding the word's first letter and each of the 8 direction
// vectors, walk len(word) steps; if the walk stays in bounds and matches letter
// by letter, record it. All matches are returned, not just the first, so a
// contrived grid with repeated placements highlights every one of them.

package grid

import "strings"

// Direction is a unit step (ΔRow, ΔCol) with components in {-1, 0, 1}.
type Direction struct {
	DRow, DCol int
}

// Directions lists the 8 king-move vectors in a fixed order.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Placement is the ordered list of cells along which a word appears.
type Placement []Coord

// Walk returns the n coordinates starting at origin and stepping along d.
func Walk(origin Coord, d Direction, n int) Placement {
	p := make(Placement, n)
	for i := 0; i < n; i++ {
		p[i] = Coord{Row: origin.Row + d.DRow*i, Col: origin.Col + d.DCol*i}
	}
	return p
}

// Locate returns all placements of word in g, ordered by origin (row-major)
// and then by Directions order. Matching is case-insensitive; an empty word
// has no placements.
func Locate(g Grid, word string) []Placement {
	word = strings.ToUpper(word)
	n := len(word)
	if n == 0 || g.size == 0 {
		return nil
	}
	var out []Placement
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			origin := Coord{Row: r, Col: c}
			if g.At(origin) != word[0] {
				continue
			}
			if n == 1 {
				out = append(out, Placement{origin})
				continue
			}
			for _, d := range Directions {
				if g.matches(origin, d, word) {
					out = append(out, Walk(origin, d, n))
				}
			}
		}
	}
	return out
}

// matches reports whether word lies along d from origin.
func (g Grid) matches(origin Coord, d Direction, word string) bool {
	end := Coord{Row: origin.Row + d.DRow*(len(word)-1), Col: origin.Col + d.DCol*(len(word)-1)}
	if !g.InBounds(end) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := Coord{Row: origin.Row + d.DRow*i, Col: origin.Col + d.DCol*i}
		if g.At(c) != word[i] {
			return false
		}
	}
	return true
}

// Placeable reports whether word appears in g forward or reversed. A reversed
// occurrence is a forward walk in the opposite direction, so one scan covers both.
func Placeable(g Grid, word string) bool {
	return len(Locate(g, word)) > 0
}

// SolvedCells recomputes, from scratch, the set of cells covered by any
// placement of any of the given words.
func SolvedCells(g Grid, words []string) map[Coord]bool {
	out := make(map[Coord]bool)
	for _, w := range words {
		for _, p := range Locate(g, w) {
			for _, c := range p {
				out[c] = true
			}
		}
	}
	return out
}
