// internal/puzzle/types.go
//
// Puzzle catalog types.
// Defines:
//   - Difficulty: easy | medium | hard.
//   - Puzzle:     one board (grid + word list) with display metadata.
//   - Set:        a themed group of puzzles.
//   - Catalog:    the ordered list of sets the selector draws from.

package puzzle

import (
	"strings"

	"github.com/robalobadob/wordwonder/internal/grid"
)

// Difficulty is the author-assigned difficulty label.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Puzzle is a single word-search board. Grid and Words are immutable for the
// lifetime of a session.
type Puzzle struct {
	ID          string
	Title       string
	Description string
	Difficulty  Difficulty
	Category    string // theme name; set by the selector
	Grid        grid.Grid
	Words       []string // uppercase, no duplicates
}

// Set is a themed collection of puzzles.
type Set struct {
	Theme   string
	Puzzles []Puzzle
}

// Catalog is the static source of every puzzle.
type Catalog struct {
	Sets []Set
}

// Themes returns the theme labels in catalog order.
func (c *Catalog) Themes() []string {
	out := make([]string, len(c.Sets))
	for i, s := range c.Sets {
		out[i] = s.Theme
	}
	return out
}

// Theme looks up a set by case-insensitive theme name.
func (c *Catalog) Theme(name string) (*Set, bool) {
	for i := range c.Sets {
		if strings.EqualFold(c.Sets[i].Theme, name) {
			return &c.Sets[i], true
		}
	}
	return nil, false
}

// Find looks up a puzzle by ID and returns it decorated like a selection.
func (c *Catalog) Find(id string) (Puzzle, bool) {
	for _, s := range c.Sets {
		for _, p := range s.Puzzles {
			if p.ID == id {
				return decorate(s.Theme, p), true
			}
		}
	}
	return Puzzle{}, false
}

// Len returns the total number of puzzles across all sets.
func (c *Catalog) Len() int {
	n := 0
	for _, s := range c.Sets {
		n += len(s.Puzzles)
	}
	return n
}

// decorate prefixes the title with the theme and sets Category.
// Words are copied so callers never share the catalog's backing array.
func decorate(theme string, p Puzzle) Puzzle {
	p.Title = theme + ": " + p.Title
	p.Category = theme
	p.Words = append([]string(nil), p.Words...)
	return p
}
