// internal/grid/grid.go
//
// Letter grid for the word-search game.
// Defines:
//   - Coord: a (row, col) cell address, 0-indexed.
//   - Grid:  an immutable N×N matrix of uppercase letters.
//
// Grids are built once per puzzle and never mutated afterwards; every
// accessor returns copies or scalars.

package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Coord identifies a cell on the grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Adjacent reports whether a and b are king-move neighbours
// (Chebyshev distance ≤ 1). A cell is adjacent to itself.
func Adjacent(a, b Coord) bool {
	return abs(a.Row-b.Row) <= 1 && abs(a.Col-b.Col) <= 1
}

// Grid is a square matrix of single uppercase letters.
type Grid struct {
	size  int
	cells []byte // row-major
}

var (
	errEmptyGrid   = errors.New("grid: no rows")
	errNotSquare   = errors.New("grid: rows must form a square")
	errNotAlphabet = errors.New("grid: cells must be letters A-Z")
)

// New builds a Grid from one string per row. Letters are upper-cased;
// the grid must be square and contain only A–Z.
func New(rows []string) (Grid, error) {
	n := len(rows)
	if n == 0 {
		return Grid{}, errEmptyGrid
	}
	cells := make([]byte, 0, n*n)
	for i, row := range rows {
		row = strings.ToUpper(strings.TrimSpace(row))
		if len(row) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", errNotSquare, i, len(row), n)
		}
		for j := 0; j < len(row); j++ {
			if row[j] < 'A' || row[j] > 'Z' {
				return Grid{}, fmt.Errorf("%w: row %d col %d is %q", errNotAlphabet, i, j, row[j])
			}
		}
		cells = append(cells, row...)
	}
	return Grid{size: n, cells: cells}, nil
}

// MustNew is New that panics on error. Intended for fixtures and static data.
func MustNew(rows ...string) Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns N for an N×N grid.
func (g Grid) Size() int { return g.size }

// InBounds reports whether c addresses a cell of g.
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At returns the letter at c, or 0 when c is out of bounds.
func (g Grid) At(c Coord) byte {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[c.Row*g.size+c.Col]
}

// Rows returns the grid as one string per row.
func (g Grid) Rows() []string {
	out := make([]string, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = string(g.cells[r*g.size : (r+1)*g.size])
	}
	return out
}

// Letters concatenates the letters along path in traversal order.
// Out-of-bounds coordinates contribute nothing.
func (g Grid) Letters(path []Coord) string {
	var b strings.Builder
	b.Grow(len(path))
	for _, c := range path {
		if ch := g.At(c); ch != 0 {
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
