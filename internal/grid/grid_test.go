package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// animalGrid is the Animal Kingdom board.
func animalGrid() Grid {
	return MustNew(
		"LIONTF",
		"TIGERO",
		"ZEBRAX",
		"WOLFTB",
		"FROGSE",
		"DEERAR",
	)
}

func TestNewValidates(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, errEmptyGrid)

	_, err = New([]string{"AB", "C"})
	assert.ErrorIs(t, err, errNotSquare)

	_, err = New([]string{"AB", "C1"})
	assert.ErrorIs(t, err, errNotAlphabet)

	g, err := New([]string{"ab", "cd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "CD"}, g.Rows())
	assert.Equal(t, 2, g.Size())
}

func TestAtAndLetters(t *testing.T) {
	g := animalGrid()
	assert.Equal(t, byte('L'), g.At(Coord{0, 0}))
	assert.Equal(t, byte(0), g.At(Coord{6, 0}))
	assert.Equal(t, byte(0), g.At(Coord{0, -1}))

	path := []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	assert.Equal(t, "LION", g.Letters(path))
}

func TestAdjacent(t *testing.T) {
	cases := []struct {
		a, b Coord
		want bool
	}{
		{Coord{2, 2}, Coord{1, 1}, true},
		{Coord{2, 2}, Coord{3, 3}, true},
		{Coord{2, 2}, Coord{2, 3}, true},
		{Coord{2, 2}, Coord{2, 2}, true},
		{Coord{2, 2}, Coord{4, 2}, false},
		{Coord{2, 2}, Coord{0, 0}, false},
		{Coord{0, 0}, Coord{1, 2}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Adjacent(tc.a, tc.b), "%v %v", tc.a, tc.b)
	}
}

func TestLocateHorizontal(t *testing.T) {
	got := Locate(animalGrid(), "LION")
	require.Len(t, got, 1)
	assert.Equal(t, Placement{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, got[0])
}

func TestLocateVerticalAndCaseInsensitive(t *testing.T) {
	got := Locate(animalGrid(), "fox")
	require.Len(t, got, 1)
	assert.Equal(t, Placement{{0, 5}, {1, 5}, {2, 5}}, got[0])
}

func TestLocateIncludesWalkForEveryDirection(t *testing.T) {
	// Place "CAT" from the centre of a 5×5 board in each direction and make
	// sure the locator reports the exact walk.
	for _, d := range Directions {
		cells := make([][]byte, 5)
		for r := range cells {
			cells[r] = []byte("ZZZZZ")
		}
		origin := Coord{2, 2}
		want := Walk(origin, d, 3)
		for i, c := range want {
			cells[c.Row][c.Col] = "CAT"[i]
		}
		rows := make([]string, 5)
		for r := range cells {
			rows[r] = string(cells[r])
		}
		g := MustNew(rows...)
		assert.Contains(t, Locate(g, "CAT"), want, "direction %+v", d)
	}
}

func TestLocateReportsAllPlacements(t *testing.T) {
	g := MustNew(
		"ABA",
		"BBB",
		"ABA",
	)
	// "AB" runs from every corner in the 3 directions that stay on the board.
	got := Locate(g, "AB")
	assert.Len(t, got, 12)
	for _, p := range got {
		assert.Equal(t, "AB", g.Letters(p))
	}
}

func TestLocateMissesAndEdges(t *testing.T) {
	g := animalGrid()
	assert.Empty(t, Locate(g, "BEAR"))
	assert.Empty(t, Locate(g, ""))
	assert.Empty(t, Locate(Grid{}, "LION"))
	assert.Empty(t, Locate(g, "LIONTFX")) // runs off the edge
	// A single letter yields one placement per matching cell.
	assert.Len(t, Locate(g, "Z"), 1)
}

func TestPlaceableForwardOrReversed(t *testing.T) {
	g := MustNew(
		"NOIL",
		"ZZZZ",
		"ZZZZ",
		"ZZZZ",
	)
	assert.True(t, Placeable(g, "LION"))
	assert.True(t, Placeable(g, "NOIL"))
	assert.False(t, Placeable(g, "LOIN"))
}

func TestSolvedCellsRecomputesFromScratch(t *testing.T) {
	g := animalGrid()
	cells := SolvedCells(g, []string{"LION", "FOX"})
	assert.Len(t, cells, 7)
	assert.True(t, cells[Coord{0, 0}])
	assert.True(t, cells[Coord{2, 5}])

	again := SolvedCells(g, []string{"LION", "FOX"})
	assert.Equal(t, cells, again)
	assert.Empty(t, SolvedCells(g, nil))
}
