package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/puzzle"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	letterStyle  = lipgloss.NewStyle().Padding(0, 1)
	markStyle    = letterStyle.Bold(true).Underline(true)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
)

// directionNames labels grid.Directions by compass point.
var directionNames = map[grid.Direction]string{
	{DRow: -1, DCol: -1}: "NW", {DRow: -1, DCol: 0}: "N", {DRow: -1, DCol: 1}: "NE",
	{DRow: 0, DCol: -1}: "W", {DRow: 0, DCol: 1}: "E",
	{DRow: 1, DCol: -1}: "SW", {DRow: 1, DCol: 0}: "S", {DRow: 1, DCol: 1}: "SE",
}

// renderBoard draws the letter grid, emphasising the marked cells.
func renderBoard(g grid.Grid, marked map[grid.Coord]bool) string {
	rows := make([]string, g.Size())
	for r := range rows {
		cells := make([]string, g.Size())
		for c := range cells {
			at := grid.Coord{Row: r, Col: c}
			style := letterStyle
			if marked[at] {
				style = markStyle
			}
			cells[c] = style.Render(string(g.At(at)))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// printPuzzle writes the heading, board and word list of p.
func printPuzzle(w io.Writer, heading string, p puzzle.Puzzle, marked map[grid.Coord]bool) {
	fmt.Fprintln(w, headingStyle.Render(heading))
	fmt.Fprintf(w, "%s  %s  %s\n", p.Title, dimStyle.Render(p.Category), dimStyle.Render(string(p.Difficulty)))
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	fmt.Fprintln(w, renderBoard(p.Grid, marked))
	fmt.Fprintf(w, "Words (%d): %s\n", len(p.Words), strings.Join(p.Words, ", "))
}

// placementLabel describes a placement as "start→end DIR".
func placementLabel(pl grid.Placement) (start, end, dir string) {
	first, last := pl[0], pl[len(pl)-1]
	d := grid.Direction{DRow: sign(last.Row - first.Row), DCol: sign(last.Col - first.Col)}
	return first.String(), last.String(), directionNames[d]
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
