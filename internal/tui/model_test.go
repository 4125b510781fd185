package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/random"
)

func petsPuzzle() puzzle.Puzzle {
	return puzzle.Puzzle{
		ID:          "pets",
		Title:       "Pets: Pets",
		Description: "Two pets",
		Difficulty:  puzzle.Easy,
		Grid:        grid.MustNew("CATX", "DOGX", "XXXX", "XXXX"),
		Words:       []string{"CAT", "DOG"},
	}
}

func newModel(opts Options) Model {
	s := game.New(petsPuzzle(), game.Options{Rand: random.New(3)})
	return New(s, opts)
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var model tea.Model
		model, cmd = m.Update(msg)
		m = model.(Model)
	}
	return m, cmd
}

func TestCursorStaysOnGrid(t *testing.T) {
	m := newModel(Options{})
	m, _ = press(t, m, "up", "h")
	assert.Equal(t, grid.Coord{}, m.cursor)
	m, _ = press(t, m, "l", "l", "l", "l", "l", "j", "j", "j", "j", "j")
	assert.Equal(t, grid.Coord{Row: 3, Col: 3}, m.cursor)
	m, _ = press(t, m, "k", "h")
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, m.cursor)
}

func TestFindWordsAndComplete(t *testing.T) {
	var completed *game.Session
	m := newModel(Options{OnComplete: func(s *game.Session) { completed = s }})

	// C A T, then back to C to close the selection
	m, _ = press(t, m, "space", "l", "space", "l", "space", "h", "h", "space")
	assert.Equal(t, "Found CAT!", m.status)
	assert.Equal(t, []string{"CAT"}, m.session.Found())

	m, _ = press(t, m, "j", "space", "l", "space", "l", "space", "h", "h")
	m, cmd := press(t, m, "space")
	require.True(t, m.session.Complete())
	assert.Contains(t, m.status, "Puzzle complete")
	require.NotNil(t, cmd)

	// the completion callback runs when Bubble Tea delivers the message
	model, _ := m.Update(cmd())
	m = model.(Model)
	assert.Same(t, m.session, completed)

	m, _ = press(t, m, "s")
	assert.True(t, strings.HasPrefix(m.status, `I completed "Pets: Pets"`), m.status)
}

func TestInvalidSelectionAndClear(t *testing.T) {
	m := newModel(Options{})
	m, _ = press(t, m, "space", "j", "space", "k", "space")
	assert.Equal(t, "Not a valid word", m.status)
	assert.Empty(t, m.session.Path())

	m, _ = press(t, m, "space", "l", "l", "space")
	assert.Equal(t, "Pick a cell next to the last one", m.status)
	m, _ = press(t, m, "esc")
	assert.Empty(t, m.session.Path())
	assert.Empty(t, m.status)
}

func TestSolvedCellRejected(t *testing.T) {
	m := newModel(Options{})
	m, _ = press(t, m, "space", "l", "space", "l", "space", "h", "h", "space")
	m, _ = press(t, m, "space")
	assert.Equal(t, "Already solved", m.status)
}

func TestHints(t *testing.T) {
	m := newModel(Options{})
	for i := 0; i < game.DefaultHintBudget; i++ {
		m, _ = press(t, m, "i")
		assert.True(t, strings.HasPrefix(m.status, "Hint ("), m.status)
	}
	m, _ = press(t, m, "i")
	assert.Equal(t, "No hints remaining", m.status)
}

func TestShareBeforeCompletion(t *testing.T) {
	m := newModel(Options{})
	m, _ = press(t, m, "s")
	assert.Equal(t, "Finish the puzzle to share your result", m.status)
}

func TestNewPuzzle(t *testing.T) {
	calls := 0
	m := newModel(Options{NewPuzzle: func() (puzzle.Puzzle, string, error) {
		calls++
		if calls > 1 {
			return puzzle.Puzzle{}, "", errors.New("catalog unavailable")
		}
		p := petsPuzzle()
		p.Title = "Pets: Again"
		return p, "c2", nil
	}})
	m, _ = press(t, m, "l", "space", "n")
	assert.Equal(t, "New puzzle: Pets: Again", m.status)
	assert.Equal(t, "c2", m.session.ChallengeID)
	assert.Equal(t, grid.Coord{}, m.cursor)
	assert.Empty(t, m.session.Path())

	m, _ = press(t, m, "n")
	assert.Equal(t, "catalog unavailable", m.status)

	// without a NewPuzzle hook the key does nothing
	plain := newModel(Options{})
	plain, _ = press(t, plain, "n")
	assert.Empty(t, plain.status)
}

func TestTickAndQuit(t *testing.T) {
	m := newModel(Options{})
	assert.NotNil(t, m.Init())
	model, cmd := m.Update(tickMsg(time.Now()))
	m = model.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.session.Elapsed())

	_, cmd = press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	_, cmd = press(t, m, "ctrl+c")
	require.NotNil(t, cmd)
}

func TestView(t *testing.T) {
	m := newModel(Options{})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(Model)
	view := m.View()
	assert.Contains(t, view, "Pets: Pets")
	assert.Contains(t, view, "Two pets")
	assert.Contains(t, view, "CAT")
	assert.Contains(t, view, "Time 0:00  Hints 3  Found 0/2")
	assert.Equal(t, 100, m.width)

	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "new puzzle")
}
