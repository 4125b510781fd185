// Package tui is the terminal front end: a Bubble Tea program that drives a
// game.Session with the keyboard.
//
// The cursor moves over the grid; select taps the cell under it, following
// the same append/undo/close rules as a pointer would. A one-second tick
// advances the clock until the puzzle is complete.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordwonder/internal/game"
	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/puzzle"
)

type tickMsg time.Time

// completedMsg is emitted once when the last word is found.
type completedMsg struct{}

// Options configure the board screen.
type Options struct {
	ProductName string
	ShareURL    string
	// NewPuzzle returns the next puzzle and its challenge id; nil disables "n".
	NewPuzzle func() (puzzle.Puzzle, string, error)
	// OnComplete runs once per completed puzzle, on the update goroutine.
	OnComplete func(s *game.Session)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle  = cellStyle.Reverse(true)
	pathStyle    = cellStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true)
	solvedStyle  = cellStyle.Foreground(lipgloss.Color("10")).Bold(true)
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model of one play session.
type Model struct {
	session *game.Session
	opts    Options
	keys    keyMap
	help    help.Model
	cursor  grid.Coord
	status  string
	width   int
}

// New builds the board screen for s.
func New(s *game.Session, opts Options) Model {
	if opts.ProductName == "" {
		opts.ProductName = "WordWonder"
	}
	return Model{session: s, opts: opts, keys: defaultKeys(), help: help.New()}
}

// Session returns the session being played.
func (m Model) Session() *game.Session { return m.session }

func tick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.session.Tick()
		return m, tick()

	case completedMsg:
		if m.opts.OnComplete != nil {
			m.opts.OnComplete(m.session)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.session.Puzzle.Grid.Size()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = min(m.cursor.Row+1, size-1)
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = min(m.cursor.Col+1, size-1)
	case key.Matches(msg, m.keys.Tap):
		return m.tap()
	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.status = ""
	case key.Matches(msg, m.keys.Hint):
		h, err := m.session.UseHint()
		if err != nil {
			m.status = game.Message(err)
			break
		}
		m.status = fmt.Sprintf("Hint (%s): %s", h.Kind, h.Content)
	case key.Matches(msg, m.keys.Share):
		if m.session.Complete() {
			m.status = m.session.ShareText(m.opts.ProductName, m.opts.ShareURL)
		} else {
			m.status = "Finish the puzzle to share your result"
		}
	case key.Matches(msg, m.keys.New):
		if m.opts.NewPuzzle == nil {
			break
		}
		p, id, err := m.opts.NewPuzzle()
		if err != nil {
			m.status = err.Error()
			break
		}
		m.session.Reset(p, id)
		m.cursor = grid.Coord{}
		m.status = "New puzzle: " + p.Title
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) tap() (tea.Model, tea.Cmd) {
	res := m.session.Tap(m.cursor)
	switch {
	case res.Action == game.ActionReject && m.session.Solved(m.cursor):
		m.status = "Already solved"
	case res.Action == game.ActionReject:
		m.status = "Pick a cell next to the last one"
	case res.Submission != nil && res.Submission.Outcome == game.OutcomeFound:
		m.status = "Found " + res.Submission.Word + "!"
	case res.Submission != nil:
		m.status = game.Message(res.Submission.Err())
	default:
		m.status = ""
	}
	if res.Completed {
		m.status = fmt.Sprintf("Puzzle complete in %s! Press s to share.", m.session.FormattedTime())
		return m, func() tea.Msg { return completedMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	s := m.session
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Puzzle.Title))
	if s.Puzzle.Difficulty != "" {
		b.WriteString(subtleStyle.Render("  [" + string(s.Puzzle.Difficulty) + "]"))
	}
	b.WriteString("\n")
	if s.Puzzle.Description != "" {
		b.WriteString(subtleStyle.Render(s.Puzzle.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		boardStyle.Render(m.renderGrid()),
		"  ",
		m.renderWords(),
	)
	b.WriteString(board)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Time %s  Hints %d  Found %d/%d\n",
		s.FormattedTime(), s.HintsRemaining(), len(s.Found()), len(s.Puzzle.Words))
	if s.Complete() {
		b.WriteString(successStyle.Render("Complete!"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderGrid() string {
	s := m.session
	inPath := make(map[grid.Coord]bool)
	for _, c := range s.Path() {
		inPath[c] = true
	}
	rows := s.Puzzle.Grid.Rows()
	lines := make([]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for c := range row {
			at := grid.Coord{Row: r, Col: c}
			style := cellStyle
			switch {
			case at == m.cursor:
				style = cursorStyle
			case inPath[at]:
				style = pathStyle
			case s.Solved(at):
				style = solvedStyle
			}
			cells[c] = style.Render(string(row[c]))
		}
		lines[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderWords() string {
	s := m.session
	lines := []string{subtleStyle.Render("Words")}
	for _, w := range s.Puzzle.Words {
		if s.IsFound(w) {
			lines = append(lines, foundStyle.Render(w))
			continue
		}
		lines = append(lines, w)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
