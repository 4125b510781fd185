// internal/game/engine.go
//
// Session holder for a single word-search puzzle.
// Responsibilities:
//   - Own the puzzle, selection path, found words, solved cells, hint state
//     and elapsed time for one session.
//   - Route cell taps through Extend/Submit and apply their side effects.
//   - Recompute solved-cell highlighting from scratch whenever a word is found.
//   - Spend the hint budget.
//
// Notes:
//   - A Session is not safe for concurrent use; callers serialize access
//     (the HTTP store does it with a mutex, the TUI runs on one goroutine).
//   - Reset discards all progress and starts over on a new puzzle.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/hint"
	"github.com/robalobadob/wordwonder/internal/puzzle"
	"github.com/robalobadob/wordwonder/internal/random"
)

// DefaultHintBudget is the number of hints a session starts with.
const DefaultHintBudget = 3

// Options configure a new session.
type Options struct {
	ChallengeID string           // id the puzzle was selected with, if any
	HintBudget  int              // <= 0 means DefaultHintBudget
	Rand        random.Rand      // hint generator state
	Now         func() time.Time // clock; nil means time.Now
}

// Session is one active puzzle from load to replacement.
type Session struct {
	ID          string
	ChallengeID string
	Puzzle      puzzle.Puzzle
	StartedAt   time.Time

	opts     Options
	path     []grid.Coord
	found    []string
	traced   map[grid.Coord]bool // cells of paths that produced a find
	solved   map[grid.Coord]bool // traced ∪ placements of found words
	hintsOut int
	hintsIn  int
	lastHint *hint.Hint
	rng      random.Rand
	elapsed  int // seconds
}

// New starts a session on p.
func New(p puzzle.Puzzle, opts Options) *Session {
	if opts.HintBudget <= 0 {
		opts.HintBudget = DefaultHintBudget
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{ID: newID(), opts: opts, rng: opts.Rand}
	s.load(p, opts.ChallengeID)
	return s
}

// Reset replaces the puzzle and discards path, found words, hints and time.
// The session keeps its ID and its hint generator state.
func (s *Session) Reset(p puzzle.Puzzle, challengeID string) {
	s.load(p, challengeID)
}

func (s *Session) load(p puzzle.Puzzle, challengeID string) {
	s.Puzzle = p
	s.ChallengeID = challengeID
	s.StartedAt = s.opts.Now()
	s.path = nil
	s.found = nil
	s.traced = make(map[grid.Coord]bool)
	s.solved = make(map[grid.Coord]bool)
	s.hintsOut = s.opts.HintBudget
	s.hintsIn = 0
	s.lastHint = nil
	s.elapsed = 0
}

// Tap applies a tap on cell c.
//
// append/remove-last update the path; submit validates it and clears it.
// Out-of-bounds taps are rejected.
func (s *Session) Tap(c grid.Coord) TapResult {
	if !s.Puzzle.Grid.InBounds(c) {
		return TapResult{Action: ActionReject, Path: slices.Clone(s.path)}
	}
	next, action := Extend(s.path, c, s.solved)
	res := TapResult{Action: action}
	switch action {
	case ActionAppend, ActionRemoveLast:
		s.path = next
	case ActionSubmit:
		wasComplete := s.Complete()
		sub := s.submit()
		res.Submission = &sub
		res.Completed = !wasComplete && s.Complete()
	}
	res.Path = slices.Clone(s.path)
	return res
}

// Submit validates the active path directly, as if it had been closed.
func (s *Session) Submit() Submission {
	return s.submit()
}

func (s *Session) submit() Submission {
	sub := Submit(s.path, s.Puzzle.Grid, s.Puzzle.Words, s.found)
	if sub.Outcome == OutcomeFound {
		s.found = append(s.found, sub.Word)
		for _, c := range s.path {
			s.traced[c] = true
		}
		s.recomputeSolved()
	}
	s.path = nil
	return sub
}

// recomputeSolved rebuilds highlighting from the immutable grid letters.
func (s *Session) recomputeSolved() {
	solved := grid.SolvedCells(s.Puzzle.Grid, s.found)
	for c := range s.traced {
		solved[c] = true
	}
	s.solved = solved
}

// Clear drops the active selection.
func (s *Session) Clear() {
	s.path = nil
}

// UseHint spends one hint. It fails without changing state when the budget
// is exhausted or nothing is left to find.
func (s *Session) UseHint() (hint.Hint, error) {
	if s.hintsOut <= 0 {
		return hint.Hint{}, ErrNoHintsRemaining
	}
	h, rng, err := hint.Generate(s.Puzzle.Words, s.found, s.rng)
	if err != nil {
		return hint.Hint{}, err
	}
	s.rng = rng
	s.hintsOut--
	s.hintsIn++
	s.lastHint = &h
	return h, nil
}

// Tick advances the elapsed-time counter by one second until completion.
func (s *Session) Tick() {
	if !s.Complete() {
		s.elapsed++
	}
}

// SyncClock sets elapsed time from StartedAt until completion.
func (s *Session) SyncClock(now time.Time) {
	if s.Complete() {
		return
	}
	if d := int(now.Sub(s.StartedAt) / time.Second); d > s.elapsed {
		s.elapsed = d
	}
}

// Complete reports whether every word has been found.
func (s *Session) Complete() bool {
	return len(s.Puzzle.Words) > 0 && len(s.found) == len(s.Puzzle.Words)
}

// Status is a coarse state string: "playing" or "complete".
func (s *Session) Status() string {
	if s.Complete() {
		return "complete"
	}
	return "playing"
}

// Path returns the active selection.
func (s *Session) Path() []grid.Coord { return slices.Clone(s.path) }

// Found returns the found words in the order they were found.
func (s *Session) Found() []string { return slices.Clone(s.found) }

// IsFound reports whether word has been found.
func (s *Session) IsFound(word string) bool {
	_, ok := lookup(s.found, word)
	return ok
}

// Solved reports whether c is part of a found word.
func (s *Session) Solved(c grid.Coord) bool { return s.solved[c] }

// SolvedCells returns the solved cells in row-major order.
func (s *Session) SolvedCells() []grid.Coord {
	out := make([]grid.Coord, 0, len(s.solved))
	for c := range s.solved {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b grid.Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// HintsRemaining and HintsUsed expose the hint budget.
func (s *Session) HintsRemaining() int { return s.hintsOut }
func (s *Session) HintsUsed() int      { return s.hintsIn }

// Elapsed returns whole seconds played.
func (s *Session) Elapsed() int { return s.elapsed }

// FormattedTime returns Elapsed as m:ss.
func (s *Session) FormattedTime() string { return FormatElapsed(s.elapsed) }

// ShareText is the plain-text result summary handed to share targets.
func (s *Session) ShareText(product, url string) string {
	return fmt.Sprintf("I completed \"%s\" in %s with %d hints used! Play today's %s challenge: %s",
		s.Puzzle.Title, s.FormattedTime(), s.hintsIn, product, url)
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:             s.ID,
		ChallengeID:    s.ChallengeID,
		PuzzleID:       s.Puzzle.ID,
		Title:          s.Puzzle.Title,
		Description:    s.Puzzle.Description,
		Difficulty:     string(s.Puzzle.Difficulty),
		Category:       s.Puzzle.Category,
		Grid:           s.Puzzle.Grid.Rows(),
		Words:          slices.Clone(s.Puzzle.Words),
		Found:          s.Found(),
		Path:           s.Path(),
		Solved:         s.SolvedCells(),
		HintsRemaining: s.hintsOut,
		HintsUsed:      s.hintsIn,
		Elapsed:        s.elapsed,
		FormattedTime:  s.FormattedTime(),
		Complete:       s.Complete(),
	}
	if snap.Found == nil {
		snap.Found = []string{}
	}
	if snap.Path == nil {
		snap.Path = []grid.Coord{}
	}
	if s.lastHint != nil {
		h := *s.lastHint
		snap.LastHint = &h
	}
	return snap
}

// FormatElapsed renders seconds as minutes:seconds, seconds zero-padded.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// newID returns a random UUID, or a 16-hex-char id if UUID generation fails.
func newID() string {
	if id, err := uuid.NewV4(); err == nil {
		return id.String()
	}
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
