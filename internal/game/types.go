// internal/game/types.go
//
// Core type definitions for the word-search session.
// Defines:
//   - Action:     what a cell tap did to the active selection.
//   - Outcome:    result of submitting a selection.
//   - Submission: outcome plus the canonical word, if any.
//   - TapResult:  everything a front end needs after one tap.
//   - Snapshot:   a read-only, JSON-ready view of a session.
//   - the error taxonomy surfaced as player notifications.

package game

import (
	"errors"

	"github.com/robalobadob/wordwonder/internal/grid"
	"github.com/robalobadob/wordwonder/internal/hint"
)

// Action is the effect of tapping a cell.
type Action string

const (
	ActionAppend     Action = "append"
	ActionRemoveLast Action = "remove-last"
	ActionSubmit     Action = "submit"
	ActionReject     Action = "reject"
)

// Outcome is the result of validating a submitted selection.
type Outcome string

const (
	OutcomeFound     Outcome = "found"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeInvalid   Outcome = "invalid"
)

var (
	ErrInvalidSelection   = errors.New("not a valid word")
	ErrDuplicateSelection = errors.New("word already found")
	ErrNoHintsRemaining   = errors.New("no hints remaining")
)

// Submission is the validated result of a closed selection.
type Submission struct {
	Outcome Outcome `json:"result"`
	Word    string  `json:"word,omitempty"` // canonical word for found/duplicate
}

// Err maps invalid and duplicate outcomes to their sentinel errors.
func (s Submission) Err() error {
	switch s.Outcome {
	case OutcomeInvalid:
		return ErrInvalidSelection
	case OutcomeDuplicate:
		return ErrDuplicateSelection
	}
	return nil
}

// TapResult reports what a tap did.
type TapResult struct {
	Action     Action       `json:"action"`
	Path       []grid.Coord `json:"path"`                 // selection after the tap
	Submission *Submission  `json:"submission,omitempty"` // set when Action == submit
	Completed  bool         `json:"completed"`            // this tap found the last word
}

// Snapshot is a copy of session state for rendering.
type Snapshot struct {
	ID             string       `json:"gameId"`
	ChallengeID    string       `json:"challengeId,omitempty"`
	PuzzleID       string       `json:"puzzleId"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Difficulty     string       `json:"difficulty"`
	Category       string       `json:"category"`
	Grid           []string     `json:"grid"`
	Words          []string     `json:"words"`
	Found          []string     `json:"found"`
	Path           []grid.Coord `json:"path"`
	Solved         []grid.Coord `json:"solved"`
	HintsRemaining int          `json:"hintsRemaining"`
	HintsUsed      int          `json:"hintsUsed"`
	LastHint       *hint.Hint   `json:"lastHint,omitempty"`
	Elapsed        int          `json:"secondsElapsed"`
	FormattedTime  string       `json:"formattedTime"`
	Complete       bool         `json:"complete"`
}

// Message returns the player-facing notification for a game error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidSelection):
		return "Not a valid word"
	case errors.Is(err, ErrDuplicateSelection):
		return "You already found that word"
	case errors.Is(err, ErrNoHintsRemaining):
		return "No hints remaining"
	case errors.Is(err, hint.ErrNoUnsolvedWords):
		return "You've found all the words!"
	}
	return err.Error()
}
