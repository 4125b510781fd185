// internal/game/selection.go
//
// Selection validator. Both functions are pure: they never modify their
// inputs and return fresh slices.
//
// Extend rules, checked in order:
//   1. solved cell            → reject
//   2. empty path             → append
//   3. last cell              → remove-last
//   4. first cell (len > 1)   → submit
//   5. anywhere else in path  → reject
//   6. adjacent to last cell  → append
//   7. otherwise              → reject
//
// Submit compares the traced letters, then their reverse, against the word
// list (case-insensitive). The forward string is looked up first.

package game

import (
	"slices"
	"strings"

	"github.com/robalobadob/wordwonder/internal/grid"
)

// Extend applies one tap on c to path. For submit and reject the returned
// path equals the input.
func Extend(path []grid.Coord, c grid.Coord, solved map[grid.Coord]bool) ([]grid.Coord, Action) {
	if solved[c] {
		return slices.Clone(path), ActionReject
	}
	if len(path) == 0 {
		return []grid.Coord{c}, ActionAppend
	}
	if path[len(path)-1] == c {
		return slices.Clone(path[:len(path)-1]), ActionRemoveLast
	}
	if path[0] == c {
		// len(path) > 1 here: a single-cell path matched the last-cell case.
		return slices.Clone(path), ActionSubmit
	}
	if slices.Contains(path, c) {
		return slices.Clone(path), ActionReject
	}
	if grid.Adjacent(path[len(path)-1], c) {
		return append(slices.Clone(path), c), ActionAppend
	}
	return slices.Clone(path), ActionReject
}

// Submit validates path against list, given the words already found.
func Submit(path []grid.Coord, g grid.Grid, list, found []string) Submission {
	selected := g.Letters(path)
	if selected == "" {
		return Submission{Outcome: OutcomeInvalid}
	}
	word, ok := lookup(list, selected)
	if !ok {
		word, ok = lookup(list, reverse(selected))
	}
	if !ok {
		return Submission{Outcome: OutcomeInvalid}
	}
	if _, dup := lookup(found, word); dup {
		return Submission{Outcome: OutcomeDuplicate, Word: word}
	}
	return Submission{Outcome: OutcomeFound, Word: word}
}

// lookup returns the first entry of list equal to s ignoring case.
func lookup(list []string, s string) (string, bool) {
	for _, w := range list {
		if strings.EqualFold(w, s) {
			return w, true
		}
	}
	return "", false
}

func reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}
