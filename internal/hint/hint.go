// internal/hint/hint.go
//
// Hint generation.
//
// A hint picks, in this order, one kind uniformly from {letter, word,
// definition}, one unsolved word uniformly, and for letter hints one
// character index uniformly. The generator state is threaded through and
// returned so the caller owns the sequence.

package hint

import (
	"errors"
	"strings"

	"github.com/robalobadob/wordwonder/internal/random"
	"github.com/robalobadob/wordwonder/internal/words"
)

// Kind of hint.
type Kind string

const (
	KindLetter     Kind = "letter"
	KindWord       Kind = "word"
	KindDefinition Kind = "definition"
)

// Kinds in draw order.
var Kinds = [...]Kind{KindLetter, KindWord, KindDefinition}

// Hint is the payload shown to the player.
type Hint struct {
	Kind    Kind   `json:"type"`
	Content string `json:"content"`
	Word    string `json:"-"` // the word the hint is about; never sent to clients
}

// ErrNoUnsolvedWords is returned when every word has been found.
var ErrNoUnsolvedWords = errors.New("no unsolved words")

// Generate builds a hint about one of the words not in found.
// On error the returned state equals rng.
func Generate(list, found []string, rng random.Rand) (Hint, random.Rand, error) {
	eligible := Unsolved(list, found)
	if len(eligible) == 0 {
		return Hint{}, rng, ErrNoUnsolvedWords
	}

	k, rng := rng.Intn(len(Kinds))
	w, rng := rng.Intn(len(eligible))
	kind, word := Kinds[k], eligible[w]

	h := Hint{Kind: kind, Word: word}
	switch kind {
	case KindLetter:
		var i int
		i, rng = rng.Intn(len(word))
		h.Content = word[i : i+1]
	case KindWord:
		h.Content = word
	case KindDefinition:
		h.Content = words.Describe(word)
	}
	return h, rng, nil
}

// Unsolved returns the words of list that are not in found, in list order.
func Unsolved(list, found []string) []string {
	done := make(map[string]struct{}, len(found))
	for _, f := range found {
		done[strings.ToUpper(f)] = struct{}{}
	}
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, ok := done[strings.ToUpper(w)]; !ok {
			out = append(out, w)
		}
	}
	return out
}
