package hint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordwonder/internal/random"
	"github.com/robalobadob/wordwonder/internal/words"
)

var animals = []string{"LION", "TIGER", "ZEBRA", "WOLF", "BEAR", "DEER", "FOX", "RAT"}

func TestGenerateAllFound(t *testing.T) {
	rng := random.New(99)
	_, next, err := Generate(animals, animals, rng)
	assert.ErrorIs(t, err, ErrNoUnsolvedWords)
	assert.Equal(t, rng, next)
}

func TestGenerateFollowsDrawOrder(t *testing.T) {
	rng := random.New(12345)
	h, _, err := Generate(animals, nil, rng)
	require.NoError(t, err)

	k, r := rng.Intn(3)
	w, r := r.Intn(len(animals))
	assert.Equal(t, Kinds[k], h.Kind)
	assert.Equal(t, animals[w], h.Word)
	if h.Kind == KindLetter {
		i, _ := r.Intn(len(h.Word))
		assert.Equal(t, h.Word[i:i+1], h.Content)
	}
}

func TestGenerateContentPerKind(t *testing.T) {
	seenKinds := map[Kind]bool{}
	rng := random.New(1)
	for i := 0; i < 200; i++ {
		var h Hint
		var err error
		h, rng, err = Generate(animals, []string{"LION"}, rng)
		require.NoError(t, err)
		assert.NotEqual(t, "LION", h.Word)
		seenKinds[h.Kind] = true
		switch h.Kind {
		case KindLetter:
			assert.Len(t, h.Content, 1)
			assert.True(t, strings.Contains(h.Word, h.Content))
		case KindWord:
			assert.Equal(t, h.Word, h.Content)
		case KindDefinition:
			assert.Equal(t, words.Describe(h.Word), h.Content)
		}
	}
	assert.Len(t, seenKinds, 3)
}

func TestUnsolved(t *testing.T) {
	got := Unsolved([]string{"LION", "FOX", "RAT"}, []string{"fox"})
	assert.Equal(t, []string{"LION", "RAT"}, got)
	assert.Empty(t, Unsolved(nil, nil))
}
