package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefinitions(t *testing.T) {
	require.NoError(t, Init())
	assert.Greater(t, Stats(), 50)

	def, ok := Define("lion")
	require.True(t, ok)
	assert.Equal(t, "A large wild cat with a mane", def)
}

func TestDescribeFallsBack(t *testing.T) {
	assert.Equal(t, "A hidden word with 7 letters", Describe("QWERTYU"))
	assert.Equal(t, "The capital city of France", Describe("PARIS"))
}

func TestParseSkipsMalformedLines(t *testing.T) {
	m := parse([]string{
		"cat: A small domesticated feline",
		"no separator here",
		": missing word",
		"DOG:",
		"EMU: Flightless bird: native to Australia",
	})
	assert.Equal(t, map[string]string{
		"CAT": "A small domesticated feline",
		"EMU": "Flightless bird: native to Australia",
	}, m)
}
