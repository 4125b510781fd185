// internal/words/words.go
//
// Static word → definition table used by definition hints.
//
// Responsibilities:
//   - Load "WORD: definition" lines from WORDS_DEFINITIONS_FILE when set,
//     otherwise from the embedded assets/definitions.txt.
//   - Answer lookups case-insensitively.
//   - Provide the fallback text for words with no entry.
//
// File format:
//   - one entry per line, word and definition separated by the first ':'
//   - blank lines and lines starting with '#' are ignored
//   - malformed lines (no ':' or empty side) are skipped
//
// Initialization is run once (sync.Once); Define and Describe call Init
// implicitly, so explicit initialization is only needed to surface errors.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordwonder/assets"
)

var (
	initOnce    sync.Once
	definitions map[string]string // uppercase word → definition
	initialErr  error
)

// Init loads the definitions table exactly once.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		if path := os.Getenv("WORDS_DEFINITIONS_FILE"); path != "" {
			lines, initialErr = readLines(path)
		} else {
			lines, initialErr = assets.DefinitionLines()
		}
		definitions = parse(lines)
		if initialErr == nil {
			log.Debug().Int("definitions", len(definitions)).Msg("definitions loaded")
		}
	})
	return initialErr
}

// readLines loads the non-blank, non-comment lines of a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// parse turns "WORD: definition" lines into a lookup map.
func parse(lines []string) map[string]string {
	m := make(map[string]string, len(lines))
	for _, line := range lines {
		word, def, ok := strings.Cut(line, ":")
		word = strings.ToUpper(strings.TrimSpace(word))
		def = strings.TrimSpace(def)
		if !ok || word == "" || def == "" {
			continue
		}
		m[word] = def
	}
	return m
}

// Define returns the definition of word and whether one exists.
func Define(word string) (string, bool) {
	_ = Init()
	def, ok := definitions[strings.ToUpper(word)]
	return def, ok
}

// Describe returns the definition of word, or a length-based fallback.
func Describe(word string) string {
	if def, ok := Define(word); ok {
		return def
	}
	return Fallback(word)
}

// Fallback is the text shown when no definition is known.
func Fallback(word string) string {
	return fmt.Sprintf("A hidden word with %d letters", len(word))
}

// Stats returns the number of loaded definitions.
func Stats() int {
	_ = Init()
	return len(definitions)
}
