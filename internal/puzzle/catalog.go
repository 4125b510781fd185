// internal/puzzle/catalog.go
//
// Catalog loading.
//
// The catalog is a JSON document:
//
//	{"sets": [{"theme": "Nature", "puzzles": [
//	    {"id": "...", "title": "...", "description": "...", "difficulty": "easy",
//	     "grid": ["LIONTF", ...], "words": ["LION", ...]}]}]}
//
// Default() loads the embedded copy in assets once; Open(path) reads an
// external file instead (PUZZLES_FILE).

package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordwonder/assets"
	"github.com/robalobadob/wordwonder/internal/grid"
)

type catalogDoc struct {
	Sets []struct {
		Theme   string `json:"theme"`
		Puzzles []struct {
			ID          string     `json:"id"`
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Difficulty  Difficulty `json:"difficulty"`
			Grid        []string   `json:"grid"`
			Words       []string   `json:"words"`
		} `json:"puzzles"`
	} `json:"sets"`
}

var errEmptyCatalog = errors.New("puzzle: catalog has no puzzles")

// Load parses a catalog document. Every grid is validated; words are
// upper-cased and de-duplicated. Empty sets are dropped.
func Load(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	cat := &Catalog{}
	for _, ds := range doc.Sets {
		set := Set{Theme: strings.TrimSpace(ds.Theme)}
		for _, dp := range ds.Puzzles {
			g, err := grid.New(dp.Grid)
			if err != nil {
				return nil, fmt.Errorf("puzzle %q: %w", dp.ID, err)
			}
			set.Puzzles = append(set.Puzzles, Puzzle{
				ID:          dp.ID,
				Title:       dp.Title,
				Description: dp.Description,
				Difficulty:  dp.Difficulty,
				Grid:        g,
				Words:       normalizeWords(dp.Words),
			})
		}
		if len(set.Puzzles) > 0 {
			cat.Sets = append(cat.Sets, set)
		}
	}
	if len(cat.Sets) == 0 {
		return nil, errEmptyCatalog
	}
	return cat, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		f, err := assets.FS.Open("puzzles.json")
		if err != nil {
			defaultErr = err
			return
		}
		defer f.Close()
		defaultCat, defaultErr = Load(f)
		if defaultErr == nil {
			log.Debug().Int("puzzles", defaultCat.Len()).Msg("embedded catalog loaded")
		}
	})
	return defaultCat, defaultErr
}

// Open returns the catalog at path, or Default when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	cat, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load puzzles %s: %w", path, err)
	}
	log.Info().Str("file", path).Int("puzzles", cat.Len()).Msg("catalog loaded")
	return cat, nil
}

func normalizeWords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
