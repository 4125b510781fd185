// internal/puzzle/select.go
//
// Deterministic puzzle selection.
//
// Seed derivation:
//   - base  = decimal concatenation of year, month, day ("2026"+"10"+"14").
//   - "new-<timestamp>" challenge ids replace the seed with the timestamp.
//   - any other non-empty challenge id adds a stable string hash to base.
//   - no challenge id adds (wall clock ms mod 10000) to base.
//
// Draw order is fixed: first the theme (skipped when Category names one),
// then the puzzle within the theme.

package puzzle

import (
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/wordwonder/internal/random"
)

const newChallengePrefix = "new-"

// Request describes which puzzle the caller wants.
type Request struct {
	Date        time.Time // calendar day; its own location is used
	ChallengeID string    // optional; see package comment
	Category    string    // optional theme name
	Now         time.Time // wall clock, consulted only when ChallengeID is empty
}

// Select picks a puzzle from cat for req. An unknown Category silently falls
// back to the seeded theme pick.
func Select(cat *Catalog, req Request) (Puzzle, error) {
	if cat == nil || len(cat.Sets) == 0 {
		return Puzzle{}, errEmptyCatalog
	}
	rng := random.New(Seed(req))

	set, ok := cat.Theme(req.Category)
	if req.Category == "" || !ok {
		var i int
		i, rng = rng.Intn(len(cat.Sets))
		set = &cat.Sets[i]
	}
	j, _ := rng.Intn(len(set.Puzzles))
	return decorate(set.Theme, set.Puzzles[j]), nil
}

// Seed derives the generator seed for req.
func Seed(req Request) int64 {
	base := DateSeed(req.Date)
	switch {
	case req.ChallengeID == "":
		return base + req.Now.UnixMilli()%10000
	case strings.HasPrefix(req.ChallengeID, newChallengePrefix):
		if ts, err := strconv.ParseInt(strings.TrimPrefix(req.ChallengeID, newChallengePrefix), 10, 64); err == nil {
			return ts
		}
	}
	return base + HashString(req.ChallengeID)
}

// DateSeed concatenates year, month and day without zero padding.
func DateSeed(t time.Time) int64 {
	y, m, d := t.Date()
	s := strconv.Itoa(y) + strconv.Itoa(int(m)) + strconv.Itoa(d)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// HashString is the classic 31-multiplier string hash, wrapped to 32 bits,
// returned as a non-negative value.
func HashString(s string) int64 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// NewChallengeID returns an id that forces a fresh puzzle on demand.
func NewChallengeID(now time.Time) string {
	return newChallengePrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

const dailyPrefix = "daily-"

// DailyChallengeID is the shared id of the puzzle of the day for date.
func DailyChallengeID(date time.Time) string {
	return dailyPrefix + date.Format("2006-01-02")
}

// DailyDate is the calendar day of t, in t's own location, as UTC midnight.
// It is the date a DailyChallengeID(t) parses back to.
func DailyDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDailyChallengeID returns the calendar day of a DailyChallengeID.
func ParseDailyChallengeID(id string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(id, dailyPrefix)
	if !ok {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", rest, time.UTC)
	return d, err == nil
}

// ArchiveEntry is one past daily puzzle.
type ArchiveEntry struct {
	Date        time.Time
	ChallengeID string
	Puzzle      Puzzle
}

// Archive lists the daily puzzles of the `days` calendar days before today,
// most recent first.
func Archive(cat *Catalog, today time.Time, days int) ([]ArchiveEntry, error) {
	out := make([]ArchiveEntry, 0, max(days, 0))
	for i := 1; i <= days; i++ {
		date := today.AddDate(0, 0, -i)
		id := DailyChallengeID(date)
		p, err := Select(cat, Request{Date: date, ChallengeID: id})
		if err != nil {
			return nil, err
		}
		out = append(out, ArchiveEntry{Date: date, ChallengeID: id, Puzzle: p})
	}
	return out, nil
}
