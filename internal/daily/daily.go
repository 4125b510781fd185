// internal/daily/daily.go
//
// Daily challenge bookkeeping: date keys, per-player stats, streaks and
// achievements. Persistence lives in store.go.

package daily

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as a UTC midnight.
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// Stats summarizes a player's completed puzzles.
type Stats struct {
	Completed     int `json:"completed"`
	BestMs        int `json:"bestMs"` // 0 when nothing completed
	NoHint        int `json:"noHint"` // completions with zero hints
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// Streaks returns the current and longest runs of consecutive days in
// dates. The current run must end today or yesterday to count.
// Dates that fail to parse are ignored; duplicates count once.
func Streaks(dates []string, today time.Time) (current, longest int) {
	seen := make(map[string]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		if seen[s] {
			continue
		}
		d, err := ParseDateKey(s)
		if err != nil {
			continue
		}
		seen[s] = true
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0, 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	todayKey, err := ParseDateKey(DateKey(today))
	if err != nil {
		return 0, longest
	}
	if gap := todayKey.Sub(days[0]); gap > 24*time.Hour || gap < 0 {
		return 0, longest
	}
	current = 1
	for i := 1; i < len(days) && days[i-1].Sub(days[i]) == 24*time.Hour; i++ {
		current++
	}
	return current, longest
}

// Achievement is one unlockable badge.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

const (
	puzzleMasterCount = 10
	speedDemonMs      = 2 * 60 * 1000
	weekWarriorDays   = 7
)

// Achievements evaluates every badge against stats, in display order.
func Achievements(st Stats) []Achievement {
	return []Achievement{
		{ID: "first-word", Title: "First Steps", Description: "Find your first word",
			Unlocked: st.Completed > 0},
		{ID: "puzzle-master", Title: "Puzzle Master", Description: "Complete 10 puzzles",
			Unlocked: st.Completed >= puzzleMasterCount},
		{ID: "speed-demon", Title: "Speed Demon", Description: "Complete a puzzle in under 2 minutes",
			Unlocked: st.Completed > 0 && st.BestMs < speedDemonMs},
		{ID: "no-hints", Title: "Pure Solver", Description: "Complete a puzzle without using hints",
			Unlocked: st.NoHint > 0},
		{ID: "streak-week", Title: "Week Warrior", Description: "Complete daily challenges for 7 days straight",
			Unlocked: st.LongestStreak >= weekWarriorDays},
	}
}
