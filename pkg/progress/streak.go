package progress

import "time"

// StreakState is the slice of a player profile the streak rules operate on.
type StreakState struct {
	DailyStreak       int        `json:"daily_streak"`
	WeeklyStreak      int        `json:"weekly_streak"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
}

// UpdateStreak records a completion on today.
//
// A completion on the day after the last one extends the daily streak, any other
// earlier date restarts it at 1 and a second completion on the same day changes
// nothing. The weekly streak grows by one each time the daily streak reaches a
// positive multiple of 7.
func UpdateStreak(state StreakState, today time.Time) StreakState {
	today = Day(today)
	next := state
	switch {
	case state.LastCompletedDate != nil && Day(*state.LastCompletedDate).Equal(today):
		return next
	case state.LastCompletedDate != nil && Day(*state.LastCompletedDate).Equal(today.AddDate(0, 0, -1)):
		next.DailyStreak++
	default:
		next.DailyStreak = 1
	}
	next.LastCompletedDate = &today
	if next.DailyStreak > 0 && next.DailyStreak%7 == 0 {
		next.WeeklyStreak++
	}
	return next
}

// RunStats describes consecutive-day runs over a set of completion dates.
type RunStats struct {
	Current int `json:"current_streak"`
	Longest int `json:"max_streak"`
}

// Runs computes the current run (ending today or yesterday) and the longest run
// over the given completion dates. Duplicates and ordering do not matter.
func Runs(dates []time.Time, today time.Time) RunStats {
	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[Day(d)] = struct{}{}
	}
	var stats RunStats
	for d := range set {
		// only start counting at the first day of a run
		if _, ok := set[d.AddDate(0, 0, -1)]; ok {
			continue
		}
		n := 1
		for {
			if _, ok := set[d.AddDate(0, 0, n)]; !ok {
				break
			}
			n++
		}
		stats.Longest = max(stats.Longest, n)
	}
	today = Day(today)
	start := today
	if _, ok := set[today]; !ok {
		start = today.AddDate(0, 0, -1)
	}
	for d := start; ; d = d.AddDate(0, 0, -1) {
		if _, ok := set[d]; !ok {
			break
		}
		stats.Current++
	}
	return stats
}
