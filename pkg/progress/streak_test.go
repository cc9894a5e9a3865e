package progress_test

import (
	"testing"
	"time"

	"github.com/limbo/ascend/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpdateStreak(t *testing.T) {
	today := date(2025, time.March, 10)
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -7)
	testCases := []struct {
		Desc     string
		State    progress.StreakState
		Expected progress.StreakState
	}{
		{
			Desc:     "first completion ever",
			State:    progress.StreakState{},
			Expected: progress.StreakState{DailyStreak: 1, LastCompletedDate: &today},
		},
		{
			Desc:     "consecutive day",
			State:    progress.StreakState{DailyStreak: 3, LastCompletedDate: &yesterday},
			Expected: progress.StreakState{DailyStreak: 4, LastCompletedDate: &today},
		},
		{
			Desc:     "gap resets to one",
			State:    progress.StreakState{DailyStreak: 5, WeeklyStreak: 2, LastCompletedDate: &lastWeek},
			Expected: progress.StreakState{DailyStreak: 1, WeeklyStreak: 2, LastCompletedDate: &today},
		},
		{
			Desc:     "same day is a no-op",
			State:    progress.StreakState{DailyStreak: 7, WeeklyStreak: 1, LastCompletedDate: &today},
			Expected: progress.StreakState{DailyStreak: 7, WeeklyStreak: 1, LastCompletedDate: &today},
		},
		{
			Desc:     "reaching seven bumps weekly",
			State:    progress.StreakState{DailyStreak: 6, LastCompletedDate: &yesterday},
			Expected: progress.StreakState{DailyStreak: 7, WeeklyStreak: 1, LastCompletedDate: &today},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got := progress.UpdateStreak(tc.State, today)
			assert.Equal(t, tc.Expected.DailyStreak, got.DailyStreak)
			assert.Equal(t, tc.Expected.WeeklyStreak, got.WeeklyStreak)
			require.NotNil(t, got.LastCompletedDate)
			assert.True(t, got.LastCompletedDate.Equal(*tc.Expected.LastCompletedDate))
		})
	}
}

func TestUpdateStreakConsecutiveDays(t *testing.T) {
	start := date(2025, time.January, 1)
	state := progress.StreakState{}
	for i := range 21 {
		state = progress.UpdateStreak(state, start.AddDate(0, 0, i))
		assert.Equal(t, i+1, state.DailyStreak)
		// completing twice on the same day must not double count the week
		state = progress.UpdateStreak(state, start.AddDate(0, 0, i))
		assert.Equal(t, (i+1)/7, state.WeeklyStreak)
	}
}

func TestUpdateStreakIgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2025, time.May, 4, 23, 59, 0, 0, time.UTC)
	state := progress.StreakState{DailyStreak: 2, LastCompletedDate: &last}
	got := progress.UpdateStreak(state, time.Date(2025, time.May, 5, 0, 1, 0, 0, time.UTC))
	assert.Equal(t, 3, got.DailyStreak)
}

func TestRuns(t *testing.T) {
	today := date(2025, time.June, 15)
	testCases := []struct {
		Desc     string
		Dates    []time.Time
		Expected progress.RunStats
	}{
		{
			Desc:     "no completions",
			Expected: progress.RunStats{},
		},
		{
			Desc: "run ending today",
			Dates: []time.Time{
				today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2),
			},
			Expected: progress.RunStats{Current: 3, Longest: 3},
		},
		{
			Desc: "run ending yesterday still current",
			Dates: []time.Time{
				today.AddDate(0, 0, -1), today.AddDate(0, 0, -2),
			},
			Expected: progress.RunStats{Current: 2, Longest: 2},
		},
		{
			Desc: "older longer run",
			Dates: []time.Time{
				today,
				today.AddDate(0, 0, -10), today.AddDate(0, 0, -11), today.AddDate(0, 0, -12), today.AddDate(0, 0, -13),
			},
			Expected: progress.RunStats{Current: 1, Longest: 4},
		},
		{
			Desc:     "broken run",
			Dates:    []time.Time{today.AddDate(0, 0, -3), today.AddDate(0, 0, -4)},
			Expected: progress.RunStats{Current: 0, Longest: 2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, progress.Runs(tc.Dates, today))
		})
	}
}
