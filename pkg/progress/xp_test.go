package progress_test

import (
	"testing"
	"time"

	"github.com/limbo/ascend/pkg/progress"
	"github.com/stretchr/testify/assert"
)

func TestXPForDifficulty(t *testing.T) {
	testCases := []struct {
		Difficulty progress.Difficulty
		XP         int
	}{
		{progress.DifficultyEasy, 10},
		{progress.DifficultyMedium, 20},
		{progress.DifficultyHard, 30},
		{progress.Difficulty("legendary"), 0},
		{progress.Difficulty(""), 0},
	}
	for _, tc := range testCases {
		t.Run(string(tc.Difficulty), func(t *testing.T) {
			assert.Equal(t, tc.XP, progress.XPForDifficulty(tc.Difficulty))
		})
	}
}

func TestRevokeXPFloorsAtZero(t *testing.T) {
	assert.Equal(t, 0, progress.RevokeXP(15, 30))
	assert.Equal(t, 5, progress.RevokeXP(35, 30))
}

func TestToggleCompletionRoundTrip(t *testing.T) {
	today := date(2025, time.April, 2)
	for _, d := range []progress.Difficulty{progress.DifficultyEasy, progress.DifficultyMedium, progress.DifficultyHard, "unknown"} {
		t.Run(string(d), func(t *testing.T) {
			before := progress.PlayerState{XP: 120}
			on, done := progress.ToggleCompletion(before, d, false, today)
			assert.True(t, done)
			assert.Equal(t, 120+progress.XPForDifficulty(d), on.XP)
			assert.Equal(t, 1, on.DailyStreak)
			off, done := progress.ToggleCompletion(on, d, true, today)
			assert.False(t, done)
			assert.Equal(t, before.XP, off.XP)
			assert.GreaterOrEqual(t, off.XP, 0)
		})
	}
}

func TestToggleCompletionRepeatedSameDay(t *testing.T) {
	today := date(2025, time.April, 2)
	state := progress.PlayerState{}
	completed := false
	for range 10 {
		state, completed = progress.ToggleCompletion(state, progress.DifficultyHard, completed, today)
	}
	// ten toggles end in the undone state
	assert.False(t, completed)
	assert.Equal(t, 0, state.XP)
	assert.Equal(t, 1, state.DailyStreak)
	assert.Equal(t, 0, state.WeeklyStreak)
}

func TestNutritionXP(t *testing.T) {
	target := progress.Targets{Calories: 2000, Protein: 100}
	testCases := []struct {
		Desc   string
		Intake progress.Intake
		XP     int
	}{
		{"nothing met", progress.Intake{Calories: 1000, Protein: 20}, 0},
		{"calories at 95%", progress.Intake{Calories: 1900, Protein: 20}, 20},
		{"protein at 90%", progress.Intake{Calories: 1000, Protein: 90}, 20},
		{"both met", progress.Intake{Calories: 2100, Protein: 150}, 40},
		{"just under both", progress.Intake{Calories: 1899, Protein: 89.9}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.XP, progress.NutritionXP(tc.Intake, target))
		})
	}
	assert.Equal(t, 0, progress.NutritionXP(progress.Intake{Calories: 10, Protein: 10}, progress.Targets{}))
}

func TestClaimNutritionXP(t *testing.T) {
	target := progress.Targets{Calories: 2000, Protein: 100}
	met := progress.Intake{Calories: 2000, Protein: 100}
	xp, awarded := progress.ClaimNutritionXP(false, met, target)
	assert.Equal(t, 40, xp)
	assert.True(t, awarded)
	// re-saving the same day pays nothing
	xp, awarded = progress.ClaimNutritionXP(awarded, met, target)
	assert.Equal(t, 0, xp)
	assert.True(t, awarded)
	xp, awarded = progress.ClaimNutritionXP(false, progress.Intake{}, target)
	assert.Equal(t, 0, xp)
	assert.False(t, awarded)
}
