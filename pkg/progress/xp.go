package progress

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var difficultyXP = map[Difficulty]int{
	DifficultyEasy:   10,
	DifficultyMedium: 20,
	DifficultyHard:   30,
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyXP[d]
	return ok
}

// XPForDifficulty returns the XP granted for completing a habit. Unknown tiers are worth nothing.
func XPForDifficulty(d Difficulty) int {
	return difficultyXP[d]
}

// AwardXP adds delta to total.
func AwardXP(total, delta int) int {
	return total + delta
}

// RevokeXP subtracts delta from total, never going below zero.
func RevokeXP(total, delta int) int {
	return max(0, total-delta)
}

// PlayerState is the mutable part of a player profile touched by the toggle path.
type PlayerState struct {
	XP int `json:"xp"`
	StreakState
}

// ToggleCompletion flips a habit's completion for today. completed reports whether
// a completion record already exists; the returned bool reports whether the habit
// is done after the toggle. Completing grants XP and advances the streak, undoing
// only takes the XP back.
func ToggleCompletion(state PlayerState, difficulty Difficulty, completed bool, today time.Time) (PlayerState, bool) {
	xp := XPForDifficulty(difficulty)
	if completed {
		state.XP = RevokeXP(state.XP, xp)
		return state, false
	}
	state.XP = AwardXP(state.XP, xp)
	state.StreakState = UpdateStreak(state.StreakState, today)
	return state, true
}

const (
	NutritionXPStep       = 20
	CalorieAwardThreshold = 0.95
	ProteinAwardThreshold = 0.90
)

// NutritionXP is the XP a day's intake earns: one step for reaching 95% of the
// calorie target and one for reaching 90% of the protein target.
func NutritionXP(intake Intake, target Targets) int {
	xp := 0
	if target.Calories > 0 && intake.Calories >= CalorieAwardThreshold*target.Calories {
		xp += NutritionXPStep
	}
	if target.Protein > 0 && intake.Protein >= ProteinAwardThreshold*target.Protein {
		xp += NutritionXPStep
	}
	return xp
}

// ClaimNutritionXP decides the award for a day whose log carries the awarded flag.
// A day that already paid out yields nothing; otherwise the XP is returned and the
// flag should be set when it is positive.
func ClaimNutritionXP(alreadyAwarded bool, intake Intake, target Targets) (int, bool) {
	if alreadyAwarded {
		return 0, true
	}
	xp := NutritionXP(intake, target)
	return xp, xp > 0
}
