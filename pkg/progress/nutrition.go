package progress

import (
	"math"
	"time"
)

// Intake is one day's logged nutrition totals.
type Intake struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// Targets are a user's daily goals.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

var DefaultTargets = Targets{
	Calories: 2200,
	Protein:  140,
	Carbs:    250,
	Fat:      70,
}

const (
	PerfectDeviation = 5.0
	OKDeviation      = 15.0
	// ProteinStreakLookback bounds how far back the protein chain is replayed.
	ProteinStreakLookback = 365
)

// CalorieDeviation is |calories - target| as a percentage of target. A zero
// target only matches zero calories.
func CalorieDeviation(calories, target float64) float64 {
	if target <= 0 {
		if calories == 0 {
			return 0
		}
		return 100
	}
	return math.Abs(calories-target) * 100 / target
}

func ProteinMet(intake Intake, target Targets) bool {
	return intake.Protein >= target.Protein
}

// IsCompliant reports whether calories landed within 5% of target and protein reached its target.
func IsCompliant(intake Intake, target Targets) bool {
	return CalorieDeviation(intake.Calories, target.Calories) <= PerfectDeviation && ProteinMet(intake, target)
}

type DayStatus string

const (
	DayPerfect DayStatus = "perfect"
	DayOK      DayStatus = "ok"
	DayBad     DayStatus = "bad"
	DayNone    DayStatus = "none"
)

func ClassifyDay(calories, target float64) DayStatus {
	dev := CalorieDeviation(calories, target)
	switch {
	case dev <= PerfectDeviation:
		return DayPerfect
	case dev <= OKDeviation:
		return DayOK
	default:
		return DayBad
	}
}

type ComplianceDay struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	Logged    bool      `json:"logged"`
	Compliant bool      `json:"compliant"`
}

// WeeklyCompliance returns the compliance bitmap for the 7 days ending at today.
func WeeklyCompliance(today time.Time, intakes map[time.Time]Intake, target Targets) []ComplianceDay {
	days := TrailingDays(today, 7)
	out := make([]ComplianceDay, len(days))
	for i, d := range days {
		in, ok := intakes[d]
		out[i] = ComplianceDay{
			Date:      d,
			Label:     WeekdayLabel(d),
			Logged:    ok,
			Compliant: ok && IsCompliant(in, target),
		}
	}
	return out
}

// NextProteinStreak advances the protein chain by one day.
func NextProteinStreak(prev int, todayMet, yesterdayMet bool) int {
	switch {
	case !todayMet:
		return 0
	case yesterdayMet:
		return prev + 1
	default:
		return 1
	}
}

// ProteinStreak replays the chain over the lookback window ending at today.
func ProteinStreak(today time.Time, intakes map[time.Time]Intake, target Targets) int {
	streak := 0
	prevMet := false
	for _, d := range TrailingDays(today, ProteinStreakLookback) {
		in, ok := intakes[d]
		met := ok && ProteinMet(in, target)
		streak = NextProteinStreak(streak, met, prevMet)
		prevMet = met
	}
	return streak
}

// AverageCalories is the mean over days in the 7-day window that have a log.
func AverageCalories(today time.Time, intakes map[time.Time]Intake) float64 {
	total, count := 0.0, 0
	for _, d := range TrailingDays(today, 7) {
		if in, ok := intakes[d]; ok {
			total += in.Calories
			count++
		}
	}
	return total / float64(max(1, count))
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

func CalorieTrend(today, yesterday float64) Trend {
	switch {
	case today > yesterday:
		return TrendUp
	case today < yesterday:
		return TrendDown
	default:
		return TrendSame
	}
}

type CalendarDay struct {
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	Status   DayStatus `json:"status"`
}

// MonthlyCalendar classifies every day of today's month. Days without a log are "none".
func MonthlyCalendar(today time.Time, intakes map[time.Time]Intake, target Targets) []CalendarDay {
	days := MonthDays(today)
	out := make([]CalendarDay, len(days))
	for i, d := range days {
		in, ok := intakes[d]
		status := DayNone
		if ok {
			status = ClassifyDay(in.Calories, target.Calories)
		}
		out[i] = CalendarDay{Date: d, Calories: in.Calories, Status: status}
	}
	return out
}
