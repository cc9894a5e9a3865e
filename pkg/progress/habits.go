package progress

import (
	"math"
	"time"
)

type DailyProgress struct {
	Done    int     `json:"done"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

func HabitDailyProgress(done, total int) DailyProgress {
	return DailyProgress{Done: done, Total: total, Percent: Percent(done, total)}
}

// WeeklyCompletion turns per-day completion counts into completion percentages
// of totalHabits for the 7 days ending at today.
func WeeklyCompletion(today time.Time, totalHabits int, counts map[time.Time]int) Series {
	values := make(map[time.Time]float64, len(counts))
	for d, n := range counts {
		values[Day(d)] = Percent(n, totalHabits)
	}
	return WeeklySeries(today, values)
}

// MonthlyHeatmap returns the completion count for every day of today's month.
func MonthlyHeatmap(today time.Time, counts map[time.Time]int) Series {
	days := MonthDays(today)
	out := make(Series, len(days))
	for i, d := range days {
		out[i] = DayValue{Date: d, Label: DayKey(d), Value: float64(counts[d])}
	}
	return out
}

const DefaultStepsTarget = 8000

type StepsDay struct {
	Steps  int `json:"steps"`
	Target int `json:"target"`
}

type StepsBucket struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Steps  int       `json:"steps"`
	Target int       `json:"target"`
	Met    bool      `json:"met"`
}

type StepsWeek struct {
	Days    []StepsBucket `json:"days"`
	Total   int           `json:"total"`
	Average float64       `json:"average"`
	MetDays int           `json:"met_days"`
}

// WeeklySteps buckets step logs into the 7 days ending at today. Days without a log
// carry zero steps against the default target.
func WeeklySteps(today time.Time, logs map[time.Time]StepsDay) StepsWeek {
	var week StepsWeek
	for _, d := range TrailingDays(today, 7) {
		l, ok := logs[d]
		if !ok || l.Target <= 0 {
			l.Target = DefaultStepsTarget
		}
		b := StepsBucket{
			Date:   d,
			Label:  WeekdayLabel(d),
			Steps:  l.Steps,
			Target: l.Target,
			Met:    l.Steps >= l.Target,
		}
		week.Days = append(week.Days, b)
		week.Total += b.Steps
		if b.Met {
			week.MetDays++
		}
	}
	week.Average = float64(week.Total) / 7
	return week
}
