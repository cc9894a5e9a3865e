package progress

import "time"

// WeekdayLabels holds the short labels used by weekly series, Monday first.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// WeekdayLabel returns the short label of the date's weekday.
func WeekdayLabel(t time.Time) string {
	// time.Weekday starts on Sunday
	return WeekdayLabels[(int(t.Weekday())+6)%7]
}

// TrailingDays returns n consecutive dates ending at today inclusive, oldest first.
func TrailingDays(today time.Time, n int) []time.Time {
	today = Day(today)
	days := make([]time.Time, n)
	for i := range n {
		days[i] = today.AddDate(0, 0, i-n+1)
	}
	return days
}

// MonthDays returns every date of the month containing t.
func MonthDays(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DayKey formats a date as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DayValue is one bucket of a daily series.
type DayValue struct {
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Value float64   `json:"value"`
}

// Series is a chronologically ordered run of daily buckets.
type Series []DayValue

// ByLabel maps each bucket's label to its value.
func (s Series) ByLabel() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, dv := range s {
		out[dv.Label] = dv.Value
	}
	return out
}

// WeeklySeries buckets values keyed by date over the 7 days ending at today.
// Missing days yield 0.
func WeeklySeries(today time.Time, values map[time.Time]float64) Series {
	days := TrailingDays(today, 7)
	out := make(Series, len(days))
	for i, d := range days {
		out[i] = DayValue{Date: d, Label: WeekdayLabel(d), Value: values[d]}
	}
	return out
}
