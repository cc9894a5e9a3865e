package progress

import "time"

type BodyPart string

const (
	BodyPartChest     BodyPart = "chest"
	BodyPartBack      BodyPart = "back"
	BodyPartShoulders BodyPart = "shoulders"
	BodyPartArms      BodyPart = "arms"
	BodyPartLegs      BodyPart = "legs"
	BodyPartCore      BodyPart = "core"
	BodyPartCalves    BodyPart = "calves"
)

// BodyParts lists the fixed categories in display order.
var BodyParts = []BodyPart{
	BodyPartChest,
	BodyPartBack,
	BodyPartShoulders,
	BodyPartArms,
	BodyPartLegs,
	BodyPartCore,
	BodyPartCalves,
}

func (b BodyPart) Valid() bool {
	for _, p := range BodyParts {
		if p == b {
			return true
		}
	}
	return false
}

// SetLoad is the training load of one set row: sets x reps x weight.
// A missing weight counts as 1 so bodyweight work still registers. An explicit
// zero weight is treated the same way.
func SetLoad(sets, reps int, weight *float64) float64 {
	w := 1.0
	if weight != nil && *weight != 0 {
		w = *weight
	}
	return float64(sets*reps) * w
}

// LoadEntry is one set's load attributed to a body part and date.
type LoadEntry struct {
	Date     time.Time
	BodyPart BodyPart
	Load     float64
}

func LoadByBodyPart(entries []LoadEntry) map[BodyPart]float64 {
	out := make(map[BodyPart]float64, len(BodyParts))
	for _, e := range entries {
		out[e.BodyPart] += e.Load
	}
	return out
}

func LoadByDay(entries []LoadEntry) map[time.Time]float64 {
	out := make(map[time.Time]float64)
	for _, e := range entries {
		out[Day(e.Date)] += e.Load
	}
	return out
}

// TrailingLoads returns daily load for today-6 through today, oldest first.
// Entries outside the window are ignored.
func TrailingLoads(entries []LoadEntry, today time.Time) [7]float64 {
	byDay := LoadByDay(entries)
	var out [7]float64
	for i, d := range TrailingDays(today, 7) {
		out[i] = byDay[d]
	}
	return out
}

// InWindow keeps the entries dated within the 7 days ending at today.
func InWindow(entries []LoadEntry, today time.Time) []LoadEntry {
	today = Day(today)
	from := today.AddDate(0, 0, -6)
	out := make([]LoadEntry, 0, len(entries))
	for _, e := range entries {
		d := Day(e.Date)
		if d.Before(from) || d.After(today) {
			continue
		}
		out = append(out, e)
	}
	return out
}
