package progress

type Warning string

const (
	WarningNone   Warning = ""
	WarningSpike  Warning = "spike"
	WarningTooLow Warning = "too_low"
)

var warningMessages = map[Warning]string{
	WarningSpike:  "Sudden spike in training load, consider an easier day",
	WarningTooLow: "Training load too low to drive progress",
}

func (w Warning) Message() string {
	return warningMessages[w]
}

const (
	FatigueWeight    = 40.0
	SpikeFactor      = 1.6
	LowLoadThreshold = 50.0
	baselineDays     = 6
)

type Recovery struct {
	Score       int     `json:"score"`
	TodayLoad   float64 `json:"today_load"`
	AverageLoad float64 `json:"avg_load"`
	Warning     Warning `json:"warning,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// RecoveryScore compares today's load with the average of the six days before it.
// Without a baseline the athlete counts as fully recovered.
func RecoveryScore(todayLoad, pastLoad float64) int {
	avg := pastLoad / baselineDays
	if avg == 0 {
		return 100
	}
	fatigue := todayLoad / avg
	score := 100 - fatigue*FatigueWeight
	return int(min(100, max(0, score)))
}

// LoadWarning inspects a 7-day window (oldest first, today last). A spike needs a
// non-zero baseline; it takes priority over the low-load warning.
func LoadWarning(loads [7]float64) Warning {
	past := 0.0
	for _, l := range loads[:6] {
		past += l
	}
	mean := past / baselineDays
	if mean > 0 && loads[6] > SpikeFactor*mean {
		return WarningSpike
	}
	for _, l := range loads {
		if l >= LowLoadThreshold {
			return WarningNone
		}
	}
	return WarningTooLow
}

// AssessRecovery builds the full recovery report from a trailing 7-day window.
func AssessRecovery(loads [7]float64) Recovery {
	past := 0.0
	for _, l := range loads[:6] {
		past += l
	}
	w := LoadWarning(loads)
	return Recovery{
		Score:       RecoveryScore(loads[6], past),
		TodayLoad:   loads[6],
		AverageLoad: past / baselineDays,
		Warning:     w,
		Message:     w.Message(),
	}
}
