package progress_test

import (
	"testing"

	"github.com/limbo/ascend/pkg/progress"
	"github.com/stretchr/testify/assert"
)

func TestRecoveryScore(t *testing.T) {
	testCases := []struct {
		Desc  string
		Today float64
		Past  float64
		Score int
	}{
		{"no baseline", 500, 0, 100},
		{"rest day", 0, 600, 100},
		{"double the average", 200, 600, 20},
		{"matches average", 100, 600, 60},
		{"way over clamps to zero", 1000, 600, 0},
		{"truncates", 31.25, 600, 87},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Score, progress.RecoveryScore(tc.Today, tc.Past))
		})
	}
}

func TestLoadWarning(t *testing.T) {
	testCases := []struct {
		Desc    string
		Loads   [7]float64
		Warning progress.Warning
	}{
		{"all zero is too low", [7]float64{}, progress.WarningTooLow},
		{"spike", [7]float64{100, 100, 100, 100, 100, 100, 161}, progress.WarningSpike},
		{"exactly 1.6x is not a spike", [7]float64{100, 100, 100, 100, 100, 100, 160}, progress.WarningNone},
		{"spike wins over low load", [7]float64{10, 10, 10, 10, 10, 10, 40}, progress.WarningSpike},
		{"steady low load", [7]float64{20, 20, 20, 20, 20, 20, 20}, progress.WarningTooLow},
		{"no baseline with heavy day", [7]float64{0, 0, 0, 0, 0, 0, 300}, progress.WarningNone},
		{"no baseline with light day", [7]float64{0, 0, 0, 0, 0, 0, 30}, progress.WarningTooLow},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Warning, progress.LoadWarning(tc.Loads))
		})
	}
}

func TestAssessRecovery(t *testing.T) {
	r := progress.AssessRecovery([7]float64{100, 100, 100, 100, 100, 100, 200})
	assert.Equal(t, 20, r.Score)
	assert.Equal(t, 200.0, r.TodayLoad)
	assert.Equal(t, 100.0, r.AverageLoad)
	assert.Equal(t, progress.WarningSpike, r.Warning)
	assert.NotEmpty(t, r.Message)

	empty := progress.AssessRecovery([7]float64{})
	assert.Equal(t, 100, empty.Score)
	assert.Equal(t, progress.WarningTooLow, empty.Warning)
}
