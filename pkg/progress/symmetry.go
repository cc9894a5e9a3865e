package progress

import "math"

type BalanceStatus string

const (
	BalanceBalanced BalanceStatus = "balanced"
	BalanceUnder    BalanceStatus = "under"
	BalanceOver     BalanceStatus = "over"
)

const (
	BalancedShareMin = 10.0
	BalancedShareMax = 25.0
)

type PartShare struct {
	BodyPart BodyPart      `json:"body_part"`
	Load     float64       `json:"load"`
	Percent  float64       `json:"percent"`
	Status   BalanceStatus `json:"status"`
}

// ClassifyShare maps a body part's percentage of total load to a status.
// Untrained parts are reported as under, never balanced.
func ClassifyShare(percent float64) BalanceStatus {
	switch {
	case percent > BalancedShareMax:
		return BalanceOver
	case percent >= BalancedShareMin:
		return BalanceBalanced
	default:
		return BalanceUnder
	}
}

// Symmetry reports every fixed body part's share of the total load.
func Symmetry(loads map[BodyPart]float64) []PartShare {
	total := 0.0
	for _, p := range BodyParts {
		total += loads[p]
	}
	out := make([]PartShare, 0, len(BodyParts))
	for _, p := range BodyParts {
		load := loads[p]
		percent := 0.0
		if total > 0 {
			percent = 100 * load / total
		}
		out = append(out, PartShare{
			BodyPart: p,
			Load:     load,
			Percent:  math.Round(percent*10) / 10,
			Status:   ClassifyShare(percent),
		})
	}
	return out
}
