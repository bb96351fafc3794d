// internal/engine/confidence.go
package engine

import "math"

// Score aggregates per-area deviations into a 0-100 confidence score and its
// discrete level. An empty area list yields the floor (0, low): no measurement
// data means no confidence, not a default good fit.
//
// The score is 100 minus the weighted average of per-area penalties, where
// each penalty is min(100, |deviation| * sensitivity) and the weights come
// from the garment category. Because every penalty is non-decreasing in
// |deviation|, the score is monotonically non-increasing as any area's
// absolute deviation grows.
func (e *Engine) Score(areas []FitAreaEstimation, category string) (float64, ConfidenceLevel) {
	if len(areas) == 0 {
		return 0, LevelLow
	}

	weights := e.tun.weightsFor(category)

	var weightedPenalty, weightSum float64
	for _, a := range areas {
		w := weights.of(a.Area)
		penalty := math.Min(100, math.Abs(a.DeviationPct)*e.tun.PenaltySensitivity)
		weightedPenalty += penalty * w
		weightSum += w
	}

	if weightSum <= 0 {
		// Category weights can zero out every present area; fall back to
		// equal weighting so present data still counts.
		weightedPenalty, weightSum = 0, 0
		for _, a := range areas {
			weightedPenalty += math.Min(100, math.Abs(a.DeviationPct)*e.tun.PenaltySensitivity)
			weightSum++
		}
	}

	score := 100 - weightedPenalty/weightSum
	score = math.Max(0, math.Min(100, score))

	return score, e.levelFor(score)
}

func (e *Engine) levelFor(score float64) ConfidenceLevel {
	switch {
	case score >= e.tun.LevelVeryHighMin:
		return LevelVeryHigh
	case score >= e.tun.LevelHighMin:
		return LevelHigh
	case score >= e.tun.LevelMediumMin:
		return LevelMedium
	default:
		return LevelLow
	}
}
