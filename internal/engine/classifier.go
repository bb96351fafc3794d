// internal/engine/classifier.go
package engine

// Classify maps the deviation pattern and aggregate score to a fit
// recommendation category.
//
// Inconsistency is checked before any directional suggestion: a garment that
// is simultaneously too tight in the chest and too loose in the waist must
// not produce a naive sizeUp. Only when the fit is coherent does the mean
// signed deviation pick a direction.
func (e *Engine) Classify(areas []FitAreaEstimation, score float64, prefs *Preferences) FitCategory {
	var mean, minDev, maxDev float64
	for i, a := range areas {
		mean += a.DeviationPct
		if i == 0 || a.DeviationPct < minDev {
			minDev = a.DeviationPct
		}
		if i == 0 || a.DeviationPct > maxDev {
			maxDev = a.DeviationPct
		}
	}
	if len(areas) > 0 {
		mean /= float64(len(areas))
	}

	if score < e.tun.InconsistentScoreMax && maxDev-minDev > e.tun.InconsistentSpreadPct {
		return CategoryInconsistentFit
	}

	centered := mean - prefs.bias()
	switch {
	case centered > e.tun.DirectionalMeanPct:
		return CategorySizeUp
	case centered < -e.tun.DirectionalMeanPct:
		return CategorySizeDown
	default:
		return CategoryTrueToSize
	}
}
