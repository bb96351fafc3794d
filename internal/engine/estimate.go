// internal/engine/estimate.go
package engine

// EstimateFit runs the full pipeline for one avatar against one size chart:
// per-area deviations, aggregate confidence, and fit category. The result is
// a fresh immutable value on every call.
func (e *Engine) EstimateFit(avatar AvatarMeasurements, chart GarmentSizeChart, prefs *Preferences) FitEstimationResult {
	areas, missing := e.ComputeDeviations(avatar, chart, prefs)
	score, level := e.Score(areas, chart.Category)
	category := e.Classify(areas, score, prefs)

	return FitEstimationResult{
		ConfidenceScore: score,
		ConfidenceLevel: level,
		Category:        category,
		Areas:           areas,
		MissingAreas:    missing,
	}
}
