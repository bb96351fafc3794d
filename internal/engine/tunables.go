// internal/engine/tunables.go
package engine

// AreaWeights distributes scoring weight across body areas. Weights are
// renormalized over the areas actually present in a measurement set, so a
// missing area never biases the aggregate.
type AreaWeights struct {
	Chest float64 `json:"chest"`
	Waist float64 `json:"waist"`
	Hip   float64 `json:"hip"`
}

func (w AreaWeights) of(area BodyArea) float64 {
	switch area {
	case AreaChest:
		return w.Chest
	case AreaWaist:
		return w.Waist
	case AreaHip:
		return w.Hip
	}
	return 0
}

// Tunables are the calibration constants of the engine. They are configuration
// rather than hard-coded values because the deviation-to-penalty sensitivity
// and the threshold defaults are still pending product calibration data.
type Tunables struct {
	// PenaltySensitivity converts an absolute deviation percentage into a
	// 0-100 penalty: penalty = min(100, |deviation| * sensitivity). The
	// default 6.25 makes an 8% deviation cost a 50 penalty.
	PenaltySensitivity float64

	// Severity bucket upper bounds, in absolute deviation percent.
	SeverityMinorPct    float64 // |dev| <= this: negligible
	SeverityModeratePct float64 // |dev| <= this: minor
	SeveritySeverePct   float64 // |dev| <= this: moderate, above: severe

	// Confidence level lower bounds.
	LevelVeryHighMin float64
	LevelHighMin     float64
	LevelMediumMin   float64

	// Inconsistency detection: a garment is an inconsistent fit when the
	// score falls below InconsistentScoreMax while the spread between the
	// largest and smallest signed area deviation exceeds
	// InconsistentSpreadPct.
	InconsistentScoreMax  float64
	InconsistentSpreadPct float64

	// DirectionalMeanPct is the half-width of the trueToSize window on the
	// mean signed deviation.
	DirectionalMeanPct float64

	// AreaWeights per garment category. Categories not listed here use
	// equal weighting of present areas.
	AreaWeights map[string]AreaWeights
}

// DefaultTunables returns the calibration used when no configuration
// overrides are supplied.
func DefaultTunables() Tunables {
	return Tunables{
		PenaltySensitivity:    6.25,
		SeverityMinorPct:      3,
		SeverityModeratePct:   8,
		SeveritySeverePct:     15,
		LevelVeryHighMin:      90,
		LevelHighMin:          75,
		LevelMediumMin:        50,
		InconsistentScoreMax:  40,
		InconsistentSpreadPct: 20,
		DirectionalMeanPct:    5,
		AreaWeights: map[string]AreaWeights{
			"tops":      {Chest: 0.5, Waist: 0.3, Hip: 0.2},
			"bottoms":   {Chest: 0.1, Waist: 0.45, Hip: 0.45},
			"dresses":   {Chest: 0.4, Waist: 0.3, Hip: 0.3},
			"outerwear": {Chest: 0.5, Waist: 0.25, Hip: 0.25},
		},
	}
}

// weightsFor resolves the weight set for a garment category, falling back to
// equal weighting when the category is unknown or unset.
func (t Tunables) weightsFor(category string) AreaWeights {
	if w, ok := t.AreaWeights[category]; ok {
		return w
	}
	return AreaWeights{Chest: 1, Waist: 1, Hip: 1}
}
