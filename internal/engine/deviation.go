// internal/engine/deviation.go
package engine

import "math"

// Engine evaluates garment fit against avatar measurements using a fixed set
// of tunables. It is safe for concurrent use.
type Engine struct {
	tun Tunables
}

// New creates an engine with the given tunables. Use DefaultTunables() when
// no calibration overrides apply.
func New(tun Tunables) *Engine {
	return &Engine{tun: tun}
}

// ComputeDeviations computes the signed percentage deviation for each body
// area where both the avatar and the garment carry a positive measurement.
// Areas missing on either side are omitted from the result, never defaulted,
// and reported in the second return value.
func (e *Engine) ComputeDeviations(avatar AvatarMeasurements, chart GarmentSizeChart, prefs *Preferences) ([]FitAreaEstimation, []BodyArea) {
	areas := make([]FitAreaEstimation, 0, len(canonicalAreas))
	var missing []BodyArea

	for _, area := range canonicalAreas {
		av := avatar.Value(area)
		gv := chart.Value(area)
		if av <= 0 || gv <= 0 {
			missing = append(missing, area)
			continue
		}
		dev := (av - gv) / gv * 100
		areas = append(areas, FitAreaEstimation{
			Area:         area,
			DeviationPct: dev,
			Severity:     e.severityFor(dev, prefs.bias()),
		})
	}

	return areas, missing
}

// severityFor buckets a deviation symmetrically around the shopper's
// preferred bias.
func (e *Engine) severityFor(deviationPct, biasPct float64) Severity {
	d := math.Abs(deviationPct - biasPct)
	switch {
	case d <= e.tun.SeverityMinorPct:
		return SeverityNegligible
	case d <= e.tun.SeverityModeratePct:
		return SeverityMinor
	case d <= e.tun.SeveritySeverePct:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
