// internal/engine/ranker.go
package engine

import (
	"fmt"
	"sort"
)

// RankSizes evaluates every size chart of a product against the avatar and
// orders the results by descending predicted fit. The sort is stable, so
// equal-confidence sizes keep their catalog order. An empty chart list yields
// an empty list, not an error.
func (e *Engine) RankSizes(avatar AvatarMeasurements, charts []GarmentSizeChart, prefs *Preferences) []SizeRecommendation {
	recs := make([]SizeRecommendation, 0, len(charts))
	for _, chart := range charts {
		result := e.EstimateFit(avatar, chart, prefs)
		recs = append(recs, SizeRecommendation{
			SizeLabel:  chart.SizeLabel,
			Action:     actionText(result.Category, chart.SizeLabel),
			Confidence: result.ConfidenceScore / 100,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})

	return recs
}

// actionText renders the human-readable suggestion for a size from its own
// fit category. Display formatting stays out of the category values
// themselves so the UI layer can re-map them freely.
func actionText(category FitCategory, sizeLabel string) string {
	switch category {
	case CategorySizeUp:
		return fmt.Sprintf("%s runs small for you, consider sizing up", sizeLabel)
	case CategorySizeDown:
		return fmt.Sprintf("%s runs large for you, consider sizing down", sizeLabel)
	case CategoryInconsistentFit:
		return fmt.Sprintf("%s fits unevenly across body areas, check individual measurements", sizeLabel)
	default:
		return fmt.Sprintf("%s fits true to size", sizeLabel)
	}
}
