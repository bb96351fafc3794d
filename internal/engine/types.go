// internal/engine/types.go

// Package engine implements the fit estimation and recommendation engine.
// Every operation is a pure function of its inputs: no I/O, no clocks, no
// randomness, no mutable state. Callers may invoke it concurrently without
// synchronization.
package engine

// BodyArea identifies one of the body areas a garment is fitted against.
type BodyArea string

const (
	AreaChest BodyArea = "chest"
	AreaWaist BodyArea = "waist"
	AreaHip   BodyArea = "hip"
)

// canonicalAreas fixes the evaluation and output order of fit areas.
var canonicalAreas = []BodyArea{AreaChest, AreaWaist, AreaHip}

// Severity classifies the magnitude of a single area's deviation.
type Severity string

const (
	SeverityNegligible Severity = "negligible"
	SeverityMinor      Severity = "minor"
	SeverityModerate   Severity = "moderate"
	SeveritySevere     Severity = "severe"
)

// ConfidenceLevel is the discrete band a confidence score falls into.
type ConfidenceLevel string

const (
	LevelVeryHigh ConfidenceLevel = "veryHigh"
	LevelHigh     ConfidenceLevel = "high"
	LevelMedium   ConfidenceLevel = "medium"
	LevelLow      ConfidenceLevel = "low"
)

// FitCategory is the sizing action suggested to the shopper.
type FitCategory string

const (
	CategorySizeDown        FitCategory = "sizeDown"
	CategoryTrueToSize      FitCategory = "trueToSize"
	CategorySizeUp          FitCategory = "sizeUp"
	CategoryInconsistentFit FitCategory = "inconsistentFit"
)

// FitAreaEstimation is the signed percentage deviation between the avatar and
// the garment target in one body area. Positive means the avatar exceeds the
// garment target (garment likely tight there), negative means the garment is
// loose.
type FitAreaEstimation struct {
	Area         BodyArea `json:"area"`
	DeviationPct float64  `json:"deviationPct"`
	Severity     Severity `json:"severity"`
}

// FitEstimationResult is the full outcome of estimating one size against one
// avatar. Areas holds chest, waist, hip in that fixed order; areas whose
// measurement is absent on either side are omitted and listed in MissingAreas.
type FitEstimationResult struct {
	ConfidenceScore float64             `json:"confidenceScore"`
	ConfidenceLevel ConfidenceLevel     `json:"confidenceLevel"`
	Category        FitCategory         `json:"fitCategory"`
	Areas           []FitAreaEstimation `json:"areas"`
	MissingAreas    []BodyArea          `json:"missingAreas,omitempty"`
}

// SizeRecommendation ranks one size of a product for the shopper.
type SizeRecommendation struct {
	SizeLabel  string  `json:"sizeLabel"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
}

// CategoryProduct is a catalog entry considered for complementary
// recommendations.
type CategoryProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ComplementaryProductRecommendation scores a product from another category
// against the primary selection.
type ComplementaryProductRecommendation struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Reason    string  `json:"reason"`
	Score     float64 `json:"score"`
}

// StylingTip is a category-specific styling suggestion.
type StylingTip struct {
	Text          string `json:"text"`
	CategoryLabel string `json:"categoryLabel"`
}
