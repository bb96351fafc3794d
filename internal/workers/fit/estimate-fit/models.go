// internal/workers/fit/estimate-fit/models.go
package estimatefit

import "tryon-workers/internal/engine"

type Input struct {
	UserID             string                     `json:"userId"`
	AvatarMeasurements *engine.AvatarMeasurements `json:"avatarMeasurements,omitempty"`
	GarmentSizeChart   engine.GarmentSizeChart    `json:"garmentSizeChart"`
	Preferences        *engine.Preferences        `json:"preferences,omitempty"`
}

type Output struct {
	ConfidenceScore float64                    `json:"confidenceScore"`
	ConfidenceLevel engine.ConfidenceLevel     `json:"confidenceLevel"`
	FitCategory     engine.FitCategory         `json:"fitCategory"`
	Areas           []engine.FitAreaEstimation `json:"areas"`
	MissingAreas    []engine.BodyArea          `json:"missingAreas,omitempty"`
}
