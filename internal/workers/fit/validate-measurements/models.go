// internal/workers/fit/validate-measurements/models.go
package validatemeasurements

import "tryon-workers/internal/engine"

type Input struct {
	AvatarMeasurements *engine.AvatarMeasurements `json:"avatarMeasurements,omitempty"`
	SizeCharts         []engine.GarmentSizeChart  `json:"sizeCharts,omitempty"`
}

type Output struct {
	ValidationID string                   `json:"validationId"`
	Valid        bool                     `json:"valid"`
	Issues       []engine.ValidationIssue `json:"issues"`
}
