// internal/workers/fit/rank-sizes/models.go
package ranksizes

import "tryon-workers/internal/engine"

type Input struct {
	UserID             string                     `json:"userId"`
	ProductID          string                     `json:"productId"`
	AvatarMeasurements *engine.AvatarMeasurements `json:"avatarMeasurements,omitempty"`
	SizeCharts         []engine.GarmentSizeChart  `json:"sizeCharts,omitempty"`
	Preferences        *engine.Preferences        `json:"preferences,omitempty"`
}

type Output struct {
	Recommendations []engine.SizeRecommendation `json:"recommendations"`
	BestSize        string                      `json:"bestSize,omitempty"`
}
