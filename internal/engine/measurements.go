// internal/engine/measurements.go
package engine

import "time"

// AvatarMeasurements is a single snapshot of a shopper's body measurements in
// centimeters. A zero value in any field means that measurement was not
// captured.
type AvatarMeasurements struct {
	HeightCm   float64    `json:"heightCm,omitempty"`
	ChestCm    float64    `json:"chestCm,omitempty"`
	WaistCm    float64    `json:"waistCm,omitempty"`
	HipCm      float64    `json:"hipCm,omitempty"`
	CapturedAt *time.Time `json:"capturedAt,omitempty"`
}

// Value returns the avatar measurement for the given area, zero when absent.
func (a AvatarMeasurements) Value(area BodyArea) float64 {
	switch area {
	case AreaChest:
		return a.ChestCm
	case AreaWaist:
		return a.WaistCm
	case AreaHip:
		return a.HipCm
	}
	return 0
}

// GarmentSizeChart holds the target measurements of one (product, size) pair.
// A product exposes an ordered collection of these, ordered by increasing
// chart size, which is not necessarily alphabetical label order.
type GarmentSizeChart struct {
	SizeLabel  string  `json:"sizeLabel"`
	SizeSystem string  `json:"sizeSystem,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	Category   string  `json:"category,omitempty"`
	ChestCm    float64 `json:"chestCm,omitempty"`
	WaistCm    float64 `json:"waistCm,omitempty"`
	HipCm      float64 `json:"hipCm,omitempty"`
}

// Value returns the garment target for the given area, zero when absent.
func (c GarmentSizeChart) Value(area BodyArea) float64 {
	switch area {
	case AreaChest:
		return c.ChestCm
	case AreaWaist:
		return c.WaistCm
	case AreaHip:
		return c.HipCm
	}
	return 0
}
