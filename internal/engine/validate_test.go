// internal/engine/validate_test.go
package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAvatar(t *testing.T) {
	tests := []struct {
		name          string
		avatar        AvatarMeasurements
		expectedCodes []string
	}{
		{
			name:   "valid snapshot",
			avatar: testAvatar(),
		},
		{
			name:   "zero values mean not captured, not invalid",
			avatar: AvatarMeasurements{},
		},
		{
			name:          "negative measurement rejected",
			avatar:        AvatarMeasurements{ChestCm: -96},
			expectedCodes: []string{IssueInvalidMeasurement},
		},
		{
			name:          "NaN rejected",
			avatar:        AvatarMeasurements{WaistCm: math.NaN()},
			expectedCodes: []string{IssueInvalidMeasurement},
		},
		{
			name:          "infinity rejected",
			avatar:        AvatarMeasurements{HipCm: math.Inf(1)},
			expectedCodes: []string{IssueInvalidMeasurement},
		},
		{
			name:          "multiple bad fields each reported",
			avatar:        AvatarMeasurements{HeightCm: -1, ChestCm: math.NaN()},
			expectedCodes: []string{IssueInvalidMeasurement, IssueInvalidMeasurement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ValidateAvatar(tt.avatar)
			assert.Len(t, issues, len(tt.expectedCodes))
			for i, code := range tt.expectedCodes {
				assert.Equal(t, code, issues[i].Code)
			}
		})
	}
}

func TestValidateSizeChart(t *testing.T) {
	tests := []struct {
		name          string
		chart         GarmentSizeChart
		expectedCodes []string
	}{
		{
			name:  "valid chart",
			chart: chartM(),
		},
		{
			name:  "empty size system treated as absent",
			chart: GarmentSizeChart{SizeLabel: "M", ChestCm: 96},
		},
		{
			name:          "unknown size system rejected",
			chart:         GarmentSizeChart{SizeLabel: "M", SizeSystem: "MARS"},
			expectedCodes: []string{IssueUnknownSizeSystem},
		},
		{
			name:          "missing label rejected",
			chart:         GarmentSizeChart{ChestCm: 96},
			expectedCodes: []string{IssueMissingSizeLabel},
		},
		{
			name:          "negative target rejected",
			chart:         GarmentSizeChart{SizeLabel: "M", WaistCm: -80},
			expectedCodes: []string{IssueInvalidMeasurement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ValidateSizeChart(tt.chart)
			assert.Len(t, issues, len(tt.expectedCodes))
			for i, code := range tt.expectedCodes {
				assert.Equal(t, code, issues[i].Code)
			}
		})
	}
}
