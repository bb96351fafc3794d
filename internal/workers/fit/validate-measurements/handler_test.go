// internal/workers/fit/validate-measurements/handler_test.go
package validatemeasurements

import (
	"context"
	"math"
	"testing"

	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/engine"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func validAvatar() *engine.AvatarMeasurements {
	return &engine.AvatarMeasurements{HeightCm: 172, ChestCm: 96, WaistCm: 80, HipCm: 100}
}

func validChart() engine.GarmentSizeChart {
	return engine.GarmentSizeChart{SizeLabel: "M", SizeSystem: "EU", Category: "tops", ChestCm: 96, WaistCm: 80, HipCm: 100}
}

func TestHandler_Execute_AllValid(t *testing.T) {
	handler := newHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		AvatarMeasurements: validAvatar(),
		SizeCharts:         []engine.GarmentSizeChart{validChart()},
	})

	assert.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Issues)

	_, parseErr := uuid.Parse(output.ValidationID)
	assert.NoError(t, parseErr)
}

func TestHandler_Execute_CollectsIssuesAcrossInputs(t *testing.T) {
	handler := newHandler(t)

	avatar := validAvatar()
	avatar.ChestCm = -4

	badChart := validChart()
	badChart.SizeSystem = "MARS"
	badChart.WaistCm = math.NaN()

	output, err := handler.Execute(context.Background(), &Input{
		AvatarMeasurements: avatar,
		SizeCharts:         []engine.GarmentSizeChart{validChart(), badChart},
	})

	assert.NoError(t, err)
	assert.False(t, output.Valid)
	assert.Len(t, output.Issues, 3)

	codes := make([]string, 0, len(output.Issues))
	for _, issue := range output.Issues {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, engine.IssueInvalidMeasurement)
	assert.Contains(t, codes, engine.IssueUnknownSizeSystem)
}

func TestHandler_Execute_ZeroMeasurementsAreValid(t *testing.T) {
	handler := newHandler(t)

	// Zero means not captured, never an error
	output, err := handler.Execute(context.Background(), &Input{
		AvatarMeasurements: &engine.AvatarMeasurements{},
	})

	assert.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Issues)
}

func TestHandler_Execute_EmptyInput(t *testing.T) {
	handler := newHandler(t)

	output, err := handler.Execute(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.True(t, output.Valid)
	assert.NotNil(t, output.Issues)
}

func TestHandler_Execute_UniqueValidationIDs(t *testing.T) {
	handler := newHandler(t)

	first, err := handler.Execute(context.Background(), &Input{})
	assert.NoError(t, err)
	second, err := handler.Execute(context.Background(), &Input{})
	assert.NoError(t, err)

	assert.NotEqual(t, first.ValidationID, second.ValidationID)
}
