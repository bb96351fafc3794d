// internal/engine/confidence_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyAreasFloor(t *testing.T) {
	e := testEngine()

	score, level := e.Score(nil, "tops")

	assert.Equal(t, 0.0, score)
	assert.Equal(t, LevelLow, level)
}

func TestScore_SensitivityDefault(t *testing.T) {
	e := testEngine()

	// A single 8% deviation should cost roughly half the score.
	areas := []FitAreaEstimation{{Area: AreaChest, DeviationPct: 8}}
	score, level := e.Score(areas, "")

	assert.InDelta(t, 50.0, score, 0.01)
	assert.Equal(t, LevelMedium, level)
}

func TestScore_PenaltyCappedAt100(t *testing.T) {
	e := testEngine()

	areas := []FitAreaEstimation{{Area: AreaChest, DeviationPct: 400}}
	score, level := e.Score(areas, "")

	assert.Equal(t, 0.0, score)
	assert.Equal(t, LevelLow, level)
}

func TestScore_CategoryWeighting(t *testing.T) {
	e := testEngine()

	// Same deviation pattern, different categories: tops weight the chest
	// highest, bottoms barely count it.
	areas := []FitAreaEstimation{
		{Area: AreaChest, DeviationPct: 10},
		{Area: AreaWaist, DeviationPct: 0},
		{Area: AreaHip, DeviationPct: 0},
	}

	topsScore, _ := e.Score(areas, "tops")
	bottomsScore, _ := e.Score(areas, "bottoms")

	assert.Less(t, topsScore, bottomsScore)
}

func TestScore_WeightsRenormalizedOverPresentAreas(t *testing.T) {
	e := testEngine()

	// Bottoms weight chest at 0.1; with only the chest present the weight
	// sum still covers the full penalty.
	areas := []FitAreaEstimation{{Area: AreaChest, DeviationPct: 8}}
	score, _ := e.Score(areas, "bottoms")

	assert.InDelta(t, 50.0, score, 0.01)
}

func TestScore_ZeroWeightFallsBackToEqualWeighting(t *testing.T) {
	tun := DefaultTunables()
	tun.AreaWeights = map[string]AreaWeights{"tops": {Chest: 0, Waist: 1, Hip: 1}}
	e := New(tun)

	areas := []FitAreaEstimation{{Area: AreaChest, DeviationPct: 8}}
	score, _ := e.Score(areas, "tops")

	assert.InDelta(t, 50.0, score, 0.01)
}

func TestLevelThresholds(t *testing.T) {
	e := testEngine()

	tests := []struct {
		score    float64
		expected ConfidenceLevel
	}{
		{100, LevelVeryHigh},
		{90, LevelVeryHigh},
		{89.99, LevelHigh},
		{75, LevelHigh},
		{74.99, LevelMedium},
		{50, LevelMedium},
		{49.99, LevelLow},
		{0, LevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, e.levelFor(tt.score), "score %v", tt.score)
	}
}
