// internal/engine/classifier_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Directional(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name       string
		deviations []float64
		score      float64
		expected   FitCategory
	}{
		{
			name:       "mean above +5 suggests sizing up",
			deviations: []float64{7, 6, 8},
			score:      60,
			expected:   CategorySizeUp,
		},
		{
			name:       "mean below -5 suggests sizing down",
			deviations: []float64{-9, -6, -7},
			score:      60,
			expected:   CategorySizeDown,
		},
		{
			name:       "mean inside the window is true to size",
			deviations: []float64{2, -3, 1},
			score:      85,
			expected:   CategoryTrueToSize,
		},
		{
			name:       "boundary mean of exactly +5 stays true to size",
			deviations: []float64{5, 5, 5},
			score:      70,
			expected:   CategoryTrueToSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areas := make([]FitAreaEstimation, 0, len(tt.deviations))
			for i, d := range tt.deviations {
				areas = append(areas, FitAreaEstimation{Area: canonicalAreas[i], DeviationPct: d})
			}
			assert.Equal(t, tt.expected, e.Classify(areas, tt.score, nil))
		})
	}
}

func TestClassify_InconsistencyBeforeDirection(t *testing.T) {
	e := testEngine()

	// Tight chest, loose waist: the mean cancels out, but no single size
	// change helps. The inconsistency check must win over the directional
	// one.
	areas := []FitAreaEstimation{
		{Area: AreaChest, DeviationPct: 16},
		{Area: AreaWaist, DeviationPct: -16},
	}

	assert.Equal(t, CategoryInconsistentFit, e.Classify(areas, 10, nil))
}

func TestClassify_HighScoreNeverInconsistent(t *testing.T) {
	e := testEngine()

	// Wide spread alone is not enough; the score must also be below the
	// low threshold.
	areas := []FitAreaEstimation{
		{Area: AreaChest, DeviationPct: 13},
		{Area: AreaWaist, DeviationPct: -13},
	}

	assert.Equal(t, CategoryTrueToSize, e.Classify(areas, 55, nil))
}

func TestClassify_NoAreas(t *testing.T) {
	e := testEngine()
	assert.Equal(t, CategoryTrueToSize, e.Classify(nil, 0, nil))
}
