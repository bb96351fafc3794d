// internal/engine/ranker_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func productCharts() []GarmentSizeChart {
	return []GarmentSizeChart{
		{SizeLabel: "S", ChestCm: 88, WaistCm: 72, HipCm: 92},
		{SizeLabel: "M", ChestCm: 96, WaistCm: 80, HipCm: 100},
		{SizeLabel: "L", ChestCm: 104, WaistCm: 88, HipCm: 108},
		{SizeLabel: "XL", ChestCm: 112, WaistCm: 96, HipCm: 116},
	}
}

func TestRankSizes_BestFitFirst(t *testing.T) {
	e := testEngine()

	// Avatar matches L exactly.
	avatar := AvatarMeasurements{ChestCm: 104, WaistCm: 88, HipCm: 108}

	recs := e.RankSizes(avatar, productCharts(), nil)

	assert.Len(t, recs, 4)
	assert.Equal(t, "L", recs[0].SizeLabel)
	assert.Equal(t, 1.0, recs[0].Confidence)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i].Confidence, recs[i-1].Confidence)
	}
}

func TestRankSizes_EmptyChartsYieldEmptyList(t *testing.T) {
	e := testEngine()

	recs := e.RankSizes(testAvatar(), nil, nil)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRankSizes_StableOnTies(t *testing.T) {
	e := testEngine()

	// Two charts with identical measurements under different labels score
	// identically; catalog order must survive the sort.
	charts := []GarmentSizeChart{
		{SizeLabel: "M", ChestCm: 96, WaistCm: 80, HipCm: 100},
		{SizeLabel: "M-tall", ChestCm: 96, WaistCm: 80, HipCm: 100},
	}
	avatar := AvatarMeasurements{ChestCm: 96, WaistCm: 80, HipCm: 100}

	recs := e.RankSizes(avatar, charts, nil)

	assert.Equal(t, "M", recs[0].SizeLabel)
	assert.Equal(t, "M-tall", recs[1].SizeLabel)
	assert.Equal(t, recs[0].Confidence, recs[1].Confidence)
}

func TestRankSizes_ActionTextReflectsCategory(t *testing.T) {
	e := testEngine()

	// Avatar sits well above S: that size must say so explicitly.
	avatar := AvatarMeasurements{ChestCm: 104, WaistCm: 88, HipCm: 108}

	recs := e.RankSizes(avatar, productCharts(), nil)

	var small SizeRecommendation
	for _, r := range recs {
		if r.SizeLabel == "S" {
			small = r
		}
	}
	assert.Contains(t, small.Action, "sizing up")
	assert.True(t, strings.HasPrefix(small.Action, "S "))

	assert.Contains(t, recs[0].Action, "true to size")
}

func TestRankSizes_ConfidenceIsScoreOver100(t *testing.T) {
	e := testEngine()

	charts := []GarmentSizeChart{{SizeLabel: "M", ChestCm: 96}}
	avatar := AvatarMeasurements{ChestCm: 100}

	recs := e.RankSizes(avatar, charts, nil)
	expected := e.EstimateFit(avatar, charts[0], nil).ConfidenceScore / 100

	assert.Len(t, recs, 1)
	assert.Equal(t, expected, recs[0].Confidence)
}
