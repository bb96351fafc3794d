// internal/engine/complementary_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []CategoryProduct {
	return []CategoryProduct{
		{ID: "p1", Name: "Linen shirt", Category: "tops"},
		{ID: "p2", Name: "Chino trousers", Category: "bottoms"},
		{ID: "p3", Name: "Wool coat", Category: "outerwear"},
		{ID: "p4", Name: "Leather belt", Category: "accessories"},
		{ID: "p5", Name: "Canvas sneakers", Category: "shoes"},
	}
}

func TestRecommendComplementary_SelfExclusion(t *testing.T) {
	e := testEngine()

	recs := e.RecommendComplementary("tops", testCatalog(), nil)

	assert.NotEmpty(t, recs)
	for _, r := range recs {
		assert.NotEqual(t, "tops", r.Category)
	}
}

func TestRecommendComplementary_RankOrderDrivesScore(t *testing.T) {
	e := testEngine()

	recs := e.RecommendComplementary("tops", testCatalog(), nil)

	// tops -> bottoms, outerwear, accessories; shoes are not compatible
	// with tops and must be filtered out.
	assert.Len(t, recs, 3)
	assert.Equal(t, "bottoms", recs[0].Category)
	assert.Equal(t, "outerwear", recs[1].Category)
	assert.Equal(t, "accessories", recs[2].Category)

	assert.InDelta(t, 0.90, recs[0].Score, 0.001)
	assert.InDelta(t, 0.75, recs[1].Score, 0.001)
	assert.InDelta(t, 0.60, recs[2].Score, 0.001)
}

func TestRecommendComplementary_UnknownCategory(t *testing.T) {
	e := testEngine()

	recs := e.RecommendComplementary("swimwear", testCatalog(), nil)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommendComplementary_EmptyCatalog(t *testing.T) {
	e := testEngine()
	assert.Empty(t, e.RecommendComplementary("tops", nil, nil))
}

func TestRecommendComplementary_PreferenceBoostReorders(t *testing.T) {
	e := testEngine()

	prefs := &Preferences{CategoryBoosts: map[string]float64{"accessories": 0.35}}
	recs := e.RecommendComplementary("tops", testCatalog(), prefs)

	// 0.60 + 0.35 = 0.95 pushes accessories ahead of bottoms at 0.90.
	assert.Equal(t, "accessories", recs[0].Category)
	assert.InDelta(t, 0.95, recs[0].Score, 0.001)
}

func TestRecommendComplementary_ScoreClamped(t *testing.T) {
	e := testEngine()

	prefs := &Preferences{CategoryBoosts: map[string]float64{"bottoms": 5, "outerwear": -5}}
	recs := e.RecommendComplementary("tops", testCatalog(), prefs)

	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestComplementaryCategories_CopyIsSafe(t *testing.T) {
	first := ComplementaryCategories("tops")
	first[0] = "mutated"

	assert.Equal(t, "bottoms", ComplementaryCategories("tops")[0])
	assert.Nil(t, ComplementaryCategories("swimwear"))
}
