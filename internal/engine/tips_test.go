// internal/engine/tips_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipsFor_KnownCategory(t *testing.T) {
	e := testEngine()

	tips := e.TipsFor("tops")

	assert.NotEmpty(t, tips)
	for _, tip := range tips {
		assert.NotEmpty(t, tip.Text)
		assert.Equal(t, "Tops", tip.CategoryLabel)
	}
}

func TestTipsFor_UnknownCategoryReturnsEmptyList(t *testing.T) {
	e := testEngine()

	tips := e.TipsFor("unknown-category")

	assert.NotNil(t, tips)
	assert.Empty(t, tips)
}

func TestTipsFor_Deterministic(t *testing.T) {
	e := testEngine()

	first := e.TipsFor("dresses")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.TipsFor("dresses"))
	}
}

func TestTipsFromTable_CopyIsSafe(t *testing.T) {
	table := TipsTable{"tops": {{Text: "original", CategoryLabel: "Tops"}}}

	tips := TipsFromTable(table, "tops")
	tips[0].Text = "mutated"

	assert.Equal(t, "original", table["tops"][0].Text)
}
