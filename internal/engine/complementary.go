// internal/engine/complementary.go
package engine

import (
	"fmt"
	"math"
	"sort"
)

// compatibilityTable maps each garment category to its complementary
// categories in rank order: earlier entries pair better and score higher.
var compatibilityTable = map[string][]string{
	"tops":        {"bottoms", "outerwear", "accessories"},
	"bottoms":     {"tops", "shoes", "accessories"},
	"dresses":     {"outerwear", "shoes", "accessories"},
	"outerwear":   {"tops", "bottoms", "accessories"},
	"shoes":       {"bottoms", "dresses", "accessories"},
	"accessories": {"tops", "dresses", "outerwear"},
}

const (
	complementaryBaseScore = 0.9
	complementaryRankStep  = 0.15
)

// ComplementaryCategories returns the ranked complementary categories for a
// primary category, nil when the category is unknown.
func ComplementaryCategories(primaryCategory string) []string {
	ranked, ok := compatibilityTable[primaryCategory]
	if !ok {
		return nil
	}
	out := make([]string, len(ranked))
	copy(out, ranked)
	return out
}

// RecommendComplementary scores catalog products from categories that pair
// with the primary category. Products in the primary category itself are
// excluded, an unknown primary category yields an empty list, and the output
// is ordered by descending score with catalog order breaking ties.
func (e *Engine) RecommendComplementary(primaryCategory string, catalog []CategoryProduct, prefs *Preferences) []ComplementaryProductRecommendation {
	recs := make([]ComplementaryProductRecommendation, 0, len(catalog))

	ranked, ok := compatibilityTable[primaryCategory]
	if !ok {
		return recs
	}

	rankIndex := make(map[string]int, len(ranked))
	for i, cat := range ranked {
		rankIndex[cat] = i
	}

	for _, product := range catalog {
		if product.Category == primaryCategory {
			continue
		}
		rank, ok := rankIndex[product.Category]
		if !ok {
			continue
		}

		score := complementaryBaseScore - complementaryRankStep*float64(rank)
		score += prefs.boostFor(product.Category)
		score = math.Max(0, math.Min(1, score))

		recs = append(recs, ComplementaryProductRecommendation{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Reason:    fmt.Sprintf("%s pair well with %s", product.Category, primaryCategory),
			Score:     score,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return recs
}
