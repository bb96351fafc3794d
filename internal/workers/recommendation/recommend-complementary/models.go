// internal/workers/recommendation/recommend-complementary/models.go
package recommendcomplementary

import "tryon-workers/internal/engine"

type Input struct {
	ProductID       string                   `json:"productId"`
	PrimaryCategory string                   `json:"primaryCategory"`
	Catalog         []engine.CategoryProduct `json:"catalog,omitempty"`
	Preferences     *engine.Preferences      `json:"preferences,omitempty"`
	MaxResults      int                      `json:"maxResults,omitempty"`
}

type Output struct {
	Recommendations []engine.ComplementaryProductRecommendation `json:"recommendations"`
}
