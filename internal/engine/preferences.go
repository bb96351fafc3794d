// internal/engine/preferences.go
package engine

// Preferences are optional per-shopper tuning knobs. They are threaded through
// every call explicitly so tests can vary them without touching shared state;
// a nil Preferences is neutral.
type Preferences struct {
	// FitBiasPct is the shopper's preferred signed deviation in percent.
	// Negative values mean the shopper likes a looser drape, positive a
	// snugger fit. Severity buckets and the directional classification
	// window are centered on this bias.
	FitBiasPct float64 `json:"fitBiasPct,omitempty"`

	// CategoryBoosts raises (or, when negative, lowers) the compatibility
	// score of complementary products in the given categories.
	CategoryBoosts map[string]float64 `json:"categoryBoosts,omitempty"`
}

func (p *Preferences) bias() float64 {
	if p == nil {
		return 0
	}
	return p.FitBiasPct
}

func (p *Preferences) boostFor(category string) float64 {
	if p == nil || p.CategoryBoosts == nil {
		return 0
	}
	return p.CategoryBoosts[category]
}
