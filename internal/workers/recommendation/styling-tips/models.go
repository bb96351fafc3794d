// internal/workers/recommendation/styling-tips/models.go
package stylingtips

import "tryon-workers/internal/engine"

type Input struct {
	Category string `json:"category"`
}

type Output struct {
	Category string              `json:"category"`
	Tips     []engine.StylingTip `json:"tips"`
}

// TipsRegistry is the on-disk shape of a tips registry file.
type TipsRegistry struct {
	Version string                         `json:"version"`
	Tips    map[string][]engine.StylingTip `json:"tips"`
}
