// pkg/registry/schema.go
package registry

// TipsRegistry is the on-disk styling tips registry consumed by the
// styling-tips worker. Tips maps a garment category to its entries.
type TipsRegistry struct {
	Version     string           `json:"version"`
	LastUpdated string           `json:"lastUpdated"`
	Tips        map[string][]Tip `json:"tips"`
}

type Tip struct {
	Text          string `json:"text"`
	CategoryLabel string `json:"categoryLabel,omitempty"`
}
