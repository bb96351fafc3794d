// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func LoadRegistry(path string) (*TipsRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg TipsRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

func SaveRegistry(reg *TipsRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

// Validate checks the structural invariants the styling-tips worker relies
// on: at least one category, and no empty tip text.
func Validate(reg *TipsRegistry) error {
	if len(reg.Tips) == 0 {
		return fmt.Errorf("registry contains no tip categories")
	}

	for category, tips := range reg.Tips {
		if category == "" {
			return fmt.Errorf("registry contains an empty category name")
		}
		if len(tips) == 0 {
			return fmt.Errorf("category %s has no tips", category)
		}
		for i, tip := range tips {
			if tip.Text == "" {
				return fmt.Errorf("category %s tip %d has empty text", category, i)
			}
		}
	}

	return nil
}
