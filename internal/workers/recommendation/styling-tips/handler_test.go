// internal/workers/recommendation/styling-tips/handler_test.go
package stylingtips

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/engine"

	"github.com/stretchr/testify/assert"
)

func newHandler(t *testing.T, cfg *Config) *Handler {
	eng := engine.New(engine.DefaultTunables())
	return NewHandler(cfg, eng, logger.NewTestLogger(t))
}

func writeRegistry(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "tips.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write registry: %v", err)
	}
	return path
}

func TestHandler_Execute_BuiltInTips(t *testing.T) {
	handler := newHandler(t, LoadConfig())

	output, err := handler.Execute(context.Background(), &Input{Category: "tops"})

	assert.NoError(t, err)
	assert.Equal(t, "tops", output.Category)
	assert.NotEmpty(t, output.Tips)
	for _, tip := range output.Tips {
		assert.NotEmpty(t, tip.Text)
	}
}

func TestHandler_Execute_UnknownCategoryReturnsEmptyList(t *testing.T) {
	handler := newHandler(t, LoadConfig())

	output, err := handler.Execute(context.Background(), &Input{Category: "swimwear"})

	assert.NoError(t, err)
	assert.NotNil(t, output.Tips)
	assert.Empty(t, output.Tips)
}

func TestHandler_Execute_RegistryOverridesBuiltIn(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "2",
		"tips": {
			"tops": [{"text": "Registry tip for tops.", "categoryLabel": "Tops"}]
		}
	}`)

	cfg := LoadConfig()
	cfg.RegistryPath = path
	handler := newHandler(t, cfg)

	output, err := handler.Execute(context.Background(), &Input{Category: "tops"})

	assert.NoError(t, err)
	assert.Len(t, output.Tips, 1)
	assert.Equal(t, "Registry tip for tops.", output.Tips[0].Text)
}

func TestHandler_Execute_RegistryMissing(t *testing.T) {
	cfg := LoadConfig()
	cfg.RegistryPath = filepath.Join(t.TempDir(), "absent.json")
	handler := newHandler(t, cfg)

	output, err := handler.Execute(context.Background(), &Input{Category: "tops"})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestHandler_Execute_RegistryFailsSchema(t *testing.T) {
	// tips entries must carry a non-empty text
	path := writeRegistry(t, `{"tips": {"tops": [{"categoryLabel": "Tops"}]}}`)

	cfg := LoadConfig()
	cfg.RegistryPath = path
	handler := newHandler(t, cfg)

	output, err := handler.Execute(context.Background(), &Input{Category: "tops"})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestHandler_Execute_RegistryCachedWithinTTL(t *testing.T) {
	path := writeRegistry(t, `{"tips": {"tops": [{"text": "First load."}]}}`)

	cfg := LoadConfig()
	cfg.RegistryPath = path
	cfg.CacheTTL = time.Hour
	handler := newHandler(t, cfg)

	first, err := handler.Execute(context.Background(), &Input{Category: "tops"})
	assert.NoError(t, err)
	assert.Equal(t, "First load.", first.Tips[0].Text)

	// A rewrite is invisible until the cache entry expires
	assert.NoError(t, os.WriteFile(path, []byte(`{"tips": {"tops": [{"text": "Second load."}]}}`), 0o644))

	second, err := handler.Execute(context.Background(), &Input{Category: "tops"})
	assert.NoError(t, err)
	assert.Equal(t, "First load.", second.Tips[0].Text)
}

func TestHandler_Execute_RegistryReloadedAfterTTL(t *testing.T) {
	path := writeRegistry(t, `{"tips": {"tops": [{"text": "First load."}]}}`)

	cfg := LoadConfig()
	cfg.RegistryPath = path
	cfg.CacheTTL = 0
	handler := newHandler(t, cfg)

	_, err := handler.Execute(context.Background(), &Input{Category: "tops"})
	assert.NoError(t, err)

	assert.NoError(t, os.WriteFile(path, []byte(`{"tips": {"tops": [{"text": "Second load."}]}}`), 0o644))

	output, err := handler.Execute(context.Background(), &Input{Category: "tops"})
	assert.NoError(t, err)
	assert.Equal(t, "Second load.", output.Tips[0].Text)
}
