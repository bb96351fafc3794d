// internal/common/config/config.go
package config

import (
	"fmt"

	"tryon-workers/internal/engine"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Engine   EngineConfig            `mapstructure:"engine"`
	Catalog  CatalogConfig           `mapstructure:"catalog"`
	Tips     TipsConfig              `mapstructure:"tips"`
	Logging  LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Domain Configuration Sections ---

// EngineConfig exposes the fit engine calibration constants. The sensitivity
// and threshold defaults are pending product calibration data, so they live
// in configuration rather than in code.
type EngineConfig struct {
	PenaltySensitivity    float64                       `mapstructure:"penalty_sensitivity"`
	SeverityMinorPct      float64                       `mapstructure:"severity_minor_pct"`
	SeverityModeratePct   float64                       `mapstructure:"severity_moderate_pct"`
	SeveritySeverePct     float64                       `mapstructure:"severity_severe_pct"`
	LevelVeryHighMin      float64                       `mapstructure:"level_very_high_min"`
	LevelHighMin          float64                       `mapstructure:"level_high_min"`
	LevelMediumMin        float64                       `mapstructure:"level_medium_min"`
	InconsistentScoreMax  float64                       `mapstructure:"inconsistent_score_max"`
	InconsistentSpreadPct float64                       `mapstructure:"inconsistent_spread_pct"`
	DirectionalMeanPct    float64                       `mapstructure:"directional_mean_pct"`
	AreaWeights           map[string]map[string]float64 `mapstructure:"area_weights"`
}

// Tunables converts the configured calibration into engine tunables, filling
// every unset value from the engine defaults.
func (c EngineConfig) Tunables() engine.Tunables {
	tun := engine.DefaultTunables()

	if c.PenaltySensitivity > 0 {
		tun.PenaltySensitivity = c.PenaltySensitivity
	}
	if c.SeverityMinorPct > 0 {
		tun.SeverityMinorPct = c.SeverityMinorPct
	}
	if c.SeverityModeratePct > 0 {
		tun.SeverityModeratePct = c.SeverityModeratePct
	}
	if c.SeveritySeverePct > 0 {
		tun.SeveritySeverePct = c.SeveritySeverePct
	}
	if c.LevelVeryHighMin > 0 {
		tun.LevelVeryHighMin = c.LevelVeryHighMin
	}
	if c.LevelHighMin > 0 {
		tun.LevelHighMin = c.LevelHighMin
	}
	if c.LevelMediumMin > 0 {
		tun.LevelMediumMin = c.LevelMediumMin
	}
	if c.InconsistentScoreMax > 0 {
		tun.InconsistentScoreMax = c.InconsistentScoreMax
	}
	if c.InconsistentSpreadPct > 0 {
		tun.InconsistentSpreadPct = c.InconsistentSpreadPct
	}
	if c.DirectionalMeanPct > 0 {
		tun.DirectionalMeanPct = c.DirectionalMeanPct
	}
	if len(c.AreaWeights) > 0 {
		weights := make(map[string]engine.AreaWeights, len(c.AreaWeights))
		for category, byArea := range c.AreaWeights {
			weights[category] = engine.AreaWeights{
				Chest: byArea["chest"],
				Waist: byArea["waist"],
				Hip:   byArea["hip"],
			}
		}
		tun.AreaWeights = weights
	}

	return tun
}

// CatalogConfig configures the Elasticsearch-backed product catalog lookup
// used by the complementary recommender.
type CatalogConfig struct {
	Index      string `mapstructure:"index"`
	MaxResults int    `mapstructure:"max_results"`
}

// TipsConfig points the styling-tips worker at an optional external tips
// registry. An empty path keeps the built-in table.
type TipsConfig struct {
	RegistryPath string `mapstructure:"registry_path"`
	CacheTTLSec  int    `mapstructure:"cache_ttl_sec"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
