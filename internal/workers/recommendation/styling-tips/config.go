// internal/workers/recommendation/styling-tips/config.go
package stylingtips

import "time"

type Config struct {
	// RegistryPath points at a JSON tips registry. Empty means the
	// built-in tips table is used.
	RegistryPath string
	CacheTTL     time.Duration
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 5 * time.Minute,
		Timeout:  10 * time.Second,
	}
}
