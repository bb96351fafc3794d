// internal/workers/fit/rank-sizes/config.go
package ranksizes

import "time"

type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 30 * time.Minute,
		Timeout:  30 * time.Second,
	}
}
