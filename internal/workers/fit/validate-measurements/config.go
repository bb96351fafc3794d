// internal/workers/fit/validate-measurements/config.go
package validatemeasurements

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
