// internal/workers/recommendation/recommend-complementary/config.go
package recommendcomplementary

import "time"

type Config struct {
	CatalogIndex string
	MaxResults   int
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CatalogIndex: "catalog-products",
		MaxResults:   20,
		Timeout:      30 * time.Second,
	}
}
