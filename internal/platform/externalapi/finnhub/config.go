// Package finnhub provides a client for the Finnhub market news and symbol search API.
package finnhub

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://finnhub.io/api/v1"
	// 無料プランの上限
	defaultRatePerMinute = 60
)

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey        string        // API key for authentication
	BaseURL       string        // Base URL for the API (e.g., "https://finnhub.io/api/v1")
	Timeout       time.Duration // HTTP request timeout
	RatePerMinute int           // Outbound request budget; <= 0 disables pacing
}

// LoadConfig loads Finnhub configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:        os.Getenv("FINNHUB_API_KEY"),
		BaseURL:       os.Getenv("FINNHUB_BASE_URL"),
		Timeout:       10 * time.Second,
		RatePerMinute: defaultRatePerMinute,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if v := os.Getenv("FINNHUB_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RatePerMinute = n
		}
	}
	return cfg
}
