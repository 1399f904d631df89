// Package di provides dependency injection factories for creating application components.
package di

import (
	"os"
	"time"

	newsusecase "research_backend/internal/feature/news/usecase"
	"research_backend/internal/platform/cache"
	"research_backend/internal/platform/externalapi/finnhub"
	infrahttp "research_backend/internal/platform/http"
	"research_backend/internal/shared/ratelimiter"

	"github.com/redis/go-redis/v9"
)

// DefaultNewsCacheTTL is used when NEWS_CACHE_TTL is unset or invalid.
const DefaultNewsCacheTTL = 15 * time.Minute

// NewFinnhubClient creates a fully configured Finnhub client with HTTP client and rate limiter.
func NewFinnhubClient() *finnhub.Client {
	cfg := finnhub.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout, infrahttp.WithMaxConnsPerHost(4))
	limiter := ratelimiter.NewRateLimiter("finnhub", cfg.RatePerMinute, time.Minute)
	return finnhub.NewClient(cfg, httpClient, limiter)
}

// NewNewsProvider wraps the provider with the Redis cache.
// If rdb is nil, the decorator passes every call straight through.
func NewNewsProvider(rdb *redis.Client, inner newsusecase.NewsProvider) newsusecase.NewsProvider {
	return cache.NewCachingNewsProvider(rdb, LoadNewsCacheTTL(), inner, "news")
}

// LoadNewsCacheTTL reads NEWS_CACHE_TTL as a Go duration string (e.g. "15m").
func LoadNewsCacheTTL() time.Duration {
	return durationFromEnv("NEWS_CACHE_TTL", DefaultNewsCacheTTL)
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
