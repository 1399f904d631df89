package di

import (
	"os"
	"strconv"
	"time"

	"research_backend/internal/feature/research/domain/entity"
	researchusecase "research_backend/internal/feature/research/usecase"
	"research_backend/internal/platform/cache"
)

// ResearchCacheConfig configures the in-process research report memo.
type ResearchCacheConfig struct {
	TTL          time.Duration
	MaxEntries   int
	SingleFlight bool
}

// LoadResearchCacheConfig reads RESEARCH_CACHE_TTL, RESEARCH_CACHE_MAX_ENTRIES and RESEARCH_CACHE_SINGLEFLIGHT.
func LoadResearchCacheConfig() ResearchCacheConfig {
	maxEntries, err := strconv.Atoi(os.Getenv("RESEARCH_CACHE_MAX_ENTRIES"))
	if err != nil {
		maxEntries = 0
	}
	return ResearchCacheConfig{
		TTL:          durationFromEnv("RESEARCH_CACHE_TTL", researchusecase.DefaultCacheTTL),
		MaxEntries:   maxEntries,
		SingleFlight: os.Getenv("RESEARCH_CACHE_SINGLEFLIGHT") != "false",
	}
}

// NewResearchCache creates the memo shared by every research request.
func NewResearchCache(cfg ResearchCacheConfig) (*cache.Memo[*entity.ResearchReport], error) {
	return cache.NewMemo[*entity.ResearchReport](cache.Options{
		MaxEntries:   cfg.MaxEntries,
		SingleFlight: cfg.SingleFlight,
		Namespace:    "research",
	})
}
