package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"research_backend/internal/feature/news/domain/entity"
	"research_backend/internal/feature/news/usecase"
	"research_backend/internal/platform/metrics"
)

// CachingNewsProvider decorates a NewsProvider with Redis caching.
// Cache reads and writes are best effort; a Redis failure never fails the call.
type CachingNewsProvider struct {
	inner     usecase.NewsProvider
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NewsProvider = (*CachingNewsProvider)(nil)

// NewCachingNewsProvider decorates a NewsProvider with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses "news".
func NewCachingNewsProvider(rdb *redis.Client, ttl time.Duration, inner usecase.NewsProvider, namespace string) *CachingNewsProvider {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "news"
	}
	return &CachingNewsProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// CompanyNews returns cached news for the symbol and date window, fetching from
// the inner provider on a miss.
func (c *CachingNewsProvider) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]entity.RawNewsItem, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.CompanyNews(ctx, symbol, from, to)
	}

	key := c.cacheKey(symbol, from, to)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.RawNewsItem
		if err := json.Unmarshal(b, &out); err == nil {
			metrics.RecordCache(c.namespace, metrics.CacheHit)
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}
	metrics.RecordCache(c.namespace, metrics.CacheMiss)

	// 2) Fallback to the provider
	out, err := c.inner.CompanyNews(ctx, symbol, from, to)
	if err != nil {
		metrics.RecordCache(c.namespace, metrics.CacheFailure)
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a symbol and a day-granular window.
func (c *CachingNewsProvider) cacheKey(symbol string, from, to time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		c.namespace,
		safe(strings.ToUpper(symbol)),
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
