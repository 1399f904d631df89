// Package metrics はアプリケーション全体で共有するPrometheusメトリクスを提供します。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache results used as label values.
const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheFailure = "failure"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// CacheRequestsTotal はキャッシュ参照結果をnamespace別に数えます。
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Total number of cache lookups by namespace and result",
		},
		[]string{"namespace", "result"},
	)

	// ProviderRequestsTotal は外部プロバイダへのリクエスト数をステータス別に数えます。
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of upstream provider requests by provider, endpoint and status",
		},
		[]string{"provider", "endpoint", "status"},
	)
)

// RecordCache records a cache lookup result.
func RecordCache(namespace, result string) {
	CacheRequestsTotal.WithLabelValues(namespace, result).Inc()
}

// RecordProvider records an upstream call. status 0 means a transport error.
func RecordProvider(provider, endpoint string, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	ProviderRequestsTotal.WithLabelValues(provider, endpoint, label).Inc()
}

// Middleware はリクエスト数とレイテンシを記録するginミドルウェアです。
// パスはルートテンプレート（c.FullPath）を使い、ラベルの爆発を防ぎます。
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
