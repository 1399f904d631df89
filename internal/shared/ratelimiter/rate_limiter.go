// Package ratelimiter は外部API呼び出しの頻度を制限するトークンバケットを提供します。
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Wait(ctx context.Context) error
}

// RateLimiter は、API呼び出しなどの操作の頻度を制限します。
type RateLimiter struct {
	name    string
	limiter *rate.Limiter
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter は interval あたり limit 回まで許可する RateLimiter を生成します。
// limit 回までは待たずに通過し、その後は一定間隔でトークンが補充されます。
func NewRateLimiter(name string, limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 {
		// 0以下は無制限として扱う
		return &RateLimiter{name: name, limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	every := interval / time.Duration(limit)
	return &RateLimiter{name: name, limiter: rate.NewLimiter(rate.Every(every), limit)}
}

// Wait はトークンが得られるまで待機します。ctx がキャンセルされた場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limiter.Tokens() < 1 {
		slog.Debug("rate limit reached, waiting", "limiter", rl.name)
	}
	return rl.limiter.Wait(ctx)
}
