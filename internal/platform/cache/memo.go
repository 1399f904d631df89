// Package cache provides caching for expensive computations and provider calls.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"golang.org/x/sync/singleflight"

	"research_backend/internal/platform/metrics"
)

const defaultMemoNamespace = "memo"

// ComputeError wraps a failure returned by the compute function of GetOrCompute.
// Nothing is cached when it is returned.
type ComputeError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *ComputeError) Error() string {
	return fmt.Sprintf("cache compute %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying compute error.
func (e *ComputeError) Unwrap() error { return e.Err }

// Options configures a Memo.
type Options struct {
	// MaxEntries bounds the number of entries with LRU eviction. <= 0 means unbounded.
	MaxEntries int
	// SingleFlight shares one in-flight compute between concurrent misses for the same key.
	SingleFlight bool
	// Namespace is used as the metrics label.
	Namespace string
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

type memoEntry[V any] struct {
	value    V
	storedAt time.Time
}

// memoStore is the backing store; all calls happen under Memo.mu.
type memoStore[V any] interface {
	Get(key string) (memoEntry[V], bool)
	Add(key string, e memoEntry[V]) bool
	Len() int
}

type mapStore[V any] map[string]memoEntry[V]

func (s mapStore[V]) Get(key string) (memoEntry[V], bool) {
	e, ok := s[key]
	return e, ok
}

func (s mapStore[V]) Add(key string, e memoEntry[V]) bool {
	s[key] = e
	return false
}

func (s mapStore[V]) Len() int { return len(s) }

// Memo is an in-process, time-bounded memoization cache.
//
// Entries are valid while now-storedAt < ttl. Expired entries are not swept;
// they are treated as absent and overwritten by the next successful compute.
// A Memo is safe for concurrent use. Without SingleFlight, concurrent misses
// for the same key may each run compute. With SingleFlight, the shared compute
// keeps running when the caller that started it goes away.
type Memo[V any] struct {
	mu           sync.Mutex
	store        memoStore[V]
	group        singleflight.Group
	singleFlight bool
	namespace    string
	now          func() time.Time
}

// NewMemo creates a Memo. It fails only when the LRU cannot be built.
func NewMemo[V any](opts Options) (*Memo[V], error) {
	m := &Memo[V]{
		singleFlight: opts.SingleFlight,
		namespace:    opts.Namespace,
		now:          opts.Now,
	}
	if m.namespace == "" {
		m.namespace = defaultMemoNamespace
	}
	if m.now == nil {
		m.now = time.Now
	}

	if opts.MaxEntries > 0 {
		lru, err := simplelru.NewLRU[string, memoEntry[V]](opts.MaxEntries, nil)
		if err != nil {
			return nil, fmt.Errorf("create lru: %w", err)
		}
		m.store = lru
	} else {
		m.store = mapStore[V]{}
	}
	return m, nil
}

// GetOrCompute returns the cached value for key if it is younger than ttl,
// otherwise it runs compute, stores a successful result and returns it.
// A compute failure is returned as *ComputeError and leaves the cache untouched.
func (m *Memo[V]) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (V, error)) (V, error) {
	k := normalizeKey(key)

	if v, ok := m.lookup(k, ttl); ok {
		metrics.RecordCache(m.namespace, metrics.CacheHit)
		return v, nil
	}
	metrics.RecordCache(m.namespace, metrics.CacheMiss)

	if !m.singleFlight {
		return m.computeAndStore(ctx, k, compute)
	}

	// 共有される compute は呼び出し元のキャンセルから切り離し、各呼び出し元は自分の ctx だけを待つ
	ch := m.group.DoChan(k, func() (any, error) {
		return m.computeAndStore(context.WithoutCancel(ctx), k, compute)
	})
	select {
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			var zero V
			return zero, r.Err
		}
		v, _ := r.Val.(V)
		return v, nil
	}
}

// Len reports the number of stored entries, expired ones included.
func (m *Memo[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Len()
}

func (m *Memo[V]) lookup(key string, ttl time.Duration) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.store.Get(key)
	if !ok || m.now().Sub(e.storedAt) >= ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (m *Memo[V]) computeAndStore(ctx context.Context, key string, compute func(ctx context.Context) (V, error)) (V, error) {
	v, err := compute(ctx)
	if err != nil {
		metrics.RecordCache(m.namespace, metrics.CacheFailure)
		var zero V
		return zero, &ComputeError{Key: key, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Add(key, memoEntry[V]{value: v, storedAt: m.now()})
	return v, nil
}

// Key builds a cache key from a company name and extra query parameters,
// e.g. Key("Apple", 1000) == "apple:1000".
func Key(name string, parts ...any) string {
	var b strings.Builder
	b.WriteString(normalizeKey(name))
	for _, p := range parts {
		b.WriteByte(':')
		fmt.Fprint(&b, p)
	}
	return b.String()
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
