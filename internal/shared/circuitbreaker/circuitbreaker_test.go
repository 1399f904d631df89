package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      2,
	}
}

// TestCircuitBreaker_Execute_Success は成功時に結果がそのまま返ることを検証します。
func TestCircuitBreaker_Execute_Success(t *testing.T) {
	t.Parallel()

	cb := New(testConfig())
	got, err := cb.Execute(func() (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.False(t, cb.IsOpen())
}

// TestCircuitBreaker_Trips は失敗率が閾値を超えるとopenになり、呼び出しが遮断されることを検証します。
func TestCircuitBreaker_Trips(t *testing.T) {
	t.Parallel()

	cb := New(testConfig())
	boom := errors.New("boom")

	for range 2 {
		_, err := cb.Execute(func() (any, error) { return nil, boom })
		require.ErrorIs(t, err, boom)
	}
	assert.True(t, cb.IsOpen())

	called := false
	_, err := cb.Execute(func() (any, error) {
		called = true
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called)
}

// TestCircuitBreaker_MinRequests は最小リクエスト数に達するまでopenにならないことを検証します。
func TestCircuitBreaker_MinRequests(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.MinRequests = 10
	cb := New(cfg)

	for range 5 {
		_, _ = cb.Execute(func() (any, error) { return nil, errors.New("boom") })
	}
	assert.False(t, cb.IsOpen())
}

// TestAIProviderConfig はAI向け設定の値を検証します。
func TestAIProviderConfig(t *testing.T) {
	t.Parallel()

	cfg := AIProviderConfig("gemini")
	assert.Equal(t, "gemini", cfg.Name)
	assert.Equal(t, 0.6, cfg.FailureThreshold)
	assert.Equal(t, uint32(5), cfg.MinRequests)
}
