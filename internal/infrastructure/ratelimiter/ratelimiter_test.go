package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	t.Run("burst is honored then exhausted", func(t *testing.T) {
		limiter := New(Options{
			MaxRatePerSecond: 1,
			MaxBurst:         3,
		})

		assert.True(t, limiter.Allow("client-1"))
		assert.True(t, limiter.Allow("client-1"))
		assert.True(t, limiter.Allow("client-1"))
		assert.False(t, limiter.Allow("client-1"))
	})

	t.Run("sources are tracked independently", func(t *testing.T) {
		limiter := New(Options{
			MaxRatePerSecond: 1,
			MaxBurst:         1,
		})

		assert.True(t, limiter.Allow("client-1"))
		assert.False(t, limiter.Allow("client-1"))
		assert.True(t, limiter.Allow("client-2"))
	})

	t.Run("remaining reflects consumed tokens", func(t *testing.T) {
		limiter := New(Options{
			MaxRatePerSecond: 1,
			MaxBurst:         5,
		})

		require.True(t, limiter.Allow("client-1"))
		require.True(t, limiter.Allow("client-1"))

		assert.Equal(t, 3, limiter.Remaining("client-1"))
		assert.Equal(t, 5, limiter.GetMaxBurst())
	})

	t.Run("source key prefers the configured header", func(t *testing.T) {
		limiter := New(Options{
			MaxRatePerSecond: 1,
			SourceHeaderKey:  "X-Forwarded-For",
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.9")
		assert.Equal(t, "203.0.113.9", limiter.GetSourceKey(r))
	})

	t.Run("source key falls back to the remote address", func(t *testing.T) {
		limiter := New(Options{
			MaxRatePerSecond: 1,
			SourceHeaderKey:  "X-Forwarded-For",
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.1:4242"
		assert.Equal(t, "192.0.2.1:4242", limiter.GetSourceKey(r))
	})
}
