package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, uint16(8080), cfg.HTTP.Port)
		assert.Equal(t, 2*time.Second, cfg.Hub.ChatCooldown)
		assert.Equal(t, 10, cfg.RateLimiter.MaxRatePerSecond)
		assert.Empty(t, cfg.AMQP.URI)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DATABASE_URL", "postgres://example/db")
		t.Setenv("HUB_CHAT_COOLDOWN", "5s")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, uint16(9090), cfg.HTTP.Port)
		assert.Equal(t, "postgres://example/db", cfg.Database.URL)
		assert.Equal(t, 5*time.Second, cfg.Hub.ChatCooldown)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")

		assert.Error(t, err)
	})
}
