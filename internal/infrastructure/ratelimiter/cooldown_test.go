package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownGate(t *testing.T) {
	newGateAt := func(start time.Time) (*CooldownGate, *time.Time) {
		now := start
		gate := NewCooldownGate(2*time.Second, nil)
		gate.now = func() time.Time { return now }
		return gate, &now
	}

	t.Run("first call is always allowed", func(t *testing.T) {
		gate, _ := newGateAt(time.Unix(1000, 0))

		assert.True(t, gate.Allow("alice"))
	})

	t.Run("call inside the cooldown is rejected", func(t *testing.T) {
		gate, now := newGateAt(time.Unix(1000, 0))

		assert.True(t, gate.Allow("alice"))

		*now = now.Add(1500 * time.Millisecond)
		assert.False(t, gate.Allow("alice"))
	})

	t.Run("call after the cooldown is allowed", func(t *testing.T) {
		gate, now := newGateAt(time.Unix(1000, 0))

		assert.True(t, gate.Allow("alice"))

		*now = now.Add(2 * time.Second)
		assert.True(t, gate.Allow("alice"))
	})

	t.Run("rejection does not restart the cooldown", func(t *testing.T) {
		gate, now := newGateAt(time.Unix(1000, 0))

		assert.True(t, gate.Allow("alice"))

		*now = now.Add(1900 * time.Millisecond)
		assert.False(t, gate.Allow("alice"))

		// 2s after the accepted call, not 2s after the rejection.
		*now = now.Add(100 * time.Millisecond)
		assert.True(t, gate.Allow("alice"))
	})

	t.Run("users are limited independently", func(t *testing.T) {
		gate, now := newGateAt(time.Unix(1000, 0))

		assert.True(t, gate.Allow("alice"))

		*now = now.Add(time.Second)
		assert.True(t, gate.Allow("bob"))
		assert.False(t, gate.Allow("alice"))
	})

	t.Run("non-positive cooldown falls back to the default", func(t *testing.T) {
		gate := NewCooldownGate(0, nil)

		assert.Equal(t, DefaultChatCooldown, gate.Cooldown())
	})
}
