package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Run("join adds a member", func(t *testing.T) {
		registry := NewRegistry()

		replaced := registry.Join("room-1", "alice", &Client{})

		assert.False(t, replaced)
		assert.Equal(t, 1, registry.Count("room-1"))
		assert.ElementsMatch(t, []string{"alice"}, registry.Members("room-1"))
	})

	t.Run("rejoining replaces the previous channel", func(t *testing.T) {
		registry := NewRegistry()
		first := &Client{}
		second := &Client{}

		registry.Join("room-1", "alice", first)
		replaced := registry.Join("room-1", "alice", second)

		assert.True(t, replaced)
		assert.Equal(t, 1, registry.Count("room-1"), "user should appear at most once per room")

		current, ok := registry.client("room-1", "alice")
		assert.True(t, ok)
		assert.Same(t, second, current)
	})

	t.Run("leave removes the member", func(t *testing.T) {
		registry := NewRegistry()
		registry.Join("room-1", "alice", &Client{})
		registry.Join("room-1", "bob", &Client{})

		existed := registry.Leave("room-1", "alice")

		assert.True(t, existed)
		assert.ElementsMatch(t, []string{"bob"}, registry.Members("room-1"))
	})

	t.Run("leave is idempotent", func(t *testing.T) {
		registry := NewRegistry()
		registry.Join("room-1", "alice", &Client{})

		assert.True(t, registry.Leave("room-1", "alice"))
		assert.False(t, registry.Leave("room-1", "alice"))
		assert.False(t, registry.Leave("room-2", "alice"))
	})

	t.Run("empty rooms are pruned", func(t *testing.T) {
		registry := NewRegistry()
		registry.Join("room-1", "alice", &Client{})
		registry.Leave("room-1", "alice")

		registry.mu.RLock()
		_, ok := registry.rooms["room-1"]
		registry.mu.RUnlock()

		assert.False(t, ok)
		assert.Equal(t, 0, registry.Count("room-1"))
	})

	t.Run("snapshot excludes the named user", func(t *testing.T) {
		registry := NewRegistry()
		registry.Join("room-1", "alice", &Client{})
		registry.Join("room-1", "bob", &Client{})

		members := registry.snapshot("room-1", "alice")

		assert.Len(t, members, 1)
		assert.Equal(t, "bob", members[0].userID)
	})

	t.Run("members of unknown room is empty", func(t *testing.T) {
		registry := NewRegistry()

		assert.Empty(t, registry.Members("nowhere"))
		assert.Equal(t, 0, registry.Count("nowhere"))
	})
}
