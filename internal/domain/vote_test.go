package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuorumReached(t *testing.T) {
	t.Run("empty room has no quorum", func(t *testing.T) {
		assert.False(t, QuorumReached(0, 0))
		assert.False(t, QuorumReached(0, 5))
	})

	t.Run("a single member can never reach quorum", func(t *testing.T) {
		assert.False(t, QuorumReached(1, 1))
		assert.False(t, QuorumReached(1, 10))
	})

	t.Run("quorum needs a vote from every member", func(t *testing.T) {
		assert.False(t, QuorumReached(3, 2))
		assert.True(t, QuorumReached(3, 3))
		assert.True(t, QuorumReached(2, 2))
	})

	t.Run("stale extra votes still count", func(t *testing.T) {
		// Voters who have since disconnected keep their rows.
		assert.True(t, QuorumReached(2, 4))
	})
}
