package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("generates a prefixed id and trims the name", func(t *testing.T) {
		user, err := NewUser("  Ayşe ", "🦊")

		require.NoError(t, err)
		assert.Regexp(t, `^user_[0-9a-f]{8}$`, user.ID)
		assert.Equal(t, "Ayşe", user.Name)
		assert.Equal(t, "🦊", user.Avatar)
	})

	t.Run("empty avatar falls back to the default", func(t *testing.T) {
		user, err := NewUser("Mehmet", "")

		require.NoError(t, err)
		assert.Equal(t, defaultAvatar, user.Avatar)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := NewUser("   ", "🦊")

		assert.Error(t, err)
	})

	t.Run("overlong name is rejected", func(t *testing.T) {
		long := make([]byte, 65)
		for i := range long {
			long[i] = 'a'
		}

		_, err := NewUser(string(long), "")

		assert.Error(t, err)
	})
}
