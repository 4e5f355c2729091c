package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_walker",
			PlainPassword: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.Equal(t, "maze_walker", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)
	})

	t.Run("username too short", func(t *testing.T) {
		_, err := NewUser(UserConfig{Username: "ab", PlainPassword: "correct-horse-battery"})
		assert.Error(t, err)
	})

	t.Run("username too long", func(t *testing.T) {
		_, err := NewUser(UserConfig{Username: "abcdefghijklmnopqrstu", PlainPassword: "correct-horse-battery"})
		assert.Error(t, err)
	})

	t.Run("username with invalid characters", func(t *testing.T) {
		_, err := NewUser(UserConfig{Username: "maze walker!", PlainPassword: "correct-horse-battery"})
		assert.Error(t, err)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{Username: "maze_walker", PlainPassword: "password"})
		assert.Error(t, err)
	})
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser(UserConfig{
		ID:            uuid.New(),
		Username:      "maze_walker",
		PlainPassword: "correct-horse-battery",
	})
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("correct-horse-battery"))
	assert.False(t, user.VerifyPassword("wrong-password"))
}
