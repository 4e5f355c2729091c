package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtService(t *testing.T) {
	service := NewJwtService("test-secret", "maze-lab")

	t.Run("generate and decode", func(t *testing.T) {
		claims := map[string]interface{}{"userID": "abc-123"}
		token, err := service.Generate(claims, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		decoded, err := service.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", decoded["userID"])
		assert.Equal(t, "maze-lab", decoded["iss"])
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := service.Generate(map[string]interface{}{"userID": "abc-123"}, -time.Hour)
		require.NoError(t, err)

		_, err = service.Decode(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewJwtService("other-secret", "maze-lab")
		token, err := other.Generate(map[string]interface{}{"userID": "abc-123"}, time.Hour)
		require.NoError(t, err)

		_, err = service.Decode(token)
		assert.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := service.Decode("not.a.token")
		assert.Error(t, err)
	})
}
