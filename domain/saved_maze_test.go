package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSavedMaze(t *testing.T) {
	rows := []string{
		"S..#",
		".##.",
		"...E",
	}

	t.Run("valid layout", func(t *testing.T) {
		m, err := NewSavedMaze(SavedMazeConfig{
			ID:      uuid.New(),
			OwnerID: uuid.New(),
			Name:    "gap maze",
			Conn:    4,
			Rows:    rows,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, m.Width)
		assert.Equal(t, 3, m.Height)
		assert.Equal(t, rows, m.Rows)
		assert.False(t, m.CreatedAt.IsZero())
		assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewSavedMaze(SavedMazeConfig{Name: "", Rows: rows})
		assert.Error(t, err)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		_, err := NewSavedMaze(SavedMazeConfig{Name: strings.Repeat("x", 65), Rows: rows})
		assert.Error(t, err)
	})

	t.Run("empty layout rejected", func(t *testing.T) {
		_, err := NewSavedMaze(SavedMazeConfig{Name: "empty", Rows: nil})
		assert.Error(t, err)
	})

	t.Run("ragged layout rejected", func(t *testing.T) {
		_, err := NewSavedMaze(SavedMazeConfig{Name: "ragged", Rows: []string{"..", "..."}})
		assert.Error(t, err)
	})
}
