package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	g, err := NewGrid(4, 4, Conn4, KindEmpty)
	require.NoError(t, err)
	a := g.Arena()

	root := Position{Row: 0, Col: 0}
	mid := Position{Row: 0, Col: 1}
	leaf := Position{Row: 1, Col: 1}

	t.Run("discovery chain", func(t *testing.T) {
		require.NoError(t, a.DiscoverRoot(root))
		require.NoError(t, a.Discover(mid, root))
		require.NoError(t, a.Discover(leaf, mid))

		parent, ok := a.Parent(leaf)
		require.True(t, ok)
		assert.Equal(t, mid, parent)

		_, ok = a.Parent(root)
		assert.False(t, ok)
	})

	t.Run("single discovery per episode", func(t *testing.T) {
		err := a.Discover(mid, leaf)
		assert.ErrorIs(t, err, ErrAlreadyDiscovered)
		err = a.DiscoverRoot(root)
		assert.ErrorIs(t, err, ErrAlreadyDiscovered)
	})

	t.Run("path walks to the root", func(t *testing.T) {
		path := a.PathTo(leaf)
		assert.Equal(t, []Position{leaf, mid, root}, path)
	})

	t.Run("undiscovered has no path", func(t *testing.T) {
		assert.Nil(t, a.PathTo(Position{Row: 3, Col: 3}))
	})

	t.Run("reset drops every link", func(t *testing.T) {
		a.Reset()
		assert.False(t, a.Discovered(root))
		assert.False(t, a.Discovered(leaf))
		assert.Nil(t, a.PathTo(leaf))
	})
}
