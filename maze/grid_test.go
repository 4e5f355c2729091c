package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		g, err := NewGrid(5, 3, Conn4, KindEmpty)
		require.NoError(t, err)
		assert.Equal(t, 5, g.Width())
		assert.Equal(t, 3, g.Height())
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, 2000}} {
			_, err := NewGrid(dims[0], dims[1], Conn4, KindEmpty)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("fill must be empty or obstacle", func(t *testing.T) {
		_, err := NewGrid(3, 3, Conn4, KindStart)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestGridNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3, Conn4, KindEmpty)
	require.NoError(t, err)

	t.Run("fixed order up right down left", func(t *testing.T) {
		got := g.Neighbors(Position{Row: 1, Col: 1})
		want := []Position{
			{Row: 0, Col: 1},
			{Row: 1, Col: 2},
			{Row: 2, Col: 1},
			{Row: 1, Col: 0},
		}
		assert.Equal(t, want, got)
	})

	t.Run("corners stay in bounds", func(t *testing.T) {
		got := g.Neighbors(Position{Row: 0, Col: 0})
		want := []Position{
			{Row: 0, Col: 1},
			{Row: 1, Col: 0},
		}
		assert.Equal(t, want, got)
	})

	t.Run("obstacles act as walls", func(t *testing.T) {
		require.NoError(t, g.SetKind(Position{Row: 0, Col: 1}, KindObstacle))
		got := g.Neighbors(Position{Row: 1, Col: 1})
		want := []Position{
			{Row: 1, Col: 2},
			{Row: 2, Col: 1},
			{Row: 1, Col: 0},
		}
		assert.Equal(t, want, got)
		require.NoError(t, g.SetKind(Position{Row: 0, Col: 1}, KindEmpty))
	})

	t.Run("eight connectivity appends diagonals", func(t *testing.T) {
		g8, err := NewGrid(3, 3, Conn8, KindEmpty)
		require.NoError(t, err)
		got := g8.Neighbors(Position{Row: 1, Col: 1})
		want := []Position{
			{Row: 0, Col: 1},
			{Row: 1, Col: 2},
			{Row: 2, Col: 1},
			{Row: 1, Col: 0},
			{Row: 0, Col: 2},
			{Row: 2, Col: 2},
			{Row: 2, Col: 0},
			{Row: 0, Col: 0},
		}
		assert.Equal(t, want, got)
	})
}

func TestConnectivityDegree(t *testing.T) {
	assert.Equal(t, 4, Conn4.Degree())
	assert.Equal(t, 8, Conn8.Degree())

	conn, err := ConnFromDegree(4)
	require.NoError(t, err)
	assert.Equal(t, Conn4, conn)
	conn, err = ConnFromDegree(8)
	require.NoError(t, err)
	assert.Equal(t, Conn8, conn)

	_, err = ConnFromDegree(6)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestGridSetKind(t *testing.T) {
	g, err := NewGrid(4, 4, Conn4, KindEmpty)
	require.NoError(t, err)

	t.Run("unique start", func(t *testing.T) {
		require.NoError(t, g.SetKind(Position{Row: 0, Col: 0}, KindStart))
		err := g.SetKind(Position{Row: 1, Col: 1}, KindStart)
		assert.ErrorIs(t, err, ErrInvalidPlacement)

		// Grid unchanged by the rejected placement.
		start, ok := g.Start()
		require.True(t, ok)
		assert.Equal(t, Position{Row: 0, Col: 0}, start)
		assert.Equal(t, KindEmpty, g.KindAt(Position{Row: 1, Col: 1}))
	})

	t.Run("clearing start allows a new one", func(t *testing.T) {
		require.NoError(t, g.SetKind(Position{Row: 0, Col: 0}, KindEmpty))
		_, ok := g.Start()
		assert.False(t, ok)
		require.NoError(t, g.SetKind(Position{Row: 1, Col: 1}, KindStart))
	})

	t.Run("unique end", func(t *testing.T) {
		require.NoError(t, g.SetKind(Position{Row: 3, Col: 3}, KindEnd))
		err := g.SetKind(Position{Row: 2, Col: 2}, KindEnd)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
	})

	t.Run("overwriting an endpoint clears it", func(t *testing.T) {
		require.NoError(t, g.SetKind(Position{Row: 3, Col: 3}, KindObstacle))
		_, ok := g.End()
		assert.False(t, ok)
	})

	t.Run("out of bounds", func(t *testing.T) {
		err := g.SetKind(Position{Row: 9, Col: 0}, KindObstacle)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestGridReset(t *testing.T) {
	g, err := NewGrid(3, 3, Conn4, KindEmpty)
	require.NoError(t, err)
	require.NoError(t, g.SetKind(Position{Row: 0, Col: 0}, KindStart))

	// Simulate a traversal episode.
	require.NoError(t, g.Arena().DiscoverRoot(Position{Row: 0, Col: 0}))
	require.NoError(t, g.Arena().Discover(Position{Row: 0, Col: 1}, Position{Row: 0, Col: 0}))
	cell, err := g.CellAt(Position{Row: 0, Col: 1})
	require.NoError(t, err)
	cell.State = StateVisited

	g.Reset()

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c, err := g.CellAt(Position{Row: row, Col: col})
			require.NoError(t, err)
			assert.Equal(t, StateUnvisited, c.State)
			assert.False(t, g.Arena().Discovered(Position{Row: row, Col: col}))
			_, hasParent := g.Arena().Parent(Position{Row: row, Col: col})
			assert.False(t, hasParent)
		}
	}

	// Kinds persist across reset.
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 0}, start)
}

func TestGridRowsRoundTrip(t *testing.T) {
	rows := []string{
		"S..#",
		".##.",
		"...E",
	}
	g, err := NewGridFromRows(rows, Conn4)
	require.NoError(t, err)
	assert.Equal(t, rows, g.Rows())

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, Position{Row: 0, Col: 0}, start)
	end, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, Position{Row: 2, Col: 3}, end)

	t.Run("ragged rows rejected", func(t *testing.T) {
		_, err := NewGridFromRows([]string{"..", "..."}, Conn4)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("unknown rune rejected", func(t *testing.T) {
		_, err := NewGridFromRows([]string{".x"}, Conn4)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("duplicate start rejected", func(t *testing.T) {
		_, err := NewGridFromRows([]string{"SS"}, Conn4)
		assert.ErrorIs(t, err, ErrInvalidPlacement)
	})
}

func TestGridFill(t *testing.T) {
	g, err := NewGrid(3, 3, Conn4, KindEmpty)
	require.NoError(t, err)
	require.NoError(t, g.SetKind(Position{Row: 0, Col: 0}, KindStart))

	require.NoError(t, g.Fill(KindObstacle))

	_, ok := g.Start()
	assert.False(t, ok)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.Equal(t, KindObstacle, g.KindAt(Position{Row: row, Col: col}))
		}
	}
}
