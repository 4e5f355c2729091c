package pathfinder

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-lab-api/algorithm"
	"github.com/beka-birhanu/maze-lab-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the full event sequence of a run. Events arrive on the
// run goroutine; tests only read after Wait returns.
type recorder struct {
	events []algorithm.Event
}

func (r *recorder) NodeGerminated(e algorithm.Event) { r.events = append(r.events, e) }
func (r *recorder) NodeVisited(e algorithm.Event)    { r.events = append(r.events, e) }
func (r *recorder) NodeFound(e algorithm.Event)      { r.events = append(r.events, e) }
func (r *recorder) NodeTraversed(e algorithm.Event)  { r.events = append(r.events, e) }

func (r *recorder) ofKind(kind algorithm.EventKind) []algorithm.Event {
	var out []algorithm.Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// visitedBefore counts NodeVisited events preceding the first NodeFound.
func (r *recorder) visitedBefore() int {
	n := 0
	for _, e := range r.events {
		if e.Kind == algorithm.NodeFound {
			return n
		}
		if e.Kind == algorithm.NodeVisited {
			n++
		}
	}
	return n
}

func openGrid(t *testing.T, width, height int) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(width, height, maze.Conn4, maze.KindEmpty)
	require.NoError(t, err)
	require.NoError(t, g.SetKind(maze.Position{Row: 0, Col: 0}, maze.KindStart))
	require.NoError(t, g.SetKind(maze.Position{Row: height - 1, Col: width - 1}, maze.KindEnd))
	return g
}

func runSolver(t *testing.T, g *maze.Grid, variant Variant) (*recorder, error) {
	t.Helper()
	solver, err := New(variant)
	require.NoError(t, err)

	r := &recorder{}
	m := algorithm.NewManager(nil)
	m.Dispatcher().Register(r)
	require.NoError(t, m.Start(g, solver))
	return r, m.Wait()
}

func TestNewSolver(t *testing.T) {
	_, err := New(Variant("a-star"))
	assert.ErrorIs(t, err, algorithm.ErrInvalidConfiguration)

	s, err := New(BFS)
	require.NoError(t, err)
	assert.Equal(t, BFS, s.Variant())
}

func TestSolverOpenGrid(t *testing.T) {
	g := openGrid(t, 5, 5)
	r, err := runSolver(t, g, BFS)
	require.NoError(t, err)

	// The end sits eight steps from the start, so eight whole generations
	// complete before the find.
	assert.Equal(t, 8, r.visitedBefore())

	found := r.ofKind(algorithm.NodeFound)
	require.Len(t, found, 1)
	assert.Equal(t, maze.Position{Row: 4, Col: 4}, found[0].Cell)

	// Path reported target to root, both endpoints included.
	traversed := r.ofKind(algorithm.NodeTraversed)
	require.Len(t, traversed, 9)
	assert.Equal(t, maze.Position{Row: 4, Col: 4}, traversed[0].Cell)
	assert.Equal(t, maze.Position{Row: 0, Col: 0}, traversed[8].Cell)

	// Path cells end up marked on the grid.
	for _, e := range traversed {
		cell, err := g.CellAt(e.Cell)
		require.NoError(t, err)
		assert.Equal(t, maze.StatePath, cell.State)
	}
}

func TestSolverRoutesThroughGap(t *testing.T) {
	g := openGrid(t, 5, 5)
	for col := 0; col < 5; col++ {
		if col == 2 {
			continue
		}
		require.NoError(t, g.SetKind(maze.Position{Row: 2, Col: col}, maze.KindObstacle))
	}

	r, err := runSolver(t, g, BFS)
	require.NoError(t, err)

	var throughGap bool
	for _, e := range r.ofKind(algorithm.NodeTraversed) {
		if e.Cell == (maze.Position{Row: 2, Col: 2}) {
			throughGap = true
		}
	}
	assert.True(t, throughGap, "path must pass the only gap in the wall")
}

func TestSolverNoSolution(t *testing.T) {
	g := openGrid(t, 5, 5)
	// Wall the end into its corner.
	require.NoError(t, g.SetKind(maze.Position{Row: 3, Col: 4}, maze.KindObstacle))
	require.NoError(t, g.SetKind(maze.Position{Row: 4, Col: 3}, maze.KindObstacle))

	r, err := runSolver(t, g, BFS)
	assert.ErrorIs(t, err, algorithm.ErrNoSolution)
	assert.Empty(t, r.ofKind(algorithm.NodeFound))
	assert.Empty(t, r.ofKind(algorithm.NodeTraversed))
}

func TestSolverMissingEndpoints(t *testing.T) {
	g, err := maze.NewGrid(3, 3, maze.Conn4, maze.KindEmpty)
	require.NoError(t, err)

	solver, err := New(BFS)
	require.NoError(t, err)
	m := algorithm.NewManager(nil)

	err = solver.Run(context.Background(), m, g)
	assert.ErrorIs(t, err, ErrMissingStart)

	require.NoError(t, g.SetKind(maze.Position{Row: 0, Col: 0}, maze.KindStart))
	err = solver.Run(context.Background(), m, g)
	assert.ErrorIs(t, err, ErrMissingEnd)
}

func TestSolverDeterministicReplay(t *testing.T) {
	g := openGrid(t, 5, 5)

	first, err := runSolver(t, g, BFS)
	require.NoError(t, err)
	second, err := runSolver(t, g, BFS)
	require.NoError(t, err)

	// Re-running the same layout replays the identical event sequence.
	assert.Equal(t, first.events, second.events)
}

func TestSolverVariantParity(t *testing.T) {
	bfsGrid := openGrid(t, 7, 5)
	dijkstraGrid := openGrid(t, 7, 5)

	bfs, err := runSolver(t, bfsGrid, BFS)
	require.NoError(t, err)
	dijkstra, err := runSolver(t, dijkstraGrid, Dijkstra)
	require.NoError(t, err)

	// On uniform weights with deterministic neighbor order both variants
	// assign the same discovery parents and report the same path.
	assert.Equal(t, bfs.ofKind(algorithm.NodeTraversed), dijkstra.ofKind(algorithm.NodeTraversed))
}

func TestSolverDijkstraOpenGrid(t *testing.T) {
	g := openGrid(t, 5, 5)
	r, err := runSolver(t, g, Dijkstra)
	require.NoError(t, err)

	found := r.ofKind(algorithm.NodeFound)
	require.Len(t, found, 1)
	assert.Len(t, r.ofKind(algorithm.NodeTraversed), 9)
}

func TestSolverInterrupt(t *testing.T) {
	g := openGrid(t, 100, 100)

	solver, err := New(BFS)
	require.NoError(t, err)

	r := &recorder{}
	m := algorithm.NewManager(nil)
	m.Dispatcher().Register(r)
	require.NoError(t, m.SetDelay(5*time.Millisecond))

	require.NoError(t, m.Start(g, solver))
	time.Sleep(20 * time.Millisecond)
	m.Interrupt()

	assert.ErrorIs(t, m.Wait(), context.Canceled)
	assert.Empty(t, r.ofKind(algorithm.NodeFound))
	assert.Empty(t, r.ofKind(algorithm.NodeTraversed))

	// The interrupted episode leaves the manager restartable.
	require.NoError(t, m.SetDelay(0))
	require.NoError(t, m.Start(g, solver))
	assert.NoError(t, m.Wait())
}
