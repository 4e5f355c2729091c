// Package generator implements randomized maze construction. The Randomizer
// carves a spanning structure of empty passages out of an all-wall grid by
// growing a frontier from a root cell, the way Prim's algorithm grows a
// spanning tree.
package generator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-lab-api/algorithm"
	"github.com/beka-birhanu/maze-lab-api/maze"
)

const (
	// MinDensity keeps the carve a perfect corridor tree.
	MinDensity = 0
	// MaxDensity carves every frontier cell, leaving the grid fully open.
	MaxDensity = 100
)

// Options configures a Randomizer.
type Options struct {
	// Density in [0, 100] biases branching versus corridor straightness.
	// A frontier cell already touching two or more carved cells is carved
	// with probability Density/100; at 0 the result is a corridor tree,
	// at 100 the whole reachable area opens up. The mapping is monotonic:
	// a higher density never yields fewer carved cells for a fixed seed.
	Density int
	// Seed fixes the random source for reproducible layouts. Zero means
	// seed from the clock.
	Seed int64
	// Root is the carve origin. Nil picks a cell uniformly at random.
	Root *maze.Position
}

// Randomizer carves passages by randomized frontier traversal. It
// implements algorithm.Runner.
type Randomizer struct {
	mu      sync.Mutex
	density int
	seed    int64
	root    *maze.Position
}

// New creates a Randomizer, rejecting out-of-range densities.
func New(opts *Options) (*Randomizer, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Density < MinDensity || opts.Density > MaxDensity {
		return nil, algorithm.ErrInvalidConfiguration
	}
	return &Randomizer{
		density: opts.Density,
		seed:    opts.Seed,
		root:    opts.Root,
	}, nil
}

// SetDensity updates the branching bias. Out-of-range values are rejected
// and the previous value is retained.
func (r *Randomizer) SetDensity(density int) error {
	if density < MinDensity || density > MaxDensity {
		return algorithm.ErrInvalidConfiguration
	}
	r.mu.Lock()
	r.density = density
	r.mu.Unlock()
	return nil
}

// Density returns the configured branching bias.
func (r *Randomizer) Density() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.density
}

// SetSeed fixes the random source for the next run.
func (r *Randomizer) SetSeed(seed int64) {
	r.mu.Lock()
	r.seed = seed
	r.mu.Unlock()
}

// SetRoot fixes the carve origin for the next run. Nil restores random
// root selection.
func (r *Randomizer) SetRoot(root *maze.Position) {
	r.mu.Lock()
	r.root = root
	r.mu.Unlock()
}

// Run fills the grid with walls and carves from the root until the frontier
// empties. It finishes with algorithm.ErrExhausted, the expected terminal
// condition, or the context error when interrupted. Generation never
// assigns endpoints; the caller selects start and end afterwards.
func (r *Randomizer) Run(ctx context.Context, m *algorithm.Manager, g *maze.Grid) error {
	r.mu.Lock()
	density := r.density
	seed := r.seed
	root := r.root
	r.mu.Unlock()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if err := g.Fill(maze.KindObstacle); err != nil {
		return err
	}

	origin := maze.Position{Row: rng.Intn(g.Height()), Col: rng.Intn(g.Width())}
	if root != nil {
		if !g.InBound(root.Row, root.Col) {
			return maze.ErrOutOfBounds
		}
		origin = *root
	}

	d := m.Dispatcher()
	if err := g.Arena().DiscoverRoot(origin); err != nil {
		return err
	}
	carve(g, d, origin)

	frontier := make([]maze.Position, 0, g.Width()*g.Height()/4)
	frontier = expand(g, d, origin, frontier)

	for len(frontier) > 0 {
		idx := rng.Intn(len(frontier))
		p := frontier[idx]
		frontier[idx] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// A cell already touching two carved cells would braid the maze;
		// density decides whether it opens anyway.
		if carvedNeighbors(g, p) >= 2 && rng.Intn(MaxDensity) >= density {
			continue
		}

		carve(g, d, p)
		frontier = expand(g, d, p, frontier)

		if err := m.Gate(ctx); err != nil {
			return err
		}
	}

	return algorithm.ErrExhausted
}

// carve opens p into a passage and reports it visited.
func carve(g *maze.Grid, d *algorithm.Dispatcher, p maze.Position) {
	_ = g.SetKind(p, maze.KindEmpty)
	if cell, err := g.CellAt(p); err == nil {
		cell.State = maze.StateVisited
	}
	d.VisitedCell(p)
}

// expand germinates the still-walled neighbors of p into the frontier.
func expand(g *maze.Grid, d *algorithm.Dispatcher, p maze.Position, frontier []maze.Position) []maze.Position {
	for _, q := range g.Adjacent(p) {
		if g.KindAt(q) != maze.KindObstacle || g.Arena().Discovered(q) {
			continue
		}
		if err := g.Arena().Discover(q, p); err != nil {
			continue
		}
		if cell, err := g.CellAt(q); err == nil {
			cell.State = maze.StateGerminated
		}
		d.Germinated(q)
		frontier = append(frontier, q)
	}
	return frontier
}

// carvedNeighbors counts the orthogonal-and-diagonal neighbors of p that
// are already passages.
func carvedNeighbors(g *maze.Grid, p maze.Position) int {
	n := 0
	for _, q := range g.Adjacent(p) {
		if g.KindAt(q) != maze.KindObstacle {
			n++
		}
	}
	return n
}
