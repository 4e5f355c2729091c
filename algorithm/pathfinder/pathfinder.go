// Package pathfinder implements the frontier-search family of algorithms:
// generation-by-generation BFS and a cost-keyed Dijkstra variant. On the
// uniform-weight grids this service edits, both discover the same shortest
// path; they differ only in how the frontier is ordered.
package pathfinder

import (
	"context"
	"errors"

	"github.com/beka-birhanu/maze-lab-api/algorithm"
	"github.com/beka-birhanu/maze-lab-api/maze"
)

// Variant selects the frontier policy. The set is closed; variants are
// chosen by configuration, not subclassing.
type Variant string

const (
	BFS      Variant = "bfs"
	Dijkstra Variant = "dijkstra"
)

// Sentinel errors for solver preconditions.
var (
	// ErrMissingStart indicates the grid has no start cell.
	ErrMissingStart = errors.New("pathfinder: grid has no start cell")
	// ErrMissingEnd indicates the grid has no end cell.
	ErrMissingEnd = errors.New("pathfinder: grid has no end cell")
)

// Solver runs one path-finding episode over a grid. It implements
// algorithm.Runner.
type Solver struct {
	variant Variant
}

// New creates a solver for the given variant.
func New(v Variant) (*Solver, error) {
	switch v {
	case BFS, Dijkstra:
		return &Solver{variant: v}, nil
	default:
		return nil, algorithm.ErrInvalidConfiguration
	}
}

// Variant returns the configured frontier policy.
func (s *Solver) Variant() Variant {
	return s.variant
}

// Run clears the previous episode and expands the frontier from start until
// the end cell is discovered or no expansion remains. It returns
// algorithm.ErrNoSolution when the frontier empties, and the context error
// when interrupted mid-run.
func (s *Solver) Run(ctx context.Context, m *algorithm.Manager, g *maze.Grid) error {
	start, ok := g.Start()
	if !ok {
		return ErrMissingStart
	}
	if _, ok := g.End(); !ok {
		return ErrMissingEnd
	}

	g.Reset()
	if err := g.Arena().DiscoverRoot(start); err != nil {
		return err
	}
	germinate(g, m.Dispatcher(), start)

	if s.variant == Dijkstra {
		return s.advanceByCost(ctx, m, g, start)
	}
	return s.advance(ctx, m, g, []maze.Position{start})
}

// advance expands whole generations: visit the current generation, discover
// every undiscovered neighbor into the next one, stop on the end cell.
func (s *Solver) advance(ctx context.Context, m *algorithm.Manager, g *maze.Grid, gen []maze.Position) error {
	d := m.Dispatcher()
	end, _ := g.End()

	for {
		visit(g, d, gen)

		next := make([]maze.Position, 0, len(gen)*2)
		for _, p := range gen {
			for _, q := range g.Neighbors(p) {
				if g.Arena().Discovered(q) {
					continue
				}
				if err := g.Arena().Discover(q, p); err != nil {
					return err
				}
				if q == end {
					d.Found(q)
					return traverse(g, d, q)
				}
				germinate(g, d, q)
				next = append(next, q)
			}
		}

		if len(next) == 0 {
			return algorithm.ErrNoSolution
		}
		if err := m.Gate(ctx); err != nil {
			return err
		}
		gen = next
	}
}

// advanceByCost expands a cost-keyed priority frontier, ties broken by
// insertion order. Cells of equal path cost form one generation for event
// and pacing purposes, so on uniform weights the observable behavior
// matches whole-generation expansion.
func (s *Solver) advanceByCost(ctx context.Context, m *algorithm.Manager, g *maze.Grid, start maze.Position) error {
	d := m.Dispatcher()
	end, _ := g.End()

	f := newFrontier()
	f.push(start, 0)

	currCost := 0
	batch := make([]maze.Position, 0, 16)

	for f.len() > 0 {
		p, cost := f.pop()

		if cost > currCost {
			visit(g, d, batch)
			if err := m.Gate(ctx); err != nil {
				return err
			}
			batch = batch[:0]
			currCost = cost
		}
		batch = append(batch, p)

		for _, q := range g.Neighbors(p) {
			if g.Arena().Discovered(q) {
				continue
			}
			if err := g.Arena().Discover(q, p); err != nil {
				return err
			}
			if q == end {
				visit(g, d, batch)
				d.Found(q)
				return traverse(g, d, q)
			}
			germinate(g, d, q)
			f.push(q, cost+1)
		}
	}

	visit(g, d, batch)
	return algorithm.ErrNoSolution
}

// germinate marks p as newly discovered frontier and reports it.
func germinate(g *maze.Grid, d *algorithm.Dispatcher, p maze.Position) {
	if cell, err := g.CellAt(p); err == nil {
		cell.State = maze.StateGerminated
	}
	d.Germinated(p)
}

// visit marks a whole generation visited and reports it as one batch.
func visit(g *maze.Grid, d *algorithm.Dispatcher, gen []maze.Position) {
	if len(gen) == 0 {
		return
	}
	for _, p := range gen {
		if cell, err := g.CellAt(p); err == nil {
			cell.State = maze.StateVisited
		}
	}
	d.Visited(append([]maze.Position(nil), gen...))
}

// traverse walks discovery links from the found cell back to the root,
// marking the path and reporting each step in target-to-root order. Both
// endpoints are part of the reported path.
func traverse(g *maze.Grid, d *algorithm.Dispatcher, found maze.Position) error {
	for _, p := range g.Arena().PathTo(found) {
		if cell, err := g.CellAt(p); err == nil {
			cell.State = maze.StatePath
		}
		d.Traversed(p)
	}
	return nil
}
