package maze

import "strings"

const maxGridDimension = 1024

// Connectivity selects neighbor adjacency: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity uint8

const (
	Conn4 Connectivity = iota
	Conn8
)

// Degree returns the neighbor count of the rule: 4 or 8. Snapshots and
// persistence carry this form rather than the enum value.
func (c Connectivity) Degree() int {
	if c == Conn8 {
		return 8
	}
	return 4
}

// ConnFromDegree maps a neighbor count (4 or 8) back to the rule.
func ConnFromDegree(degree int) (Connectivity, error) {
	switch degree {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return Conn4, ErrInvalidLayout
	}
}

// Neighbor offsets in the fixed traversal order: up, right, down, left,
// then up-right, down-right, down-left, up-left. Traversal order over
// neighbors is deterministic so algorithm runs are reproducible.
var (
	orthogonalOffsets = [4]Position{{Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}}
	diagonalOffsets   = [4]Position{{Row: -1, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: -1}}
)

// Grid is a rectangular arrangement of cells with a fixed size and
// connectivity rule. It owns the discovery arena shared by algorithm
// episodes. A grid may be cleared and reused across runs but never resized.
type Grid struct {
	width  int
	height int
	conn   Connectivity
	cells  []Cell // row-major
	arena  *Arena
	start  int // index into cells, -1 when unset
	end    int
}

// NewGrid creates a width x height grid with every cell set to fill.
// Fill must be KindEmpty or KindObstacle; endpoints are placed afterwards
// through SetKind.
func NewGrid(width, height int, conn Connectivity, fill Kind) (*Grid, error) {
	if width <= 0 || height <= 0 || width > maxGridDimension || height > maxGridDimension {
		return nil, ErrInvalidDimensions
	}
	if fill != KindEmpty && fill != KindObstacle {
		return nil, ErrInvalidLayout
	}

	cells := make([]Cell, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cells[row*width+col] = Cell{Pos: Position{Row: row, Col: col}, Kind: fill}
		}
	}

	return &Grid{
		width:  width,
		height: height,
		conn:   conn,
		cells:  cells,
		arena:  newArena(width, height),
		start:  -1,
		end:    -1,
	}, nil
}

// NewGridFromRows restores a grid from layout rows previously produced by
// Rows. Rows must be non-empty, rectangular and hold only layout runes.
func NewGridFromRows(rows []string, conn Connectivity) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidLayout
	}
	g, err := NewGrid(len(rows[0]), len(rows), conn, KindEmpty)
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		if len(line) != g.width {
			return nil, ErrInvalidLayout
		}
		for col, r := range line {
			kind, err := kindFromRune(r)
			if err != nil {
				return nil, err
			}
			if err := g.SetKind(Position{Row: row, Col: col}, kind); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Conn returns the configured connectivity rule.
func (g *Grid) Conn() Connectivity { return g.conn }

// Arena returns the discovery arena for the current episode.
func (g *Grid) Arena() *Arena { return g.arena }

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CellAt returns the cell at p.
func (g *Grid) CellAt(p Position) (*Cell, error) {
	if !g.InBound(p.Row, p.Col) {
		return nil, ErrOutOfBounds
	}
	return &g.cells[p.Row*g.width+p.Col], nil
}

// KindAt returns the kind of the cell at p, treating out-of-bounds as obstacle.
func (g *Grid) KindAt(p Position) Kind {
	if !g.InBound(p.Row, p.Col) {
		return KindObstacle
	}
	return g.cells[p.Row*g.width+p.Col].Kind
}

// Adjacent returns every in-bounds neighbor of p in the fixed traversal
// order, including obstacle cells. Generators use this to reach cells that
// are still walls.
func (g *Grid) Adjacent(p Position) []Position {
	out := make([]Position, 0, 8)
	for _, off := range orthogonalOffsets {
		q := Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
		if g.InBound(q.Row, q.Col) {
			out = append(out, q)
		}
	}
	if g.conn == Conn8 {
		for _, off := range diagonalOffsets {
			q := Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
			if g.InBound(q.Row, q.Col) {
				out = append(out, q)
			}
		}
	}
	return out
}

// Neighbors returns the in-bounds, non-obstacle neighbors of p in the fixed
// traversal order. Obstacle cells act as walls and are never returned.
func (g *Grid) Neighbors(p Position) []Position {
	adjacent := g.Adjacent(p)
	out := adjacent[:0]
	for _, q := range adjacent {
		if g.cells[q.Row*g.width+q.Col].Kind != KindObstacle {
			out = append(out, q)
		}
	}
	return out
}

// SetKind updates the kind of the cell at p. Placing a second start or end
// while one exists elsewhere is rejected with ErrInvalidPlacement and the
// grid is left unchanged; the old endpoint must be cleared first. Overwriting
// an endpoint with another kind clears it.
func (g *Grid) SetKind(p Position, kind Kind) error {
	if !g.InBound(p.Row, p.Col) {
		return ErrOutOfBounds
	}
	idx := p.Row*g.width + p.Col

	switch kind {
	case KindStart:
		if g.start != -1 && g.start != idx {
			return ErrInvalidPlacement
		}
	case KindEnd:
		if g.end != -1 && g.end != idx {
			return ErrInvalidPlacement
		}
	}

	// The cell stops being whatever endpoint it was.
	if g.start == idx {
		g.start = -1
	}
	if g.end == idx {
		g.end = -1
	}

	g.cells[idx].Kind = kind
	switch kind {
	case KindStart:
		g.start = idx
	case KindEnd:
		g.end = idx
	}
	return nil
}

// Start returns the unique start position, if set.
func (g *Grid) Start() (Position, bool) {
	if g.start == -1 {
		return Position{}, false
	}
	return g.cells[g.start].Pos, true
}

// End returns the unique end position, if set.
func (g *Grid) End() (Position, bool) {
	if g.end == -1 {
		return Position{}, false
	}
	return g.cells[g.end].Pos, true
}

// Fill sets every cell to the given kind and clears both endpoints.
// Generators use it to reset the board to all walls before carving.
func (g *Grid) Fill(kind Kind) error {
	if kind != KindEmpty && kind != KindObstacle {
		return ErrInvalidLayout
	}
	for i := range g.cells {
		g.cells[i].Kind = kind
		g.cells[i].State = StateUnvisited
	}
	g.start = -1
	g.end = -1
	g.arena.Reset()
	return nil
}

// Reset clears all visualization state back to unvisited and drops every
// discovery link from the previous episode. Kinds and endpoints persist.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].State = StateUnvisited
	}
	g.arena.Reset()
}

// Rows encodes the grid kinds as layout rows, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		b.Reset()
		for col := 0; col < g.width; col++ {
			b.WriteRune(g.cells[row*g.width+col].Kind.Rune())
		}
		rows[row] = b.String()
	}
	return rows
}

// StateRows encodes the visualization states as rows, one string per row.
func (g *Grid) StateRows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		b.Reset()
		for col := 0; col < g.width; col++ {
			b.WriteRune(g.cells[row*g.width+col].State.Rune())
		}
		rows[row] = b.String()
	}
	return rows
}

// String renders the grid layout as ASCII, one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
