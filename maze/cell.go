package maze

import "fmt"

// Kind classifies what a cell is: free floor, wall, or one of the two
// unique endpoints.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindObstacle
	KindStart
	KindEnd
)

// Rune returns the layout rune used for snapshots and persistence.
func (k Kind) Rune() rune {
	switch k {
	case KindObstacle:
		return '#'
	case KindStart:
		return 'S'
	case KindEnd:
		return 'E'
	default:
		return '.'
	}
}

// kindFromRune is the inverse of Kind.Rune.
func kindFromRune(r rune) (Kind, error) {
	switch r {
	case '.':
		return KindEmpty, nil
	case '#':
		return KindObstacle, nil
	case 'S':
		return KindStart, nil
	case 'E':
		return KindEnd, nil
	default:
		return KindEmpty, ErrInvalidLayout
	}
}

// State is the visualization state written by running algorithms and read by
// renderers. Kinds persist across runs; states are cleared by Grid.Reset.
type State uint8

const (
	StateUnvisited State = iota
	StateGerminated
	StateVisited
	StatePath
)

// Rune returns the state rune used for snapshots.
func (s State) Rune() rune {
	switch s {
	case StateGerminated:
		return 'g'
	case StateVisited:
		return 'v'
	case StatePath:
		return '*'
	default:
		return '.'
	}
}

// Position identifies a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Cell is a single grid position. Kind is mutated by the editor between
// runs, State by the currently running algorithm.
type Cell struct {
	Pos   Position
	Kind  Kind
	State State
}
