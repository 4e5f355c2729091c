package i

import (
	"github.com/beka-birhanu/maze-lab-api/algorithm"
	dmn "github.com/beka-birhanu/maze-lab-api/domain"
	"github.com/beka-birhanu/maze-lab-api/maze"
	"github.com/google/uuid"
)

// MazeSnapshot is a point-in-time view of a maze session: the layout, the
// visualization states and the lifecycle state of both algorithm managers.
type MazeSnapshot struct {
	ID             uuid.UUID `json:"id"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Conn           int       `json:"conn"`
	Rows           []string  `json:"rows"`
	States         []string  `json:"states"`
	SolverState    string    `json:"solver_state"`
	GeneratorState string    `json:"generator_state"`
}

// GenerateParams configures one generator run. Density and Root are
// optional; Seed zero means seed from the clock.
type GenerateParams struct {
	Density *int
	Seed    int64
	Root    *maze.Position
}

// MazeStudio is the editor and algorithm-control surface exposed to the
// API layer: grid mutation before runs, lifecycle control during runs, and
// event subscription for renderers.
type MazeStudio interface {
	// CreateMaze opens a new maze session and returns its ID.
	CreateMaze(width, height int, conn maze.Connectivity, fill maze.Kind) (uuid.UUID, error)
	// Snapshot returns the current view of a session.
	Snapshot(id uuid.UUID) (*MazeSnapshot, error)
	// SetCell mutates a cell kind between runs.
	SetCell(id uuid.UUID, pos maze.Position, kind maze.Kind) error
	// ResetMaze clears visualization state and discovery links.
	ResetMaze(id uuid.UUID) error

	// Solve starts the configured path-finder variant ("bfs" or "dijkstra").
	Solve(id uuid.UUID, variant string) error
	// Generate starts the randomizer.
	Generate(id uuid.UUID, params GenerateParams) error
	// Pause toggles the running algorithm between paused and running.
	Pause(id uuid.UUID) error
	// Resume returns a paused algorithm to running.
	Resume(id uuid.UUID) error
	// Interrupt cooperatively cancels the running algorithm.
	Interrupt(id uuid.UUID) error
	// SetDelay sets inter-generation pacing for both algorithm families.
	SetDelay(id uuid.UUID, ms int) error

	// Subscribe registers a renderer and returns its event channel together
	// with an unsubscribe function.
	Subscribe(id uuid.UUID) (<-chan algorithm.Event, func(), error)

	// SaveMaze persists the session layout under the owner's account.
	SaveMaze(id, ownerID uuid.UUID, name string) (uuid.UUID, error)
	// LoadMaze opens a new session from a saved layout.
	LoadMaze(savedID uuid.UUID) (uuid.UUID, error)
	// ListSaved lists the owner's saved mazes.
	ListSaved(ownerID uuid.UUID) ([]*dmn.SavedMaze, error)
}
