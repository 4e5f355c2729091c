package maze

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates the requested grid size is out of range.
	ErrInvalidDimensions = errors.New("maze: invalid grid dimensions")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of grid bounds")
	// ErrInvalidPlacement indicates a second start or end endpoint was placed
	// while one already exists elsewhere. The caller must clear the old one first.
	ErrInvalidPlacement = errors.New("maze: grid already has that endpoint")
	// ErrAlreadyDiscovered indicates a cell was discovered twice in one episode.
	ErrAlreadyDiscovered = errors.New("maze: cell already discovered this episode")
	// ErrInvalidLayout indicates layout rows are empty, ragged or hold unknown runes.
	ErrInvalidLayout = errors.New("maze: invalid layout rows")
)
