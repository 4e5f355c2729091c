package algorithm

import "errors"

// Sentinel errors and terminal run conditions.
var (
	// ErrAlreadyRunning indicates a start request while a run is in flight.
	ErrAlreadyRunning = errors.New("algorithm: already running")
	// ErrNoSolution indicates the path-finding frontier emptied before the
	// end cell was reached. This is an expected outcome, not a failure.
	ErrNoSolution = errors.New("algorithm: no solution")
	// ErrExhausted indicates the generator frontier emptied. This is the
	// expected terminal condition of maze generation.
	ErrExhausted = errors.New("algorithm: frontier exhausted")
	// ErrInvalidConfiguration indicates an out-of-range setting such as a
	// negative delay or a density outside [0, 100]. The previous value is kept.
	ErrInvalidConfiguration = errors.New("algorithm: invalid configuration")
)
