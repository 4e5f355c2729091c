package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-lab-api/algorithm"
	"github.com/beka-birhanu/maze-lab-api/algorithm/generator"
	"github.com/beka-birhanu/maze-lab-api/algorithm/pathfinder"
	dmn "github.com/beka-birhanu/maze-lab-api/domain"
	"github.com/beka-birhanu/maze-lab-api/maze"
	"github.com/beka-birhanu/maze-lab-api/service/i"
	"github.com/google/uuid"
)

const (
	eventBufferSize = 1024
	runLockKeyFmt   = "maze:%s:run"
	lockTimeout     = 2 * time.Second
)

// Service-level errors.
var (
	ErrMazeNotFound = errors.New("maze session not found")
	ErrRunLockBusy  = errors.New("maze is locked by another run")
)

// mazeSession holds one grid together with its two algorithm managers.
// Both managers share one dispatcher so a renderer subscribes once per maze.
type mazeSession struct {
	grid       *maze.Grid
	dispatcher *algorithm.Dispatcher
	solver     *algorithm.Manager
	generator  *algorithm.Manager
	randomizer *generator.Randomizer
}

// busy reports whether either algorithm family is in flight. At most one of
// the two may run against the grid at any time.
func (s *mazeSession) busy() bool {
	for _, st := range []algorithm.State{s.solver.State(), s.generator.State()} {
		if st == algorithm.Running || st == algorithm.Paused {
			return true
		}
	}
	return false
}

// MazeStudio coordinates maze sessions: grid editing between runs,
// algorithm lifecycle control, event subscription and persistence of
// layouts. It enforces the one-algorithm-per-grid rule before launching
// the run goroutine, and across replicas through the run locker.
type MazeStudio struct {
	sessions       map[uuid.UUID]*mazeSession
	locker         i.RunLocker
	mazeRepo       i.MazeRepo
	logger         i.Logger
	defaultDelay   time.Duration
	defaultDensity int
	sync.RWMutex
}

// StudioConfig holds dependencies and defaults for a MazeStudio.
type StudioConfig struct {
	Locker         i.RunLocker
	MazeRepo       i.MazeRepo
	Logger         i.Logger
	DefaultDelayMS int
	DefaultDensity int
}

// NewMazeStudio creates a MazeStudio from the given configuration.
func NewMazeStudio(c *StudioConfig) (*MazeStudio, error) {
	if c == nil || c.Locker == nil || c.Logger == nil {
		return nil, errors.New("maze studio requires a run locker and a logger")
	}
	if c.DefaultDelayMS < 0 {
		return nil, algorithm.ErrInvalidConfiguration
	}
	if c.DefaultDensity < generator.MinDensity || c.DefaultDensity > generator.MaxDensity {
		return nil, algorithm.ErrInvalidConfiguration
	}
	return &MazeStudio{
		sessions:       make(map[uuid.UUID]*mazeSession),
		locker:         c.Locker,
		mazeRepo:       c.MazeRepo,
		logger:         c.Logger,
		defaultDelay:   time.Duration(c.DefaultDelayMS) * time.Millisecond,
		defaultDensity: c.DefaultDensity,
	}, nil
}

// CreateMaze opens a new maze session and returns its ID.
func (ms *MazeStudio) CreateMaze(width, height int, conn maze.Connectivity, fill maze.Kind) (uuid.UUID, error) {
	grid, err := maze.NewGrid(width, height, conn, fill)
	if err != nil {
		return uuid.Nil, err
	}
	return ms.addSession(grid)
}

func (ms *MazeStudio) addSession(grid *maze.Grid) (uuid.UUID, error) {
	randomizer, err := generator.New(&generator.Options{Density: ms.defaultDensity})
	if err != nil {
		return uuid.Nil, err
	}

	dispatcher := algorithm.NewDispatcher()
	sess := &mazeSession{
		grid:       grid,
		dispatcher: dispatcher,
		solver:     algorithm.NewManager(dispatcher),
		generator:  algorithm.NewManager(dispatcher),
		randomizer: randomizer,
	}
	_ = sess.solver.SetDelay(ms.defaultDelay)
	_ = sess.generator.SetDelay(ms.defaultDelay)

	ms.Lock()
	defer ms.Unlock()
	id := uuid.New()
	for {
		if _, ok := ms.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	ms.sessions[id] = sess

	ms.logger.Info(fmt.Sprintf("opened maze session %s (%dx%d)", id, grid.Width(), grid.Height()))
	return id, nil
}

func (ms *MazeStudio) session(id uuid.UUID) (*mazeSession, error) {
	ms.RLock()
	defer ms.RUnlock()
	sess, ok := ms.sessions[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return sess, nil
}

// Snapshot returns the current view of a session.
func (ms *MazeStudio) Snapshot(id uuid.UUID) (*i.MazeSnapshot, error) {
	sess, err := ms.session(id)
	if err != nil {
		return nil, err
	}
	return &i.MazeSnapshot{
		ID:             id,
		Width:          sess.grid.Width(),
		Height:         sess.grid.Height(),
		Conn:           sess.grid.Conn().Degree(),
		Rows:           sess.grid.Rows(),
		States:         sess.grid.StateRows(),
		SolverState:    sess.solver.State().String(),
		GeneratorState: sess.generator.State().String(),
	}, nil
}

// SetCell mutates a cell kind. Rejected while an algorithm is in flight;
// the editor works between runs.
func (ms *MazeStudio) SetCell(id uuid.UUID, pos maze.Position, kind maze.Kind) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}
	if sess.busy() {
		return algorithm.ErrAlreadyRunning
	}
	return sess.grid.SetKind(pos, kind)
}

// ResetMaze clears visualization state and discovery links, keeping kinds.
func (ms *MazeStudio) ResetMaze(id uuid.UUID) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}
	if sess.busy() {
		return algorithm.ErrAlreadyRunning
	}
	sess.grid.Reset()
	return nil
}

// Solve starts the configured path-finder variant against the session grid.
func (ms *MazeStudio) Solve(id uuid.UUID, variant string) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}

	solver, err := pathfinder.New(pathfinder.Variant(variant))
	if err != nil {
		return err
	}

	return ms.startRun(id, sess, sess.solver, solver, "solve")
}

// Generate starts the randomizer against the session grid. Endpoints are
// cleared by the carve; the caller places start and end afterwards.
func (ms *MazeStudio) Generate(id uuid.UUID, params i.GenerateParams) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}

	if params.Density != nil {
		if err := sess.randomizer.SetDensity(*params.Density); err != nil {
			return err
		}
	}
	sess.randomizer.SetSeed(params.Seed)
	sess.randomizer.SetRoot(params.Root)

	return ms.startRun(id, sess, sess.generator, sess.randomizer, "generate")
}

// startRun enforces the one-algorithm-per-grid rule, takes the distributed
// run lock and launches the manager. The lock is released when the run
// goroutine exits.
func (ms *MazeStudio) startRun(id uuid.UUID, sess *mazeSession, m *algorithm.Manager, r algorithm.Runner, name string) error {
	if sess.busy() {
		return algorithm.ErrAlreadyRunning
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	release, err := ms.locker.Acquire(ctx, fmt.Sprintf(runLockKeyFmt, id))
	if err != nil {
		ms.logger.Warn(fmt.Sprintf("run lock busy for maze %s: %s", id, err))
		return ErrRunLockBusy
	}

	if err := m.Start(sess.grid, r); err != nil {
		if releaseErr := release(); releaseErr != nil {
			ms.logger.Error(fmt.Sprintf("releasing run lock for maze %s: %s", id, releaseErr))
		}
		return err
	}

	ms.logger.Info(fmt.Sprintf("started %s on maze %s", name, id))
	go ms.watchRun(id, m, release, name)
	return nil
}

// watchRun waits for the run to exit, releases the lock and records the
// terminal condition. NoSolution and Exhausted are expected outcomes and
// are reported once, never retried.
func (ms *MazeStudio) watchRun(id uuid.UUID, m *algorithm.Manager, release func() error, name string) {
	err := m.Wait()
	if releaseErr := release(); releaseErr != nil {
		ms.logger.Error(fmt.Sprintf("releasing run lock for maze %s: %s", id, releaseErr))
	}

	switch {
	case err == nil:
		ms.logger.Info(fmt.Sprintf("%s on maze %s completed", name, id))
	case errors.Is(err, algorithm.ErrNoSolution), errors.Is(err, algorithm.ErrExhausted):
		ms.logger.Info(fmt.Sprintf("%s on maze %s finished: %s", name, id, err))
	case errors.Is(err, context.Canceled):
		ms.logger.Info(fmt.Sprintf("%s on maze %s interrupted", name, id))
	default:
		ms.logger.Error(fmt.Sprintf("%s on maze %s failed: %s", name, id, err))
	}
}

// Pause toggles whichever algorithm is in flight between paused and
// running. No-op when nothing runs.
func (ms *MazeStudio) Pause(id uuid.UUID) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}
	sess.solver.Pause()
	sess.generator.Pause()
	return nil
}

// Resume returns a paused algorithm to running. No-op otherwise.
func (ms *MazeStudio) Resume(id uuid.UUID) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}
	sess.solver.Resume()
	sess.generator.Resume()
	return nil
}

// Interrupt cooperatively cancels whichever algorithm is in flight.
func (ms *MazeStudio) Interrupt(id uuid.UUID) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}
	sess.solver.Interrupt()
	sess.generator.Interrupt()
	return nil
}

// SetDelay sets inter-generation pacing for both algorithm families.
func (ms *MazeStudio) SetDelay(id uuid.UUID, delayMS int) error {
	sess, err := ms.session(id)
	if err != nil {
		return err
	}
	if delayMS < 0 {
		return algorithm.ErrInvalidConfiguration
	}
	d := time.Duration(delayMS) * time.Millisecond
	if err := sess.solver.SetDelay(d); err != nil {
		return err
	}
	return sess.generator.SetDelay(d)
}

// Subscribe registers a renderer on the session dispatcher. The returned
// function unregisters it and closes the channel.
func (ms *MazeStudio) Subscribe(id uuid.UUID) (<-chan algorithm.Event, func(), error) {
	sess, err := ms.session(id)
	if err != nil {
		return nil, nil, err
	}

	listener := newChanListener(eventBufferSize)
	sess.dispatcher.Register(listener)

	unsubscribe := func() {
		sess.dispatcher.Unregister(listener)
		listener.close()
	}
	return listener.ch, unsubscribe, nil
}

// SaveMaze persists the session layout under the owner's account.
func (ms *MazeStudio) SaveMaze(id, ownerID uuid.UUID, name string) (uuid.UUID, error) {
	if ms.mazeRepo == nil {
		return uuid.Nil, errors.New("maze persistence is not configured")
	}
	sess, err := ms.session(id)
	if err != nil {
		return uuid.Nil, err
	}
	if sess.busy() {
		return uuid.Nil, algorithm.ErrAlreadyRunning
	}

	saved, err := dmn.NewSavedMaze(dmn.SavedMazeConfig{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Conn:    sess.grid.Conn().Degree(),
		Rows:    sess.grid.Rows(),
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := ms.mazeRepo.Save(saved); err != nil {
		return uuid.Nil, err
	}
	ms.logger.Info(fmt.Sprintf("saved maze %s as %q (%s)", id, name, saved.ID))
	return saved.ID, nil
}

// LoadMaze opens a new session from a saved layout.
func (ms *MazeStudio) LoadMaze(savedID uuid.UUID) (uuid.UUID, error) {
	if ms.mazeRepo == nil {
		return uuid.Nil, errors.New("maze persistence is not configured")
	}
	saved, err := ms.mazeRepo.ByID(savedID)
	if err != nil {
		return uuid.Nil, err
	}

	conn, err := maze.ConnFromDegree(saved.Conn)
	if err != nil {
		return uuid.Nil, err
	}
	grid, err := maze.NewGridFromRows(saved.Rows, conn)
	if err != nil {
		return uuid.Nil, err
	}
	return ms.addSession(grid)
}

// ListSaved lists the owner's saved mazes.
func (ms *MazeStudio) ListSaved(ownerID uuid.UUID) ([]*dmn.SavedMaze, error) {
	if ms.mazeRepo == nil {
		return nil, errors.New("maze persistence is not configured")
	}
	return ms.mazeRepo.ByOwner(ownerID)
}
