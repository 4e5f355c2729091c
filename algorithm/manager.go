package algorithm

import (
	"context"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-lab-api/maze"
)

// State is the lifecycle state shared by every algorithm manager.
type State int32

const (
	// Idle means no run is in flight; Start is allowed.
	Idle State = iota
	// Running means the run goroutine is advancing generations.
	Running
	// Paused means the run goroutine is parked at a generation boundary.
	Paused
	// Stopped means the last run was interrupted. Start is allowed again
	// once the run goroutine has exited.
	Stopped
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Runner is one algorithm variant. Run advances the traversal, calling
// m.Gate at every generation boundary and emitting progress through
// m.Dispatcher. It returns ErrNoSolution / ErrExhausted for expected
// terminal conditions and the context error when interrupted.
type Runner interface {
	Run(ctx context.Context, m *Manager, g *maze.Grid) error
}

// Manager owns the lifecycle state machine of one algorithm family:
// Idle -> Running -> (Paused <-> Running) -> Stopped or back to Idle.
// The run executes on its own goroutine so callers are never blocked;
// pause and interrupt are observed cooperatively at generation boundaries.
type Manager struct {
	mu         sync.Mutex
	state      State
	delay      time.Duration
	resumed    chan struct{} // closed whenever the run is not paused
	cancel     context.CancelFunc
	done       chan struct{}
	lastErr    error
	dispatcher *Dispatcher
}

// NewManager creates an idle manager dispatching through d.
func NewManager(d *Dispatcher) *Manager {
	if d == nil {
		d = NewDispatcher()
	}
	done := make(chan struct{})
	close(done)
	resumed := make(chan struct{})
	close(resumed)
	return &Manager{
		state:      Idle,
		resumed:    resumed,
		done:       done,
		dispatcher: d,
	}
}

// Dispatcher returns the event dispatcher runs emit through.
func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetDelay sets the inter-generation pacing. Zero means no artificial
// delay. Negative values are rejected and the previous value is retained.
func (m *Manager) SetDelay(d time.Duration) error {
	if d < 0 {
		return ErrInvalidConfiguration
	}
	m.mu.Lock()
	m.delay = d
	m.mu.Unlock()
	return nil
}

// Delay returns the configured inter-generation pacing.
func (m *Manager) Delay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.delay
}

// Start launches r against g on a new goroutine. It fails with
// ErrAlreadyRunning while a previous run is still in flight. Starting is
// allowed from Idle and from Stopped once the interrupted run has exited.
func (m *Manager) Start(g *maze.Grid, r Runner) error {
	m.mu.Lock()
	if m.state == Running || m.state == Paused {
		m.mu.Unlock()
		return ErrAlreadyRunning
	}
	select {
	case <-m.done:
	default:
		// Interrupted run still draining to its next poll point.
		m.mu.Unlock()
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.state = Running
	m.cancel = cancel
	m.lastErr = nil
	resumed := make(chan struct{})
	close(resumed)
	m.resumed = resumed
	m.done = make(chan struct{})
	m.mu.Unlock()

	go func() {
		err := r.Run(ctx, m, g)
		m.finish(err)
	}()
	return nil
}

func (m *Manager) finish(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Stopped {
		m.state = Idle
	}
	m.lastErr = err
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	close(m.done)
}

// Pause toggles between Running and Paused. The run parks before the next
// generation boundary and resumes from exactly that boundary; no work is
// lost or duplicated. Outside Running/Paused this is a no-op.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Running:
		m.state = Paused
		m.resumed = make(chan struct{})
	case Paused:
		m.state = Running
		close(m.resumed)
	}
}

// Resume returns a paused run to Running. No-op unless Paused.
func (m *Manager) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Paused {
		return
	}
	m.state = Running
	close(m.resumed)
}

// Interrupt requests cooperative cancellation. The run observes it at the
// next generation boundary and exits without completing; grid state is left
// as last written. No-op unless Running or Paused.
func (m *Manager) Interrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Running && m.state != Paused {
		return
	}
	if m.state == Paused {
		close(m.resumed)
	}
	m.state = Stopped
	if m.cancel != nil {
		m.cancel()
	}
}

// Wait blocks until the current run exits and returns its terminal error,
// nil on natural completion.
func (m *Manager) Wait() error {
	m.mu.Lock()
	done := m.done
	m.mu.Unlock()
	<-done
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Done returns a channel closed when the current run exits.
func (m *Manager) Done() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Gate is the single intentional suspension point of a run. Called at each
// generation boundary, it waits the configured delay, parks while paused
// and returns the context error once interrupted.
func (m *Manager) Gate(ctx context.Context) error {
	m.mu.Lock()
	delay := m.delay
	m.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	for {
		m.mu.Lock()
		resumed := m.resumed
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-resumed:
		}

		m.mu.Lock()
		paused := m.state == Paused
		m.mu.Unlock()
		if !paused {
			return nil
		}
	}
}
