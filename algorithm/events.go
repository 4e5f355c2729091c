package algorithm

import (
	"sync"

	"github.com/beka-birhanu/maze-lab-api/maze"
)

// EventKind identifies one of the four progress notifications an algorithm
// emits while it advances.
type EventKind uint8

const (
	// NodeGerminated fires when a cell is newly discovered into the frontier.
	NodeGerminated EventKind = iota
	// NodeVisited fires when a cell, or a whole generation, completes expansion.
	NodeVisited
	// NodeFound fires once when a path-finder reaches the end cell.
	NodeFound
	// NodeTraversed fires for each cell of the reconstructed path.
	NodeTraversed
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case NodeGerminated:
		return "node_germinated"
	case NodeVisited:
		return "node_visited"
	case NodeFound:
		return "node_found"
	case NodeTraversed:
		return "node_traversed"
	default:
		return "unknown"
	}
}

// Event carries the affected cell and, for whole-generation updates, every
// member of the current generation.
type Event struct {
	Kind       EventKind       `json:"kind"`
	Cell       maze.Position   `json:"cell"`
	Generation []maze.Position `json:"generation,omitempty"`
}

// Listener observes algorithm progress. Delivery is synchronous on the
// algorithm's goroutine, so implementations must not block for long.
type Listener interface {
	NodeGerminated(Event)
	NodeVisited(Event)
	NodeFound(Event)
	NodeTraversed(Event)
}

// Dispatcher fans events out to zero or more registered listeners. Listeners
// are registered and removed explicitly by the observing component; emission
// order follows algorithmic order exactly.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a listener. Registering the same listener twice delivers
// every event twice; callers are expected not to.
func (d *Dispatcher) Register(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, l)
}

// Unregister removes a previously registered listener.
func (d *Dispatcher) Unregister(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to every registered listener in registration order.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)
	d.mu.RUnlock()

	for _, l := range listeners {
		switch e.Kind {
		case NodeGerminated:
			l.NodeGerminated(e)
		case NodeVisited:
			l.NodeVisited(e)
		case NodeFound:
			l.NodeFound(e)
		case NodeTraversed:
			l.NodeTraversed(e)
		}
	}
}

// Germinated emits a NodeGerminated event for cell.
func (d *Dispatcher) Germinated(cell maze.Position) {
	d.Dispatch(Event{Kind: NodeGerminated, Cell: cell})
}

// Visited emits a NodeVisited event for a whole generation.
func (d *Dispatcher) Visited(generation []maze.Position) {
	if len(generation) == 0 {
		return
	}
	d.Dispatch(Event{Kind: NodeVisited, Cell: generation[0], Generation: generation})
}

// VisitedCell emits a NodeVisited event for a single cell.
func (d *Dispatcher) VisitedCell(cell maze.Position) {
	d.Dispatch(Event{Kind: NodeVisited, Cell: cell})
}

// Found emits the NodeFound event for cell.
func (d *Dispatcher) Found(cell maze.Position) {
	d.Dispatch(Event{Kind: NodeFound, Cell: cell})
}

// Traversed emits a NodeTraversed event for cell.
func (d *Dispatcher) Traversed(cell maze.Position) {
	d.Dispatch(Event{Kind: NodeTraversed, Cell: cell})
}
