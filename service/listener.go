package service

import (
	"sync"

	"github.com/beka-birhanu/maze-lab-api/algorithm"
)

// chanListener forwards dispatcher events onto a buffered channel consumed
// by a renderer on its own schedule. Sends never block the algorithm
// goroutine; when a slow consumer fills the buffer, events are dropped
// rather than stalling generation pacing.
type chanListener struct {
	mu     sync.Mutex
	closed bool
	ch     chan algorithm.Event
}

func newChanListener(buffer int) *chanListener {
	return &chanListener{ch: make(chan algorithm.Event, buffer)}
}

// forward drops the event once closed. The mutex orders forwards against
// close: a dispatch snapshot may still hold this listener after it was
// unregistered, and sending on the closed channel would panic the run
// goroutine.
func (l *chanListener) forward(e algorithm.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case l.ch <- e:
	default:
	}
}

// close shuts the channel exactly once; later forwards become no-ops.
func (l *chanListener) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.ch)
}

func (l *chanListener) NodeGerminated(e algorithm.Event) { l.forward(e) }

func (l *chanListener) NodeVisited(e algorithm.Event) { l.forward(e) }

func (l *chanListener) NodeFound(e algorithm.Event) { l.forward(e) }

func (l *chanListener) NodeTraversed(e algorithm.Event) { l.forward(e) }
