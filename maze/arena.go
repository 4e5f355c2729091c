package maze

// Arena records, for one traversal episode, which cell discovered which.
// Parents are stored as flat indices rather than node references, so a
// discovery chain can never form a cycle and clearing an episode is a
// single pass over the slice.
type Arena struct {
	width  int
	parent []int32
}

const (
	arenaUndiscovered int32 = -2
	arenaRoot         int32 = -1
)

func newArena(width, height int) *Arena {
	a := &Arena{
		width:  width,
		parent: make([]int32, width*height),
	}
	a.Reset()
	return a
}

// Reset drops every discovery link, returning all cells to undiscovered.
func (a *Arena) Reset() {
	for i := range a.parent {
		a.parent[i] = arenaUndiscovered
	}
}

func (a *Arena) index(p Position) int {
	return p.Row*a.width + p.Col
}

// Discovered reports whether p has been discovered this episode.
func (a *Arena) Discovered(p Position) bool {
	return a.parent[a.index(p)] != arenaUndiscovered
}

// DiscoverRoot marks p as the traversal root. A root has no parent.
func (a *Arena) DiscoverRoot(p Position) error {
	idx := a.index(p)
	if a.parent[idx] != arenaUndiscovered {
		return ErrAlreadyDiscovered
	}
	a.parent[idx] = arenaRoot
	return nil
}

// Discover records that parent discovered p. A cell may be discovered at
// most once per episode.
func (a *Arena) Discover(p, parent Position) error {
	idx := a.index(p)
	if a.parent[idx] != arenaUndiscovered {
		return ErrAlreadyDiscovered
	}
	a.parent[idx] = int32(a.index(parent))
	return nil
}

// Parent returns the discoverer of p. The second result is false when p is
// undiscovered or is the root.
func (a *Arena) Parent(p Position) (Position, bool) {
	v := a.parent[a.index(p)]
	if v == arenaUndiscovered || v == arenaRoot {
		return Position{}, false
	}
	return Position{Row: int(v) / a.width, Col: int(v) % a.width}, true
}

// PathTo walks discovery links from p back to the root and returns the
// positions in target-to-root order, both endpoints included. It returns
// nil when p is undiscovered.
func (a *Arena) PathTo(p Position) []Position {
	if !a.Discovered(p) {
		return nil
	}
	path := []Position{p}
	for {
		parent, ok := a.Parent(path[len(path)-1])
		if !ok {
			return path
		}
		path = append(path, parent)
	}
}
