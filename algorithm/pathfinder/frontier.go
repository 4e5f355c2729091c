package pathfinder

import (
	"container/heap"

	"github.com/beka-birhanu/maze-lab-api/maze"
)

// frontier is a min-heap of positions keyed by path cost. Equal costs pop
// in insertion order, so the Dijkstra variant breaks ties exactly like the
// BFS queue and stays deterministic for a fixed grid.
type frontier struct {
	items frontierItems
	seq   uint64
}

type frontierItem struct {
	pos  maze.Position
	cost int
	seq  uint64
}

type frontierItems []frontierItem

func (f frontierItems) Len() int { return len(f) }

func (f frontierItems) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontierItems) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontierItems) Push(x interface{}) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontierItems) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.items)
	return f
}

func (f *frontier) len() int {
	return len(f.items)
}

func (f *frontier) push(p maze.Position, cost int) {
	heap.Push(&f.items, frontierItem{pos: p, cost: cost, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() (maze.Position, int) {
	item := heap.Pop(&f.items).(frontierItem)
	return item.pos, item.cost
}
