package dijkstra

import "github.com/grintlab/grint/core"

// vertexHeap is a binary min-heap over bare vertex ids, ordered by the
// current value of the distance property. Priorities are read live at
// comparison time rather than snapshotted at push: a vertex whose distance
// improved after being queued sifts correctly on later operations, and the
// outdated duplicate is skipped when popped. Unlike container/heap, no
// element ever crosses an interface boundary.
type vertexHeap struct {
	items []core.Vertex
	dist  *core.VertexProperty[float64]
}

func (h *vertexHeap) len() int { return len(h.items) }

func (h *vertexHeap) less(i, j int) bool {
	return h.dist.Get(h.items[i]) < h.dist.Get(h.items[j])
}

// push appends v and restores the heap order upward.
//
// Complexity: O(log n).
func (h *vertexHeap) push(v core.Vertex) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// pop removes and returns the minimum-distance vertex.
//
// Complexity: O(log n).
func (h *vertexHeap) pop() core.Vertex {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}

	return top
}

func (h *vertexHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *vertexHeap) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		least := left
		if right := left + 1; right < n && h.less(right, left) {
			least = right
		}
		if !h.less(least, i) {
			return
		}
		h.items[i], h.items[least] = h.items[least], h.items[i]
		i = least
	}
}
