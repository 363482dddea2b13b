package bfs

import (
	"fmt"
	"iter"

	"github.com/grintlab/grint/core"
	"github.com/grintlab/grint/primitive"
)

// item pairs a queued vertex with its hop distance from the start.
type item struct {
	v     core.Vertex
	depth int32
}

// BFS validates its inputs eagerly and returns the breadth-first visit
// order from start as a lazy sequence. The sequence is single-pass and
// finite; ranging over it again restarts the traversal against the graph's
// state at that moment. Vertices at equal depth appear exactly in
// Successors order, so the sequence is deterministic for a fixed graph.
//
// Complexity per consumed run: O(V + E) time, O(V) memory.
func BFS(g core.Graph, start core.Vertex, opts ...Option) (iter.Seq[core.Vertex], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || int(start) >= g.VertexCount() {
		return nil, fmt.Errorf("%w: vertex %d of %d", ErrStartOutOfRange, start, g.VertexCount())
	}

	return func(yield func(core.Vertex) bool) {
		w := newWalker(g, o)
		w.run(start, yield)
	}, nil
}

// walker carries the mutable state of one traversal run.
type walker struct {
	graph   core.Graph
	opts    Options
	queue   []item
	head    int
	visited *primitive.Set[core.Vertex]
}

func newWalker(g core.Graph, o Options) *walker {
	n := g.VertexCount()

	return &walker{
		graph:   g,
		opts:    o,
		queue:   make([]item, 0, min(n, 1024)),
		visited: primitive.NewSet[core.Vertex](n),
	}
}

// run seeds the frontier and drains it, yielding each dequeued vertex.
func (w *walker) run(start core.Vertex, yield func(core.Vertex) bool) {
	w.enqueue(start, 0)
	done := w.opts.Ctx.Done()
	for w.head < len(w.queue) {
		// Cancellation check once per dequeue.
		select {
		case <-done:
			return
		default:
		}

		it := w.queue[w.head]
		w.head++
		if !yield(it.v) {
			return
		}
		w.expand(it)
	}
}

// expand enqueues every not-yet-visited successor of it.v, honoring the
// depth limit. Successors order is preserved verbatim.
func (w *walker) expand(it item) {
	next := it.depth + 1
	if d := w.opts.MaxDepth; d > 0 && int(next) > d {
		return
	}
	for s := range w.graph.Successors(it.v) {
		if w.visited.Add(s) {
			w.queue = append(w.queue, item{v: s, depth: next})
		}
	}
}

// enqueue marks v visited and appends it to the frontier.
func (w *walker) enqueue(v core.Vertex, depth int32) {
	w.visited.Add(v)
	w.queue = append(w.queue, item{v: v, depth: depth})
}
