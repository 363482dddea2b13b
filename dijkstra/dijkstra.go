package dijkstra

import (
	"fmt"

	"github.com/grintlab/grint/core"
	"github.com/grintlab/grint/primitive"
)

// ShortestPaths computes minimum distances from source to every vertex of
// g under the given weight function and returns them as a vertex property;
// vertices the source cannot reach keep Unreachable. Pass g.Weight to use
// the graph's stored weights, or any other core.WeightFunc for derived
// costs.
//
// Weights must be non-negative (documented precondition, not checked).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPaths(g core.Graph, weight core.WeightFunc, source core.Vertex, opts ...Option) (*core.VertexProperty[float64], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if source < 0 || int(source) >= g.VertexCount() {
		return nil, fmt.Errorf("%w: vertex %d of %d", ErrSourceOutOfRange, source, g.VertexCount())
	}

	r := &runner{
		g:       g,
		weight:  weight,
		opts:    o,
		dist:    core.NewVertexProperty(g, func() float64 { return Unreachable }),
		visited: primitive.NewSet[core.Vertex](g.VertexCount()),
	}
	r.heap.dist = r.dist

	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state of one execution.
type runner struct {
	g       core.Graph
	weight  core.WeightFunc
	opts    Options
	dist    *core.VertexProperty[float64]
	visited *primitive.Set[core.Vertex]
	heap    vertexHeap
}

// init seeds the source at distance zero.
func (r *runner) init(source core.Vertex) {
	r.dist.Set(source, 0)
	r.heap.push(source)
}

// process drains the heap: pop the minimum, discard stale entries, finalize
// the vertex, relax its incident edges. Terminates when the heap empties or
// the frontier minimum exceeds MaxDistance.
func (r *runner) process() error {
	done := r.opts.Ctx.Done()
	for r.heap.len() > 0 {
		// Cancellation check once per pop.
		select {
		case <-done:
			return r.opts.Ctx.Err()
		default:
		}

		v := r.heap.pop()
		if r.visited.Contains(v) {
			continue // stale entry under lazy deletion
		}
		if r.dist.Get(v) > r.opts.MaxDistance {
			// Everything still queued is at least this far; stop here and
			// leave the remainder Unreachable.
			break
		}
		r.visited.Add(v)
		r.relax(v)
	}

	return nil
}

// relax attempts to improve the distance of every vertex across v's
// incident edges. An improvement pushes the neighbor again; the older heap
// entry is discarded when popped.
func (r *runner) relax(v core.Vertex) {
	dv := r.dist.Get(v)
	for e := range r.g.OutgoingEdges(v).All() {
		u, err := r.g.EdgeOpposite(e, v)
		if err != nil {
			// OutgoingEdges only hands out incident edges; this cannot
			// fire unless the graph was mutated mid-run.
			panic(err)
		}
		if r.visited.Contains(u) {
			continue
		}
		candidate := dv + r.weight(e)
		if candidate < r.dist.Get(u) {
			r.dist.Set(u, candidate)
			r.heap.push(u)
		}
	}
}
