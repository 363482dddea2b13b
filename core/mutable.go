package core

import (
	"fmt"
	"iter"

	"github.com/grintlab/grint/primitive"
)

// Mutable is the incrementally growing graph representation. It is
// undirected, permits self-loops, and by default rejects parallel edges as
// topology no-ops; construct with WithMultiEdges for multigraph semantics.
//
// Storage is a flat edge catalog plus per-vertex adjacency arrays of packed
// Edge values. Simple-variant duplicate detection rides a primitive hash
// map keyed by the packed unordered endpoint pair, so AddEdge stays
// amortized O(1) with no boxed lookups.
//
// Not safe for concurrent use while a writer is active.
type Mutable struct {
	edgeStore
	adj   [][]Edge
	multi bool
	pairs *primitive.Map[uint64, int32] // unordered pair -> ordinal; nil when multi
	refs  refTable
}

var _ MutableGraph = (*Mutable)(nil)

// New creates an empty mutable graph.
//
// Complexity: O(1).
func New(opts ...Option) *Mutable {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Mutable{multi: cfg.multi}
	if !cfg.multi {
		g.pairs = primitive.NewMap[uint64, int32](0, -1)
	}

	return g
}

// VertexCount reports the size of the dense vertex id space.
func (g *Mutable) VertexCount() int { return len(g.adj) }

// Vertices returns a lazy ascending sequence over all vertex ids.
func (g *Mutable) Vertices() iter.Seq[Vertex] { return vertexSeq(len(g.adj)) }

// AddVertex appends a fresh vertex id and returns it.
//
// Complexity: amortized O(1).
func (g *Mutable) AddVertex() Vertex {
	g.adj = append(g.adj, nil)

	return Vertex(len(g.adj) - 1)
}

// EnsureVertices grows the vertex id space to at least n ids. Shrinking is
// not supported; n below the current count is a no-op.
func (g *Mutable) EnsureVertices(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
}

// pairKey packs the unordered endpoint pair into one 64-bit map key.
func pairKey(v1, v2 Vertex) uint64 {
	if v1 > v2 {
		v1, v2 = v2, v1
	}

	return uint64(uint32(v1))<<32 | uint64(uint32(v2))
}

// AddEdge inserts an undirected edge between v1 and v2 carrying w, growing
// the vertex space to cover both endpoints. In the simple variant a
// duplicate unordered pair is a topology no-op returning the existing edge
// with its stored weight untouched. Panics with ErrVertexRange on a
// negative endpoint.
//
// Complexity: amortized O(1).
func (g *Mutable) AddEdge(v1, v2 Vertex, w float64) Edge {
	if v1 < 0 || v2 < 0 {
		panic(fmt.Errorf("%w: AddEdge(%d, %d)", ErrVertexRange, v1, v2))
	}
	g.EnsureVertices(int(max(v1, v2)) + 1)

	if !g.multi {
		if ord := g.pairs.Get(pairKey(v1, v2)); ord >= 0 {
			return g.edgeValue(int(ord))
		}
	}

	ord := len(g.from)
	g.from = append(g.from, v1)
	g.to = append(g.to, v2)
	g.weight = append(g.weight, w)
	e := g.edgeValue(ord)
	g.adj[v1] = append(g.adj[v1], e)
	if v2 != v1 {
		g.adj[v2] = append(g.adj[v2], e)
	}
	if !g.multi {
		g.pairs.Put(pairKey(v1, v2), int32(ord))
	}

	return e
}

// Successors returns a lazy sequence over v's neighbors in adjacency
// (insertion) order, one entry per incident edge.
func (g *Mutable) Successors(v Vertex) iter.Seq[Vertex] {
	checkVertex(v, len(g.adj))
	edges := g.adj[v]

	return func(yield func(Vertex) bool) {
		for _, e := range edges {
			if !yield(g.opposite(int(e.Hi()), v)) {
				return
			}
		}
	}
}

// OutgoingEdges returns a read-only view of v's incident edges, valid until
// the next mutation.
//
// Complexity: O(1).
func (g *Mutable) OutgoingEdges(v Vertex) EdgeCollection {
	checkVertex(v, len(g.adj))
	switch a := g.adj[v]; len(a) {
	case 0:
		return NoEdges()
	case 1:
		return OneEdge(a[0])
	default:
		return viewOf(a)
	}
}

// Degree reports the number of edges incident to v.
func (g *Mutable) Degree(v Vertex) int {
	checkVertex(v, len(g.adj))

	return len(g.adj[v])
}

// NewEdgeRef mints a mutation-stable handle for e.
func (g *Mutable) NewEdgeRef(e Edge) (*EdgeRef, error) {
	if _, err := g.checkEdge(e); err != nil {
		return nil, err
	}

	return g.refs.acquire(e), nil
}

// Stats returns a snapshot of the graph's shape.
func (g *Mutable) Stats() Stats {
	return Stats{
		VertexCount: len(g.adj),
		EdgeCount:   len(g.from),
		Multigraph:  g.multi,
	}
}
