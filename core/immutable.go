package core

import (
	"fmt"
	"iter"

	"github.com/grintlab/grint/primitive"
)

// Builder accumulates edges for a frozen graph. Reserve capacity first
// (EnsureVertexCapacity / EnsureEdgeCapacity), then feed the closed
// sequence of insertions, then Build exactly once. Build freezes the
// topology into compact CSR arrays; the builder itself is dead afterwards
// and every further call returns ErrBuilderFrozen.
//
// Capacity reservations are hints, not bounds: insertions beyond them still
// succeed, they just regrow. The built graph's vertex count is determined
// by the largest endpoint actually inserted, not by the reservation.
type Builder struct {
	multi  bool
	from   []Vertex
	to     []Vertex
	weight []float64
	vmax   Vertex
	pairs  *primitive.Map[uint64, int32] // nil when multi
	frozen bool
}

// NewBuilder creates a builder for a frozen graph. WithMultiEdges selects
// the multigraph variant; otherwise duplicate unordered pairs collapse at
// insertion, exactly as on Mutable.
func NewBuilder(opts ...Option) *Builder {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Builder{vmax: NoVertex}
	b.multi = cfg.multi
	if !cfg.multi {
		b.pairs = primitive.NewMap[uint64, int32](0, -1)
	}

	return b
}

// EnsureVertexCapacity pre-sizes internal tables for n vertices.
func (b *Builder) EnsureVertexCapacity(n int) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	// Vertex capacity only matters to the pair index; adjacency is sized
	// at Build from the edges themselves.
	if b.pairs != nil && b.pairs.Len() == 0 && n > 0 {
		b.pairs = primitive.NewMap[uint64, int32](n, -1)
	}

	return nil
}

// EnsureEdgeCapacity pre-sizes the edge catalog for m edges, so the closed
// insertion sequence appends without reallocating.
func (b *Builder) EnsureEdgeCapacity(m int) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	if m > cap(b.from) {
		b.from = append(make([]Vertex, 0, m), b.from...)
		b.to = append(make([]Vertex, 0, m), b.to...)
		b.weight = append(make([]float64, 0, m), b.weight...)
	}

	return nil
}

// AddEdge records an undirected edge between v1 and v2 carrying w. Simple
// variant duplicates are no-ops. Panics with ErrVertexRange on a negative
// endpoint; returns ErrBuilderFrozen after Build.
func (b *Builder) AddEdge(v1, v2 Vertex, w float64) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	if v1 < 0 || v2 < 0 {
		panic(fmt.Errorf("%w: AddEdge(%d, %d)", ErrVertexRange, v1, v2))
	}
	if b.pairs != nil && b.pairs.Get(pairKey(v1, v2)) >= 0 {
		return nil
	}
	if b.pairs != nil {
		b.pairs.Put(pairKey(v1, v2), int32(len(b.from)))
	}
	b.from = append(b.from, v1)
	b.to = append(b.to, v2)
	b.weight = append(b.weight, w)
	b.vmax = max(b.vmax, v1, v2)

	return nil
}

// Build freezes the accumulated topology into a Frozen graph. One-way: the
// builder cannot be reused, and a second Build returns ErrBuilderFrozen.
//
// Complexity: O(V + E) counting sort of edges into per-vertex CSR spans.
func (b *Builder) Build() (*Frozen, error) {
	if b.frozen {
		return nil, ErrBuilderFrozen
	}
	b.frozen = true
	b.pairs = nil

	n := int(b.vmax) + 1
	g := &Frozen{
		edgeStore: edgeStore{from: b.from, to: b.to, weight: b.weight},
		offsets:   make([]int32, n+1),
		multi:     b.multi,
	}
	b.from, b.to, b.weight = nil, nil, nil

	// Pass 1: incidence counts (a self-loop counts once).
	for i := range g.from {
		g.offsets[g.from[i]+1]++
		if g.to[i] != g.from[i] {
			g.offsets[g.to[i]+1]++
		}
	}
	// Prefix-sum into span starts.
	for v := 0; v < n; v++ {
		g.offsets[v+1] += g.offsets[v]
	}
	// Pass 2: scatter packed edges; cursor tracks each vertex's fill point.
	g.spans = make([]Edge, g.offsets[n])
	cursor := make([]int32, n)
	copy(cursor, g.offsets[:n])
	for i := range g.from {
		e := g.edgeValue(i)
		v := g.from[i]
		g.spans[cursor[v]] = e
		cursor[v]++
		if w := g.to[i]; w != v {
			g.spans[cursor[w]] = e
			cursor[w]++
		}
	}

	return g, nil
}

// Frozen is the immutable graph representation: adjacency frozen into flat
// CSR arrays (per-vertex offset table over one shared packed-edge span
// array), laid out for sequential traversal. Built once by a Builder,
// read-only forever; safe for concurrent readers.
type Frozen struct {
	edgeStore
	offsets []int32
	spans   []Edge
	multi   bool
	refs    refTable
}

var _ Graph = (*Frozen)(nil)

// VertexCount reports the size of the dense vertex id space.
func (g *Frozen) VertexCount() int { return len(g.offsets) - 1 }

// Vertices returns a lazy ascending sequence over all vertex ids.
func (g *Frozen) Vertices() iter.Seq[Vertex] { return vertexSeq(g.VertexCount()) }

// span returns v's window into the shared adjacency array.
func (g *Frozen) span(v Vertex) []Edge {
	checkVertex(v, g.VertexCount())

	return g.spans[g.offsets[v]:g.offsets[v+1]]
}

// Successors returns a lazy sequence over v's neighbors in edge insertion
// order, one entry per incident edge.
func (g *Frozen) Successors(v Vertex) iter.Seq[Vertex] {
	span := g.span(v)

	return func(yield func(Vertex) bool) {
		for _, e := range span {
			if !yield(g.opposite(int(e.Hi()), v)) {
				return
			}
		}
	}
}

// OutgoingEdges returns v's incident edges as an O(1) read-only window over
// the shared span array; no copy is made.
func (g *Frozen) OutgoingEdges(v Vertex) EdgeCollection {
	switch s := g.span(v); len(s) {
	case 0:
		return NoEdges()
	case 1:
		return OneEdge(s[0])
	default:
		return viewOf(s)
	}
}

// Degree reports the number of edges incident to v.
func (g *Frozen) Degree(v Vertex) int { return len(g.span(v)) }

// NewEdgeRef mints a stable handle for e. On a frozen graph every Edge is
// already stable; the ref type is offered for code paths that must work
// uniformly across variants.
func (g *Frozen) NewEdgeRef(e Edge) (*EdgeRef, error) {
	if _, err := g.checkEdge(e); err != nil {
		return nil, err
	}

	return g.refs.acquire(e), nil
}

// Stats returns a snapshot of the graph's shape.
func (g *Frozen) Stats() Stats {
	return Stats{
		VertexCount: g.VertexCount(),
		EdgeCount:   len(g.from),
		Multigraph:  g.multi,
		Frozen:      true,
	}
}
