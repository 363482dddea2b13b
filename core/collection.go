package core

import "iter"

// EdgeCollection is the shared capability of every unboxed edge container:
// membership, size, export to a flat 64-bit array, and lazy iteration.
//
// Implementations in this package: EdgeSet, EdgeList, and the
// allocation-free NoEdges and OneEdge specializations. Collections returned
// by graph queries are read-only views over graph-owned storage.
type EdgeCollection interface {
	// Len reports the number of contained edges.
	Len() int

	// Contains reports membership of e.
	Contains(e Edge) bool

	// All returns a lazy, finite sequence over the contained edges.
	// Each range restarts it; mutating the collection mid-range is
	// undefined.
	All() iter.Seq[Edge]

	// Export copies the contents into a fresh primitive 64-bit array.
	Export() []Edge
}

// noEdges is the empty specialization. Zero-sized, so converting it to
// EdgeCollection does not allocate.
type noEdges struct{}

// NoEdges returns the empty edge collection.
func NoEdges() EdgeCollection { return noEdges{} }

func (noEdges) Len() int            { return 0 }
func (noEdges) Contains(Edge) bool  { return false }
func (noEdges) Export() []Edge      { return nil }
func (noEdges) All() iter.Seq[Edge] { return func(func(Edge) bool) {} }

// oneEdge is the singleton specialization, carried by value.
type oneEdge Edge

// OneEdge returns a collection holding exactly e.
func OneEdge(e Edge) EdgeCollection { return oneEdge(e) }

func (s oneEdge) Len() int             { return 1 }
func (s oneEdge) Contains(e Edge) bool { return Edge(s) == e }
func (s oneEdge) Export() []Edge       { return []Edge{Edge(s)} }

func (s oneEdge) All() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		yield(Edge(s))
	}
}
