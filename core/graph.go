package core

import "iter"

// Graph is the read capability shared by every representation in this
// package. All variants are undirected; multigraph variants report a
// neighbor once per parallel edge.
//
// Accessors taking a Vertex or Edge index into the dense id space and panic
// with ErrVertexRange / ErrEdgeRange on ids outside it (see the package
// documentation for the error policy).
type Graph interface {
	// VertexCount reports the size of the dense vertex id space; valid ids
	// are [0, VertexCount).
	VertexCount() int

	// EdgeCount reports the number of edges.
	EdgeCount() int

	// Vertices returns a lazy sequence over all vertex ids, ascending.
	Vertices() iter.Seq[Vertex]

	// Edges returns a lazy sequence over all edges, in insertion order.
	Edges() iter.Seq[Edge]

	// Successors returns a lazy sequence over v's neighbors, one entry per
	// incident edge (so parallel edges repeat a neighbor, and a self-loop
	// yields v itself). The order is fixed for a given graph state; BFS
	// determinism leans on it.
	Successors(v Vertex) iter.Seq[Vertex]

	// OutgoingEdges returns the edges incident to v as a read-only view.
	OutgoingEdges(v Vertex) EdgeCollection

	// Degree reports the number of edges incident to v.
	Degree(v Vertex) int

	// EdgeOpposite returns the endpoint of e other than v (v itself for a
	// self-loop). Returns ErrNotIncident when e is not incident to v, or
	// ErrEdgeRange when e does not identify a live edge of this graph.
	EdgeOpposite(e Edge, v Vertex) (Vertex, error)

	// EdgeOrdinal maps a live edge to its dense ordinal in [0, EdgeCount).
	// Property maps index through it.
	EdgeOrdinal(e Edge) int

	// Weight reports the weight stored for e at insertion (0 when the
	// construction path never supplied one). Usable directly as a
	// WeightFunc.
	Weight(e Edge) float64

	// NewEdgeRef mints a mutation-stable handle for e. Returns ErrEdgeRange
	// when e does not identify a live edge.
	NewEdgeRef(e Edge) (*EdgeRef, error)

	// Stats returns a snapshot of the graph's shape and capabilities.
	Stats() Stats
}

// MutableGraph is a Graph that grows incrementally. There is no terminal
// state: a mutable graph stays mutable for its lifetime.
type MutableGraph interface {
	Graph

	// AddVertex appends a fresh vertex id and returns it.
	AddVertex() Vertex

	// EnsureVertices grows the vertex id space to at least n ids.
	EnsureVertices(n int)

	// AddEdge inserts an undirected edge between v1 and v2 carrying w,
	// growing the vertex id space as needed to cover both endpoints.
	// Self-loops are permitted. Simple variants return the existing Edge
	// unchanged when the unordered (v1, v2) pair is already present (the
	// stored weight is not replaced); multigraph variants always append a
	// parallel edge. Panics with ErrVertexRange on a negative endpoint.
	//
	// Any Edge value obtained before AddEdge must be treated as
	// invalidated by it.
	AddEdge(v1, v2 Vertex, w float64) Edge
}

// vertexSeq yields 0..n-1 as a restartable lazy sequence.
func vertexSeq(n int) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for v := Vertex(0); int(v) < n; v++ {
			if !yield(v) {
				return
			}
		}
	}
}
