// This file declares Vertex, the sentinel errors, WeightFunc, and the
// construction options shared by New and NewBuilder.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexRange indicates a vertex id outside the graph's dense id
	// space. Index-style accessors carry it in their panic value.
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrEdgeRange indicates an edge value that does not identify a live
	// edge of this graph.
	ErrEdgeRange = errors.New("core: edge out of range")

	// ErrNotIncident indicates EdgeOpposite was called with an edge that is
	// not incident to the given vertex.
	ErrNotIncident = errors.New("core: edge not incident to vertex")

	// ErrStaleRef indicates an EdgeRef whose slot was released and possibly
	// reused; the referenced edge no longer exists.
	ErrStaleRef = errors.New("core: edge reference is stale")

	// ErrBuilderFrozen indicates use of a Builder after Build.
	ErrBuilderFrozen = errors.New("core: builder already frozen")
)

// Vertex identifies a graph node. Ids are dense, start at 0, and are unique
// within one graph instance; equality is by value.
type Vertex int32

// NoVertex is the out-of-band vertex value.
const NoVertex Vertex = -1

// WeightFunc reports the traversal cost of an edge. Graphs expose their
// stored weights through it ((*Mutable).Weight, (*Frozen).Weight), and
// algorithms accept any WeightFunc so callers can substitute derived costs.
type WeightFunc func(Edge) float64

// UniformWeight returns a WeightFunc assigning the same cost to every edge.
func UniformWeight(w float64) WeightFunc {
	return func(Edge) float64 { return w }
}

// Stats is a read-only snapshot of a graph's shape and capabilities.
type Stats struct {
	VertexCount int
	EdgeCount   int
	Multigraph  bool
	Frozen      bool
}

// config collects construction-time capabilities shared by New and
// NewBuilder. Capabilities are immutable after construction.
type config struct {
	multi bool
}

// Option configures a graph or builder before creation.
type Option func(*config)

// WithMultiEdges permits parallel edges between the same endpoints.
// Without it, duplicate unordered pairs are topology no-ops.
func WithMultiEdges() Option {
	return func(c *config) { c.multi = true }
}
