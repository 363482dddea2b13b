// Package core defines the identity model, edge collections, property maps,
// and graph representations that the traversal packages build on.
//
// # Identity model
//
// A Vertex is a dense non-negative int32, unique within one graph instance
// and starting at 0. An Edge is an opaque packed 64-bit value; two Edges are
// equal iff their raw bits are equal. An Edge carries no reference to its
// owning graph, so callers must never mix Edge values across graphs.
//
// Every Edge obtained from a read operation is unstable: a later topology
// mutation on the owning graph may invalidate it. When a handle has to
// survive mutation, mint an EdgeRef with Graph.NewEdgeRef; it resolves back
// to the current Edge value through a generation-checked slot table and only
// goes stale once explicitly released.
//
// # Graph variants
//
// Four concrete representations sit behind the one Graph interface:
//
//   - Mutable, simple:      New()
//   - Mutable, multigraph:  New(WithMultiEdges())
//   - Frozen, simple:       NewBuilder().…Build()
//   - Frozen, multigraph:   NewBuilder(WithMultiEdges()).…Build()
//
// All variants are undirected and permit self-loops. Simple variants treat
// an AddEdge duplicating an existing unordered (v1, v2) pair as a topology
// no-op returning the already-present Edge; multigraph variants always
// append a parallel edge. Frozen graphs are produced once through a
// capacity-reserving Builder and store adjacency as flat compact arrays
// (CSR), which is what makes sequential traversal over millions of edges
// cheap; mutable graphs grow per insertion.
//
// # Sequences
//
// Vertices, Edges and Successors return iter.Seq values: finite, lazy,
// restartable per range, reflecting graph state at call time. Mutating the
// graph while ranging is undefined. OutgoingEdges returns an EdgeCollection
// that views graph-owned storage; treat it as read-only and invalid after
// the next mutation.
//
// # Errors and contract violations
//
// Index-style accessors (Successors, OutgoingEdges, Degree, Weight,
// EdgeOrdinal, property Get/Set) treat an id outside the dense id space as
// a programming error and panic with ErrVertexRange or ErrEdgeRange in the
// panic value, the same category as an out-of-bounds slice index. Operations
// whose argument validity is data-dependent return sentinel errors instead:
// EdgeOpposite returns ErrNotIncident, NewEdgeRef returns ErrEdgeRange,
// EdgeRef.Resolve returns ErrStaleRef, Builder misuse returns
// ErrBuilderFrozen.
//
// Using an unstable Edge after a mutation, or a property map after its
// graph's id space changed, is a contract violation with undefined
// behavior, not a detected error.
//
// # Concurrency
//
// No internal locking. A writer needs exclusive access; any number of
// readers may share a graph only while no writer is active.
package core
