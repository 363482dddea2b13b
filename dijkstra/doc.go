// Package dijkstra implements single-source shortest paths over
// non-negative edge weights.
//
// ShortestPaths computes the minimum cost from a source vertex to every
// reachable vertex and returns the distances as a core.VertexProperty;
// unreachable vertices keep Unreachable (+Inf). Path reconstruction is
// deliberately not offered: consumers of this module need distances only.
//
// Internals
//
//   - A hand-rolled binary min-heap over a flat []core.Vertex, ordered by
//     the current value of the distance property. Comparisons read the
//     property live, so an improvement made after a vertex was queued takes
//     effect on the next sift. No interface boxing on the hot path.
//   - Lazy deletion: a vertex may sit in the heap several times; popping an
//     already-finalized vertex discards the stale entry and moves on.
//   - Visited tracking in a primitive hash set sized to the vertex space.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst case in the heap under lazy deletion
//
// Precondition
//
//	Edge weights must be non-negative. This is a documented contract, not a
//	runtime check; behavior under negative weights is unspecified.
//
// Options
//
//   - WithContext(ctx):     cooperative cancellation, checked once per pop.
//   - WithMaxDistance(d):   stop exploring once the frontier minimum
//     exceeds d; vertices never relaxed by then stay Unreachable, and a
//     vertex relaxed but not yet finalized keeps its tentative distance.
//
// Errors
//
//   - ErrNilGraph          if the graph is nil.
//   - ErrNilWeight         if the weight function is nil.
//   - ErrSourceOutOfRange  if the source vertex is outside the id space.
//   - Context errors       if the run was cancelled before completing.
package dijkstra
