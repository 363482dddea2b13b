// Package bfs provides breadth-first traversal over a core.Graph as a
// lazy, restartable vertex sequence.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex,
//     visiting exactly the start's connected component, each vertex once.
//   - The traversal is returned as an iter.Seq[core.Vertex]: single-pass,
//     finite, and restartable (each range re-runs the walk from scratch).
//   - Optional depth limiting (WithMaxDepth) and cooperative cancellation
//     (WithContext, checked once per dequeued vertex).
//
// Determinism
//
//	Vertices at the same depth are yielded exactly in the order
//	core.Graph.Successors produces them, which the core representations fix
//	to edge insertion order. The visit sequence is therefore fully
//	reproducible for a given graph state.
//
// Internals
//
//	A FIFO frontier over a flat slice plus a primitive visited set sized to
//	the vertex id space; no per-vertex allocation on the hot loop.
//
// Complexity (V = |vertices|, E = |edges| of the component)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and visited set
//
// Errors
//
//   - ErrNilGraph         if the graph is nil.
//   - ErrStartOutOfRange  if the start vertex is outside the id space.
//   - ErrBadMaxDepth      if a negative MaxDepth option was supplied.
//
// Mutating the graph while a returned sequence is being consumed is
// undefined, as is sharing one sequence across goroutines.
package bfs
