// Package grint is an allocation-frugal graph toolkit for graphs with
// hundreds of thousands of vertices and millions of edges.
//
// Instead of per-vertex and per-edge objects, grint identifies a vertex by a
// dense non-negative integer and an edge by a packed 64-bit value, and backs
// every hot path with flat arrays and open-addressing hash tables that never
// box a key or a value.
//
// The module is organized into four subpackages:
//
//	primitive/ — open-addressing hash map and set over integer keys/values
//	core/      — Vertex, Edge, stable EdgeRef handles, unboxed edge
//	             collections, property maps, and the mutable and frozen
//	             graph representations
//	bfs/       — breadth-first traversal as a lazy, restartable sequence
//	dijkstra/  — single-source shortest paths over non-negative weights
//
// Quick sketch:
//
//	g := core.New()
//	g.AddEdge(0, 1, 1.0)
//	g.AddEdge(1, 2, 1.0)
//
//	order, _ := bfs.BFS(g, 0)
//	for v := range order {
//	    // vertices in breadth-first order
//	}
//
//	dist, _ := dijkstra.ShortestPaths(g, g.Weight, 0)
//
// Graphs come in four variants, {mutable, frozen} × {simple, multigraph},
// behind one read interface, so every algorithm in this module runs
// unchanged against any of them.
package grint
