// Package bfs_test provides benchmarks for breadth-first traversal on the
// mutable and frozen representations.
package bfs_test

import (
	"testing"

	"github.com/grintlab/grint/bfs"
	"github.com/grintlab/grint/core"
)

// gridMutable builds an n×n grid graph, a classic BFS stress shape.
func gridMutable(n int) *core.Mutable {
	g := core.New()
	at := func(r, c int) core.Vertex { return core.Vertex(r*n + c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				g.AddEdge(at(r, c), at(r, c+1), 1)
			}
			if r+1 < n {
				g.AddEdge(at(r, c), at(r+1, c), 1)
			}
		}
	}

	return g
}

// BenchmarkBFS_Mutable measures a full component sweep on growable storage.
func BenchmarkBFS_Mutable(b *testing.B) {
	g := gridMutable(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := bfs.BFS(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		n := 0
		for range seq {
			n++
		}
		if n != g.VertexCount() {
			b.Fatalf("visited %d of %d", n, g.VertexCount())
		}
	}
}

// BenchmarkBFS_Frozen measures the same sweep over CSR storage.
func BenchmarkBFS_Frozen(b *testing.B) {
	src := gridMutable(200)
	bld := core.NewBuilder()
	_ = bld.EnsureVertexCapacity(src.VertexCount())
	_ = bld.EnsureEdgeCapacity(src.EdgeCount())
	for e := range src.Edges() {
		opp, _ := src.EdgeOpposite(e, core.Vertex(int32(e.Lo())))
		_ = bld.AddEdge(core.Vertex(int32(e.Lo())), opp, src.Weight(e))
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := bfs.BFS(g, 0)
		if err != nil {
			b.Fatal(err)
		}
		for range seq {
		}
	}
}
