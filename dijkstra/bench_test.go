// Package dijkstra_test provides benchmarks for shortest-path computation
// on grid-shaped graphs across both representations.
package dijkstra_test

import (
	"testing"

	"github.com/grintlab/grint/core"
	"github.com/grintlab/grint/dijkstra"
)

// weightedGrid builds an n×n grid with deterministic pseudo-random weights.
func weightedGrid(n int) *core.Mutable {
	g := core.New()
	at := func(r, c int) core.Vertex { return core.Vertex(r*n + c) }
	w := func(r, c int) float64 { return float64((r*31+c*17)%9) + 1 }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				g.AddEdge(at(r, c), at(r, c+1), w(r, c))
			}
			if r+1 < n {
				g.AddEdge(at(r, c), at(r+1, c), w(c, r))
			}
		}
	}

	return g
}

// BenchmarkShortestPaths_Mutable measures a full run on growable storage.
func BenchmarkShortestPaths_Mutable(b *testing.B) {
	g := weightedGrid(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, g.Weight, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPaths_Frozen measures the same run on CSR storage.
func BenchmarkShortestPaths_Frozen(b *testing.B) {
	src := weightedGrid(100)
	bld := core.NewBuilder()
	_ = bld.EnsureVertexCapacity(src.VertexCount())
	_ = bld.EnsureEdgeCapacity(src.EdgeCount())
	for e := range src.Edges() {
		v := core.Vertex(int32(e.Lo()))
		opp, _ := src.EdgeOpposite(e, v)
		_ = bld.AddEdge(v, opp, src.Weight(e))
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, g.Weight, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPaths_UniformWeights isolates the WeightFunc indirection.
func BenchmarkShortestPaths_UniformWeights(b *testing.B) {
	g := weightedGrid(100)
	uniform := core.UniformWeight(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, uniform, 0); err != nil {
			b.Fatal(err)
		}
	}
}
