package core_test

import (
	"fmt"

	"github.com/grintlab/grint/core"
)

// ExampleMutable builds a small simple graph incrementally and queries it.
func ExampleMutable() {
	g := core.New()
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, 2.0)
	g.AddEdge(0, 1, 9.0) // duplicate pair: topology no-op

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	for s := range g.Successors(1) {
		fmt.Println("neighbor of 1:", s)
	}
	// Output:
	// vertices: 3
	// edges: 2
	// neighbor of 1: 0
	// neighbor of 1: 2
}

// ExampleBuilder freezes a graph after reserving capacity, the cheap path
// for bulk loads.
func ExampleBuilder() {
	b := core.NewBuilder()
	_ = b.EnsureVertexCapacity(4)
	_ = b.EnsureEdgeCapacity(3)
	_ = b.AddEdge(0, 1, 1.0)
	_ = b.AddEdge(1, 2, 1.0)
	_ = b.AddEdge(2, 3, 1.0)

	g, _ := b.Build()
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.Degree(1))
	// Output: 4 3 2
}

// ExampleEdgeRef shows a stable handle surviving later insertions.
func ExampleEdgeRef() {
	g := core.New()
	e := g.AddEdge(0, 1, 1.0)

	ref, _ := g.NewEdgeRef(e)
	g.AddEdge(1, 2, 1.0) // e itself is now suspect; ref is not

	cur, _ := ref.Resolve()
	opp, _ := g.EdgeOpposite(cur, 0)
	fmt.Println(opp)
	// Output: 1
}
