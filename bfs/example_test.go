package bfs_test

import (
	"fmt"

	"github.com/grintlab/grint/bfs"
	"github.com/grintlab/grint/core"
)

// ExampleBFS walks a small tree in breadth-first order.
func ExampleBFS() {
	//      0
	//     / \
	//    1   2
	//   / \
	//  3   4
	g := core.New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 2, 0)
	g.AddEdge(1, 3, 0)
	g.AddEdge(1, 4, 0)

	order, err := bfs.BFS(g, 0)
	if err != nil {
		panic(err)
	}
	for v := range order {
		fmt.Print(v, " ")
	}
	// Output: 0 1 2 3 4
}

// ExampleBFS_maxDepth limits exploration to one hop.
func ExampleBFS_maxDepth() {
	g := core.New()
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)

	order, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	for v := range order {
		fmt.Print(v, " ")
	}
	// Output: 0 1
}
