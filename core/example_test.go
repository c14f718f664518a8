package core_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// ExampleNewGraph builds a tiny directed graph and walks the neighbors of a vertex.
func ExampleNewGraph() {
	g, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for to, w := range g.Neighbors(0) {
		fmt.Printf("0 -> %d (w=%d)\n", to, w)
	}
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())

	// Output:
	// 0 -> 1 (w=2)
	// 0 -> 2 (w=5)
	// vertices: 4 edges: 3
}

// ExampleNewGraph_invalid shows the fail-fast validation of edge endpoints.
func ExampleNewGraph_invalid() {
	_, err := core.NewGraph(2, []core.Edge{{From: 0, To: 2, Weight: 1}})
	fmt.Println(err)

	// Output:
	// core: edge endpoint out of range: edge #0 0→2(1)
}
