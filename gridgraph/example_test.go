// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ToGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ToGraph routes around a single obstacle on a 3×2 grid.
// Scenario:
//
//   - Grid values: 0 = obstacle, 1 = free
//   - Conn4: 4-directional adjacency (N/E/S/W), unit move cost
//   - The direct east move from (0,0) is blocked, so the route detours
//     through the lower row.
func ExampleGridGraph_ToGraph() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{1, 0, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	g, _ := gg.ToGraph()

	start, _ := gg.Index(0, 0)
	goal, _ := gg.Index(2, 0)
	dist, prev, _ := dijkstra.Dijkstra(g, start)
	path, _ := dijkstra.Path(prev, start, goal)

	cells := make([]string, len(path))
	for i, v := range path {
		cells[i] = g.Label(v)
	}
	fmt.Println("moves:", dist[goal])
	fmt.Println(strings.Join(cells, " "))

	// Output:
	// moves: 4
	// (0,0) (0,1) (1,1) (2,1) (2,0)
}
