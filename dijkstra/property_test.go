package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/builder"
	"github.com/katalvlaran/gridroute/core"
	"github.com/katalvlaran/gridroute/dijkstra"
)

// bruteForce returns the minimum weight over all simple paths source→v for
// every v, or Infinity when none exists. With non-negative weights a
// shortest walk can always be shortened to a simple path, so this is exact.
func bruteForce(g *core.Graph, source int) []int64 {
	n := g.VertexCount()
	best := make([]int64, n)
	for i := range best {
		best[i] = dijkstra.Infinity
	}
	onPath := make([]bool, n)

	var walk func(u int, d int64)
	walk = func(u int, d int64) {
		if d < best[u] {
			best[u] = d
		}
		onPath[u] = true
		for v, w := range g.Neighbors(u) {
			if !onPath[v] {
				walk(v, d+w)
			}
		}
		onPath[u] = false
	}
	walk(source, 0)

	return best
}

// TestDijkstra_MatchesBruteForce checks distances, path validity and the
// unreachable contract on many small random digraphs.
func TestDijkstra_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		for _, p := range []float64{0.15, 0.35, 0.6} {
			n := 3 + int(seed%5) // 3..7 vertices keeps enumeration cheap
			t.Run(fmt.Sprintf("seed=%d/n=%d/p=%.2f", seed, n, p), func(t *testing.T) {
				g, err := builder.Build(n,
					[]builder.BuilderOption{
						builder.WithSeed(seed),
						builder.WithLoops(),
						builder.WithWeightFn(builder.UniformWeightFn(0, 9)),
					},
					builder.RandomSparse(p),
				)
				require.NoError(t, err)

				for source := 0; source < n; source++ {
					dist, prev, err := dijkstra.Dijkstra(g, source)
					require.NoError(t, err)
					require.Equal(t, bruteForce(g, source), dist, "source %d", source)

					for goal := 0; goal < n; goal++ {
						path, err := dijkstra.Path(prev, source, goal)
						if dist[goal] == dijkstra.Infinity {
							require.ErrorIs(t, err, dijkstra.ErrUnreachable)
							require.Equal(t, goal, prev[goal])
							continue
						}
						require.NoError(t, err)
						require.Equal(t, source, path[0])
						require.Equal(t, goal, path[len(path)-1])

						// Every hop is an edge and the hops add up to dist[goal].
						w, err := g.PathWeight(path)
						require.NoError(t, err)
						require.Equal(t, dist[goal], w)
					}
				}
			})
		}
	}
}

// TestDijkstra_ConcurrentReaders runs many solves on one shared graph.
func TestDijkstra_ConcurrentReaders(t *testing.T) {
	g, err := builder.Build(30,
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
		builder.Cycle(), builder.RandomSparse(0.1),
	)
	require.NoError(t, err)

	want := make([][]int64, g.VertexCount())
	for s := range want {
		want[s], _, err = dijkstra.Dijkstra(g, s)
		require.NoError(t, err)
	}

	for s := range want {
		s := s
		t.Run(fmt.Sprintf("source=%d", s), func(t *testing.T) {
			t.Parallel()
			got, _, err := dijkstra.Dijkstra(g, s)
			require.NoError(t, err)
			require.Equal(t, want[s], got)
		})
	}
}
