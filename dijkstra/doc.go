// Package dijkstra computes single-source shortest paths on a core.Graph and
// rebuilds individual routes from the resulting predecessor vector.
//
// Overview:
//
//   - Dijkstra(g, source) returns dist[v] (minimum total weight from source,
//     or Infinity when v is unreachable) and prev[v] (the vertex v was last
//     relaxed from; v itself for the source and for unreachable vertices).
//   - Path(prev, source, goal) walks prev back from goal and returns the route
//     source→…→goal, or ErrUnreachable.
//   - Both are pure: no logging, no I/O, no state outside the returned slices.
//
// Tie-breaking:
//
//   - Relaxation uses a strict "<": when a second edge offers the same
//     distance, the predecessor recorded first is kept. Together with the
//     insertion-ordered core.Graph neighbors this makes prev deterministic.
//
// Options:
//
//   - WithMaxDistance(d):      vertices farther than d are left unreached (d ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable walls (t > 0).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with a binary heap and lazy decrease-key
//     (re-push on improvement, skip stale entries on extraction).
//   - Space: O(V + E) worst-case heap size.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        g is nil.
//   - ErrVertexNotFound:  source, or for Path the goal, is outside [0, N).
//   - ErrUnreachable:     Path found no route from source to goal.
//   - ErrNegativeWeight:  alias of core.ErrNegativeWeight; raised by core.NewGraph,
//     so the solver never sees a negative edge.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from option constructors.
//
// Thread safety:
//
//   - core.Graph is immutable, so any number of Dijkstra calls (different
//     sources included) may run concurrently on one graph.
package dijkstra
