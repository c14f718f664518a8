// Package core provides the immutable, integer-indexed directed graph that
// every algorithm in gridroute runs on.
//
// The Graph G = (V,E) is deliberately small and strict:
//
//   - Vertices are the integers 0..N-1, fixed at construction.
//   - Edges are directed (From→To) and carry a non-negative int64 Weight.
//   - Parallel edges and self-loops are kept as independent entries.
//   - An optional label per vertex (e.g. a grid coordinate) is carried along
//     for reporting; algorithms never look at it.
//   - Nothing mutates after NewGraph returns, so a *Graph may be shared by
//     any number of concurrent readers without locks.
//
// Construction:
//
//	g, err := core.NewGraph(6, []core.Edge{
//	    {From: 0, To: 3, Weight: 1},
//	    {From: 3, To: 4, Weight: 1},
//	}, core.WithLabels(names))
//
// Validation happens once, in edge order, and fails fast:
//
//	ErrBadVertexCount – N < 0
//	ErrInvalidEdge    – an endpoint outside [0, N)
//	ErrNegativeWeight – a weight < 0 (Dijkstra's precondition)
//	ErrLabelCount     – WithLabels got a slice whose length is not N
//
// Edge errors arrive as *EdgeError, which names the offending edge and
// unwraps to the sentinel, so errors.Is works as usual.
//
// Query methods:
//
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(1)
//	Neighbors(v) iter.Seq2[int, int64]         // lazy (to, weight) pairs, insertion order
//	Weight(u, v) (int64, bool)                 // cheapest u→v edge, O(deg(u))
//	Edges() []Edge                             // by source vertex, then insertion order
//	PathWeight(path) (int64, error)            // cost of a vertex sequence
package core
