// SPDX-License-Identifier: MIT
// Package: gridroute/core
//
// graph.go — construction and read-only queries.
//
// Determinism:
//   - Neighbors(v) yields edges leaving v in input order.
//   - Edges() is ordered by source vertex ascending, then input order; this
//     is the order exporters rely on for diff-friendly output.

package core

import (
	"iter"
	"strconv"
)

// NewGraph builds a graph with n vertices from the given edge list.
//
// Validation runs over the edges in order and stops at the first failure,
// returning no graph:
//  1. n < 0                         → ErrBadVertexCount
//  2. From or To outside [0, n)     → *EdgeError wrapping ErrInvalidEdge
//  3. Weight < 0                    → *EdgeError wrapping ErrNegativeWeight
//  4. WithLabels length != n        → ErrLabelCount
//
// The edge slice is copied; later changes by the caller are not observed.
// Complexity: O(V + E) time and space.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}

	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.labels != nil && len(cfg.labels) != n {
		return nil, ErrLabelCount
	}

	g := &Graph{
		n:      n,
		edges:  make([]Edge, len(edges)),
		out:    make([][]int, n),
		labels: cfg.labels,
	}

	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, &EdgeError{Index: i, Edge: e, Err: ErrInvalidEdge}
		}
		if e.Weight < 0 {
			return nil, &EdgeError{Index: i, Edge: e, Err: ErrNegativeWeight}
		}
		g.edges[i] = e
		g.out[e.From] = append(g.out[e.From], i)
	}

	return g, nil
}

// VertexCount returns N.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges, parallel edges counted separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v lies in [0, N).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns the (target, weight) pairs of all edges leaving v, in
// input order. The sequence is lazy and may be ranged over any number of
// times; for a vertex outside [0, N) it is empty.
// Complexity: O(deg(v)) per full iteration, no allocation.
func (g *Graph) Neighbors(v int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if !g.HasVertex(v) {
			return
		}
		for _, idx := range g.out[v] {
			e := g.edges[idx]
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// OutDegree returns the number of edges leaving v (0 for an unknown vertex).
func (g *Graph) OutDegree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.out[v])
}

// Weight returns the weight of the cheapest edge u→v.
// ok is false when no such edge exists.
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v int) (w int64, ok bool) {
	for to, wt := range g.Neighbors(u) {
		if to != v {
			continue
		}
		if !ok || wt < w {
			w, ok = wt, true
		}
	}

	return w, ok
}

// HasEdge reports whether at least one edge u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Edges returns a copy of all edges, ordered by source vertex and then by
// input order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	res := make([]Edge, 0, len(g.edges))
	for v := 0; v < g.n; v++ {
		for _, idx := range g.out[v] {
			res = append(res, g.edges[idx])
		}
	}

	return res
}

// Labeled reports whether the graph was built WithLabels.
func (g *Graph) Labeled() bool { return g.labels != nil }

// Label returns the external label of v, or its decimal id when the graph
// is unlabeled. Unknown vertices yield "".
func (g *Graph) Label(v int) string {
	if !g.HasVertex(v) {
		return ""
	}
	if g.labels == nil {
		return strconv.Itoa(v)
	}

	return g.labels[v]
}

// Labels returns a copy of the per-vertex labels (decimal ids when unlabeled).
func (g *Graph) Labels() []string {
	res := make([]string, g.n)
	for v := range res {
		res[v] = g.Label(v)
	}

	return res
}

// PathWeight sums the cheapest edge between each consecutive pair of path.
// An empty or single-vertex path costs 0.
// Errors: ErrVertexNotFound for an unknown vertex, ErrEdgeNotFound when a
// consecutive pair is not connected.
// Complexity: O(Σ deg(path[i])).
func (g *Graph) PathWeight(path []int) (int64, error) {
	var total int64
	for i, v := range path {
		if !g.HasVertex(v) {
			return 0, wrapVertex(v)
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(path[i-1], v)
		if !ok {
			return 0, wrapEdge(path[i-1], v)
		}
		total += w
	}

	return total, nil
}
