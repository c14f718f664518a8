// SPDX-License-Identifier: MIT
// Package: gridroute/core
//
// types.go — Edge, Graph, GraphOption and the sentinel errors of the
// graph store.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Construction failures on a specific edge are delivered as *EdgeError,
//     which unwraps to ErrInvalidEdge or ErrNegativeWeight.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrInvalidEdge indicates an edge endpoint lies outside [0, N).
	ErrInvalidEdge = errors.New("core: edge endpoint out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLabelCount indicates WithLabels received a slice of the wrong length.
	ErrLabelCount = errors.New("core: label count does not match vertex count")

	// ErrVertexNotFound indicates a query referenced a vertex outside [0, N).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a query referenced a pair with no edge between them.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   int   // source vertex
	To     int   // target vertex
	Weight int64 // non-negative cost
}

// String renders the edge as "from→to(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// EdgeError reports which input edge made NewGraph fail.
type EdgeError struct {
	Index int   // position of the edge in the input slice
	Edge  Edge  // the offending edge
	Err   error // ErrInvalidEdge or ErrNegativeWeight
}

// Error implements error.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("%v: edge #%d %s", e.Err, e.Index, e.Edge)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *EdgeError) Unwrap() error { return e.Err }

// GraphOption configures a Graph during NewGraph.
type GraphOption func(*graphConfig)

// graphConfig collects option values before validation.
type graphConfig struct {
	labels []string
}

// WithLabels attaches one external label per vertex (index i labels vertex i).
// The slice is copied; its length is validated by NewGraph, so an empty
// slice for a non-empty graph is ErrLabelCount.
func WithLabels(labels []string) GraphOption {
	return func(c *graphConfig) {
		c.labels = make([]string, len(labels))
		copy(c.labels, labels)
	}
}

// Graph is an immutable directed multigraph over the vertices 0..N-1.
//
// edges holds the owned edge list in input order; out[v] lists the indices
// of edges leaving v in that same order. Once NewGraph returns none of the
// fields change.
type Graph struct {
	n      int
	edges  []Edge
	out    [][]int
	labels []string // nil when the graph is unlabeled
}
