// SPDX-License-Identifier: MIT
// Package core_test verifies construction and query contracts of core.Graph.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/core"
)

// sample is the six-cell grid example: 0→3→4→5→2 and 2→5.
func sample() []core.Edge {
	return []core.Edge{
		{From: 0, To: 3, Weight: 1},
		{From: 2, To: 5, Weight: 1},
		{From: 3, To: 4, Weight: 1},
		{From: 4, To: 5, Weight: 1},
		{From: 5, To: 2, Weight: 1},
	}
}

func TestNewGraph_Valid(t *testing.T) {
	g, err := core.NewGraph(6, sample())
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(3, 0), "edges are directed")
	assert.False(t, g.Labeled())
}

func TestNewGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		want  error
	}{
		{"NegativeCount", -1, nil, core.ErrBadVertexCount},
		{"TargetTooLarge", 3, []core.Edge{{From: 0, To: 3, Weight: 1}}, core.ErrInvalidEdge},
		{"SourceNegative", 3, []core.Edge{{From: -1, To: 2, Weight: 1}}, core.ErrInvalidEdge},
		{"NegativeWeight", 3, []core.Edge{{From: 0, To: 1, Weight: -2}}, core.ErrNegativeWeight},
		{"EdgeOnEmptyGraph", 0, []core.Edge{{From: 0, To: 0}}, core.ErrInvalidEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g, "no partial graph on failure")
		})
	}
}

func TestNewGraph_EdgeErrorDetails(t *testing.T) {
	edges := append(sample(), core.Edge{From: 1, To: 9, Weight: 1}, core.Edge{From: 1, To: 2, Weight: -1})
	_, err := core.NewGraph(6, edges)

	var ee *core.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 5, ee.Index, "first failing edge is reported")
	assert.Equal(t, core.Edge{From: 1, To: 9, Weight: 1}, ee.Edge)
	assert.Contains(t, err.Error(), "edge #5")
}

func TestNewGraph_CopiesInput(t *testing.T) {
	edges := sample()
	g, err := core.NewGraph(6, edges)
	require.NoError(t, err)

	edges[0].Weight = 99
	w, ok := g.Weight(0, 3)
	require.True(t, ok)
	assert.Equal(t, int64(1), w)
}

func TestGraph_NeighborsOrderAndRestart(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 2, Weight: 5},
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 3},
	})
	require.NoError(t, err)

	type pair struct {
		to int
		w  int64
	}
	collect := func() []pair {
		var res []pair
		for to, w := range g.Neighbors(0) {
			res = append(res, pair{to, w})
		}
		return res
	}
	want := []pair{{2, 5}, {1, 1}, {2, 3}}
	require.Equal(t, want, collect())
	require.Equal(t, want, collect(), "sequence is restartable")

	// Early break stops the iteration.
	n := 0
	for range g.Neighbors(0) {
		n++
		break
	}
	assert.Equal(t, 1, n)

	assert.Empty(t, collectAll(g, 7))
	assert.Equal(t, 3, g.OutDegree(0))
	assert.Equal(t, 0, g.OutDegree(-1))
}

func collectAll(g *core.Graph, v int) []int {
	var res []int
	for to := range g.Neighbors(v) {
		res = append(res, to)
	}
	return res
}

func TestGraph_WeightParallelEdges(t *testing.T) {
	g, err := core.NewGraph(2, []core.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 1, Weight: 4},
	})
	require.NoError(t, err)

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(2), w)

	_, ok = g.Weight(1, 0)
	assert.False(t, ok)
}

func TestGraph_EdgesOrderedBySource(t *testing.T) {
	g, err := core.NewGraph(6, sample())
	require.NoError(t, err)

	want := []core.Edge{
		{From: 0, To: 3, Weight: 1},
		{From: 2, To: 5, Weight: 1},
		{From: 3, To: 4, Weight: 1},
		{From: 4, To: 5, Weight: 1},
		{From: 5, To: 2, Weight: 1},
	}
	require.Equal(t, want, g.Edges())

	// Returned slice is a copy.
	got := g.Edges()
	got[0].To = 1
	assert.True(t, g.HasEdge(0, 3))
}

func TestGraph_Labels(t *testing.T) {
	names := []string{"(1,1)", "(1,2)", "(1,3)", "(2,1)", "(2,2)", "(2,3)"}
	g, err := core.NewGraph(6, sample(), core.WithLabels(names))
	require.NoError(t, err)
	require.True(t, g.Labeled())
	assert.Equal(t, "(2,1)", g.Label(3))
	assert.Equal(t, "", g.Label(6))
	assert.Equal(t, names, g.Labels())

	names[3] = "changed"
	assert.Equal(t, "(2,1)", g.Label(3), "labels are copied")

	_, err = core.NewGraph(6, sample(), core.WithLabels([]string{"a"}))
	require.ErrorIs(t, err, core.ErrLabelCount)

	_, err = core.NewGraph(6, sample(), core.WithLabels([]string{}))
	require.ErrorIs(t, err, core.ErrLabelCount)

	empty, err := core.NewGraph(0, nil, core.WithLabels(nil))
	require.NoError(t, err)
	assert.True(t, empty.Labeled())

	plain, err := core.NewGraph(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, plain.Labels())
}

func TestGraph_PathWeight(t *testing.T) {
	g, err := core.NewGraph(6, sample())
	require.NoError(t, err)

	w, err := g.PathWeight([]int{0, 3, 4, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)

	w, err = g.PathWeight([]int{1})
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = g.PathWeight([]int{0, 4})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.PathWeight([]int{0, 8})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
