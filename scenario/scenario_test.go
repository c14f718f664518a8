package scenario_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/core"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/scenario"
)

func TestLoad_DefaultFileMatchesBuiltin(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "default.hcl"))
	require.NoError(t, err)

	if diff := cmp.Diff(scenario.Default(), sc); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_Solves(t *testing.T) {
	sc := scenario.Default()
	g, err := sc.Graph()
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g, sc.Source)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, dijkstra.Infinity, 4, 1, 2, 3}, dist)
	assert.Equal(t, []int{0, 1, 5, 0, 3, 4}, prev)
	assert.Equal(t, "goal", g.Label(sc.Goal))
}

func TestLoad_Grid(t *testing.T) {
	sc, err := scenario.Load(filepath.Join("testdata", "grid.hcl"))
	require.NoError(t, err)

	require.NotNil(t, sc.Grid)
	assert.Equal(t, 6, sc.Vertices)
	assert.Equal(t, 0, sc.Source)
	assert.Equal(t, 2, sc.Goal)
	assert.Equal(t, "grid.dot", sc.OutputPath())
	assert.Nil(t, sc.Labels)
	for _, e := range sc.Edges {
		assert.EqualValues(t, 2, e.Weight)
		assert.NotEqual(t, 1, e.From)
		assert.NotEqual(t, 1, e.To)
	}

	g, err := sc.Graph()
	require.NoError(t, err)
	assert.Equal(t, "(1,1)", g.Label(4))
	assert.Equal(t, sc.Edges, g.Edges())
	dist, _, err := dijkstra.Dijkstra(g, sc.Source)
	require.NoError(t, err)
	assert.EqualValues(t, 8, dist[sc.Goal])
}

func TestLoad_UnknownLabel(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "unknown_label.hcl"))
	require.ErrorIs(t, err, scenario.ErrUnknownLabel)
	assert.Contains(t, err.Error(), `"z"`)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "absent.hcl"))
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"NoTopology", `source = 0`, scenario.ErrNoTopology},
		{"GridWithLabels", `
labels = ["a"]
grid {
  cells = [[1]]
}`, scenario.ErrAmbiguousTopology},
		{"GridWithEdges", `
grid {
  cells = [[1, 1]]
}
edge {
  from   = 0
  to     = 1
  weight = 1
}`, scenario.ErrAmbiguousTopology},
		{"DuplicateLabel", `
labels = ["a", "a", "b"]
source = v.a`, scenario.ErrDuplicateLabel},
		{"TwoGrids", `
grid {
  cells = [[1]]
}
grid {
  cells = [[1]]
}`, scenario.ErrMultipleGrids},
		{"UnknownLabelInEdge", `
labels = ["a", "b"]
edge {
  from   = v.a
  to     = v.c
  weight = 1
}`, scenario.ErrUnknownLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.src), tc.name+".hcl")
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_SyntaxAndTypeErrors(t *testing.T) {
	for name, src := range map[string]string{
		"Syntax":        `labels = [`,
		"NonNumeric":    "vertices = 2\nsource = \"zero\"",
		"Fractional":    "vertices = 2\ngoal = 1.5",
		"UnknownAttr":   "vertices = 2\ncolour = \"red\"",
		"CellNoGrid":    "vertices = 2\nsource = cell(0, 0)",
		"CellOutOfGrid": "grid {\n  cells = [[1]]\n}\ngoal = cell(3, 3)",
		"RaggedGrid":    "grid {\n  cells = [[1, 1], [1]]\n}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(src), name+".hcl")
			require.Error(t, err)
		})
	}
}

func TestParse_VerticesWithoutLabels(t *testing.T) {
	sc, err := scenario.Parse([]byte(`
vertices = 3
source   = 1
edge {
  from   = 1
  to     = 2
  weight = 7
}`), "plain.hcl")
	require.NoError(t, err)

	assert.Nil(t, sc.Labels)
	assert.Equal(t, 1, sc.Source)
	assert.Equal(t, 2, sc.Goal, "goal defaults to the last vertex")
	assert.Equal(t, scenario.DefaultOutput, sc.OutputPath())
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 7}}, sc.Edges)

	g, err := sc.Graph()
	require.NoError(t, err)
	assert.False(t, g.Labeled())
}

func TestGraph_PropagatesCoreErrors(t *testing.T) {
	sc, err := scenario.Parse([]byte(`
labels = ["a", "b"]
edge {
  from   = v.a
  to     = v.b
  weight = -1
}`), "negative.hcl")
	require.NoError(t, err)

	_, err = sc.Graph()
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}
