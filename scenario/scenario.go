package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridroute/core"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors for scenario loading.
var (
	// ErrNoTopology indicates a file with neither labels, vertices nor a grid block.
	ErrNoTopology = errors.New("scenario: no vertices, labels or grid defined")
	// ErrAmbiguousTopology indicates a grid block mixed with explicit vertices or edges.
	ErrAmbiguousTopology = errors.New("scenario: grid block cannot be combined with vertices, labels or edges")
	// ErrUnknownLabel indicates a v.<name> reference to an undeclared label.
	ErrUnknownLabel = errors.New("scenario: unknown vertex label")
	// ErrDuplicateLabel indicates the same label declared for two vertices.
	ErrDuplicateLabel = errors.New("scenario: duplicate vertex label")
	// ErrMultipleGrids indicates more than one grid block.
	ErrMultipleGrids = errors.New("scenario: at most one grid block is allowed")
)

// DefaultOutput is the DOT file written when a scenario does not name one.
const DefaultOutput = "dijkstra-eg.dot"

// Scenario is a fully resolved routing problem.
type Scenario struct {
	// Vertices is the vertex count N.
	Vertices int
	// Edges lists the weighted directed edges in file order.
	Edges []core.Edge
	// Labels holds one label per vertex, or nil when the file declared none
	// (grid labels come from the grid itself).
	Labels []string
	// Source and Goal are the route endpoints.
	Source, Goal int
	// Output is the DOT destination path; empty means DefaultOutput.
	Output string
	// Grid is set when the topology came from a grid block.
	Grid *gridgraph.GridGraph
}

// fileRoot decodes the literal top-level settings that shape the evaluation
// context; everything else is left in Remain for the second pass.
type fileRoot struct {
	Labels []string     `hcl:"labels,optional"`
	Grids  []*gridBlock `hcl:"grid,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type gridBlock struct {
	Cells     [][]int `hcl:"cells"`
	Diagonal  bool    `hcl:"diagonal,optional"`
	Threshold *int    `hcl:"threshold,optional"`
	MoveCost  *int64  `hcl:"move_cost,optional"`
}

// routeBody holds the expressions that may reference v and cell().
type routeBody struct {
	Vertices hcl.Expression `hcl:"vertices,optional"`
	Source   hcl.Expression `hcl:"source,optional"`
	Goal     hcl.Expression `hcl:"goal,optional"`
	Output   hcl.Expression `hcl:"output,optional"`
	Edges    []*edgeBlock   `hcl:"edge,block"`
}

type edgeBlock struct {
	From   hcl.Expression `hcl:"from"`
	To     hcl.Expression `hcl:"to"`
	Weight hcl.Expression `hcl:"weight"`
}

// Load reads and resolves the scenario file at path.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(file, path)
}

// Parse resolves a scenario from in-memory HCL source; filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Scenario, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(root.Grids) > 1 {
		return nil, fmt.Errorf("%w: %s", ErrMultipleGrids, filename)
	}

	sc := &Scenario{}
	ids := make(map[string]int, len(root.Labels))
	if root.Labels != nil {
		sc.Labels = make([]string, len(root.Labels))
		copy(sc.Labels, root.Labels)
		for i, l := range root.Labels {
			if first, dup := ids[l]; dup {
				return nil, fmt.Errorf("%w: %q at %d and %d in %s", ErrDuplicateLabel, l, first, i, filename)
			}
			ids[l] = i
		}
	}

	if len(root.Grids) == 1 {
		if root.Labels != nil {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousTopology, filename)
		}
		gg, err := root.Grids[0].gridGraph()
		if err != nil {
			return nil, fmt.Errorf("scenario: grid in %s: %w", filename, err)
		}
		sc.Grid = gg
	}

	ev := newEvaluator(ids, sc.Grid)
	var body routeBody
	if diags := gohcl.DecodeBody(root.Remain, ev.ctx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if err := sc.resolveTopology(ev, &body, filename); err != nil {
		return nil, err
	}
	if err := sc.resolveRoute(ev, &body); err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", filename, err)
	}

	return sc, nil
}

func (sc *Scenario) resolveTopology(ev *evaluator, body *routeBody, filename string) error {
	vertices, hasVertices, err := ev.intAttr(body.Vertices, "vertices")
	if err != nil {
		return fmt.Errorf("scenario: %s: %w", filename, err)
	}

	if sc.Grid != nil {
		if hasVertices || len(body.Edges) > 0 {
			return fmt.Errorf("%w: %s", ErrAmbiguousTopology, filename)
		}
		sc.Vertices = sc.Grid.Width * sc.Grid.Height
		sc.Edges = sc.Grid.Edges()

		return nil
	}

	switch {
	case hasVertices:
		sc.Vertices = int(vertices)
	case sc.Labels != nil:
		sc.Vertices = len(sc.Labels)
	default:
		return fmt.Errorf("%w: %s", ErrNoTopology, filename)
	}

	sc.Edges = make([]core.Edge, 0, len(body.Edges))
	for i, eb := range body.Edges {
		e, err := ev.edge(eb)
		if err != nil {
			return fmt.Errorf("scenario: %s: edge #%d: %w", filename, i, err)
		}
		sc.Edges = append(sc.Edges, e)
	}

	return nil
}

func (sc *Scenario) resolveRoute(ev *evaluator, body *routeBody) error {
	src, ok, err := ev.intAttr(body.Source, "source")
	if err != nil {
		return err
	}
	if ok {
		sc.Source = int(src)
	}

	sc.Goal = sc.Vertices - 1
	goal, ok, err := ev.intAttr(body.Goal, "goal")
	if err != nil {
		return err
	}
	if ok {
		sc.Goal = int(goal)
	}

	out, ok, err := ev.stringAttr(body.Output, "output")
	if err != nil {
		return err
	}
	if ok {
		sc.Output = out
	}

	return nil
}

func (gb *gridBlock) gridGraph() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if gb.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	if gb.Threshold != nil {
		opts.FreeThreshold = *gb.Threshold
	}
	if gb.MoveCost != nil {
		opts.MoveCost = *gb.MoveCost
	}

	return gridgraph.NewGridGraph(gb.Cells, opts)
}

// Graph builds the immutable graph described by the scenario. Grid
// scenarios delegate to GridGraph.ToGraph, which labels cells "(x,y)".
func (sc *Scenario) Graph() (*core.Graph, error) {
	if sc.Grid != nil {
		return sc.Grid.ToGraph()
	}
	var opts []core.GraphOption
	if sc.Labels != nil {
		opts = append(opts, core.WithLabels(sc.Labels))
	}

	return core.NewGraph(sc.Vertices, sc.Edges, opts...)
}

// OutputPath returns Output, or DefaultOutput when it is empty.
func (sc *Scenario) OutputPath() string {
	if sc.Output == "" {
		return DefaultOutput
	}

	return sc.Output
}

// Default returns the built-in six-cell example: a 2×3 map whose cell 1 is
// an obstacle, routed from "start" (0) to "goal" (2) with unit moves.
//
//	0 start   1 obstacle   2 goal
//	3 a       4 b          5 c
func Default() *Scenario {
	return &Scenario{
		Vertices: 6,
		Edges: []core.Edge{
			{From: 0, To: 3, Weight: 1},
			{From: 2, To: 5, Weight: 1},
			{From: 3, To: 4, Weight: 1},
			{From: 4, To: 5, Weight: 1},
			{From: 5, To: 2, Weight: 1},
		},
		Labels: []string{"start", "obstacle", "goal", "a", "b", "c"},
		Source: 0,
		Goal:   2,
		Output: DefaultOutput,
	}
}

// labelObject builds the cty object bound to v.
func labelObject(ids map[string]int) cty.Value {
	if len(ids) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(ids))
	for l, id := range ids {
		attrs[l] = cty.NumberIntVal(int64(id))
	}

	return cty.ObjectVal(attrs)
}
