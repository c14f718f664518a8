package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridroute/core"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// labelsVar is the name of the label→id object in expressions.
const labelsVar = "v"

// evaluator resolves scenario expressions against the label table and grid.
type evaluator struct {
	ids map[string]int
	ctx *hcl.EvalContext
}

func newEvaluator(ids map[string]int, gg *gridgraph.GridGraph) *evaluator {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{labelsVar: labelObject(ids)},
		Functions: map[string]function.Function{},
	}
	if gg != nil {
		ctx.Functions["cell"] = cellFunc(gg)
	}

	return &evaluator{ids: ids, ctx: ctx}
}

// cellFunc returns cell(x, y), the row-major vertex id of a grid cell.
func cellFunc(gg *gridgraph.GridGraph) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "x", Type: cty.Number},
			{Name: "y", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			var x, y int
			if err := gocty.FromCtyValue(args[0], &x); err != nil {
				return cty.UnknownVal(cty.Number), function.NewArgError(0, err)
			}
			if err := gocty.FromCtyValue(args[1], &y); err != nil {
				return cty.UnknownVal(cty.Number), function.NewArgError(1, err)
			}
			idx, err := gg.Index(x, y)
			if err != nil {
				return cty.UnknownVal(cty.Number), err
			}

			return cty.NumberIntVal(int64(idx)), nil
		},
	})
}

// checkLabels reports the first v.<name> traversal naming an undeclared label.
func (ev *evaluator) checkLabels(expr hcl.Expression) error {
	for _, t := range expr.Variables() {
		if t.RootName() != labelsVar || len(t) < 2 {
			continue
		}
		attr, ok := t[1].(hcl.TraverseAttr)
		if !ok {
			continue
		}
		if _, known := ev.ids[attr.Name]; !known {
			return fmt.Errorf("%w: %q at %s", ErrUnknownLabel, attr.Name, t.SourceRange())
		}
	}

	return nil
}

// value evaluates expr; ok is false when the attribute was omitted.
func (ev *evaluator) value(expr hcl.Expression, name string) (cty.Value, bool, error) {
	if expr == nil {
		return cty.NilVal, false, nil
	}
	if err := ev.checkLabels(expr); err != nil {
		return cty.NilVal, false, err
	}
	val, diags := expr.Value(ev.ctx)
	if diags.HasErrors() {
		return cty.NilVal, false, fmt.Errorf("%s: %w", name, diags)
	}
	if val.IsNull() {
		return cty.NilVal, false, nil
	}

	return val, true, nil
}

func (ev *evaluator) intAttr(expr hcl.Expression, name string) (int64, bool, error) {
	val, ok, err := ev.value(expr, name)
	if err != nil || !ok {
		return 0, false, err
	}
	var n int64
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, false, fmt.Errorf("%s: %w", name, err)
	}

	return n, true, nil
}

func (ev *evaluator) stringAttr(expr hcl.Expression, name string) (string, bool, error) {
	val, ok, err := ev.value(expr, name)
	if err != nil || !ok {
		return "", false, err
	}
	var s string
	if err := gocty.FromCtyValue(val, &s); err != nil {
		return "", false, fmt.Errorf("%s: %w", name, err)
	}

	return s, true, nil
}

// errMissing is returned when a required edge attribute evaluates to null.
var errMissing = errors.New("value is required")

func (ev *evaluator) edge(eb *edgeBlock) (core.Edge, error) {
	var fields [3]int64
	for i, f := range []struct {
		name string
		expr hcl.Expression
	}{{"from", eb.From}, {"to", eb.To}, {"weight", eb.Weight}} {
		n, ok, err := ev.intAttr(f.expr, f.name)
		if err != nil {
			return core.Edge{}, err
		}
		if !ok {
			return core.Edge{}, fmt.Errorf("%s: %w", f.name, errMissing)
		}
		fields[i] = n
	}

	return core.Edge{From: int(fields[0]), To: int(fields[1]), Weight: fields[2]}, nil
}
