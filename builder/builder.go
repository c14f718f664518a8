package builder

import (
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// Constructor emits the edges of one topology over the vertices 0..n-1.
type Constructor func(n int, cfg builderConfig) ([]core.Edge, error)

// Build resolves bopts, runs every constructor over n vertices, concatenates
// their edges in argument order and hands them to core.NewGraph.
//
// Errors: ErrConstructFailed for a nil constructor, any constructor error,
// or the core construction error (wrapped).
// Complexity: sum of the constructors plus O(V + E) for core.NewGraph.
func Build(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	var edges []core.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		part, err := fn(n, cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		edges = append(edges, part...)
	}

	var gopts []core.GraphOption
	if cfg.labelFn != nil && n >= 0 {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = cfg.labelFn(i)
		}
		gopts = append(gopts, core.WithLabels(labels))
	}

	g, err := core.NewGraph(n, edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// emit appends u→v (and v→u when bidirectional) with freshly drawn weights.
func emit(edges []core.Edge, u, v int, cfg builderConfig) []core.Edge {
	edges = append(edges, core.Edge{From: u, To: v, Weight: cfg.weightFn(cfg.rng)})
	if cfg.bidirectional {
		edges = append(edges, core.Edge{From: v, To: u, Weight: cfg.weightFn(cfg.rng)})
	}

	return edges
}
