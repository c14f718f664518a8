// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// impl_random_sparse.go — RandomSparse(p) constructor.
//
// Model:
//   - Erdős–Rényi-like: include each ordered pair (i,j) independently with
//     probability p; i==j only when WithLoops is set.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials run i ascending, then j ascending; the weight is drawn right
//     after a successful trial. Fixed seed → fixed edge list.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "github.com/katalvlaran/gridroute/core"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph with
// independent edge probability p.
func RandomSparse(p float64) Constructor {
	return func(n int, cfg builderConfig) ([]core.Edge, error) {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return nil, builderErrorf(methodRandomSparse, "n=%d < min=%d: %w",
				n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
				p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}

		// 2) Trials over ordered pairs in a stable order.
		var edges []core.Edge
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				edges = append(edges, core.Edge{From: i, To: j, Weight: cfg.weightFn(cfg.rng)})
			}
		}

		return edges, nil
	}
}

// trial performs one Bernoulli(p) draw; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
