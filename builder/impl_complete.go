// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// impl_complete.go — Complete() constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair i→j with i≠j, i ascending then j ascending.
//     WithBidirectional is ignored: both directions are already present.
//
// Complexity: O(n²) time and space.

package builder

import "github.com/katalvlaran/gridroute/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete digraph K_n.
func Complete() Constructor {
	return func(n int, cfg builderConfig) ([]core.Edge, error) {
		if n < minCompleteNodes {
			return nil, builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n*(n-1))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				edges = append(edges, core.Edge{From: i, To: j, Weight: cfg.weightFn(cfg.rng)})
			}
		}

		return edges, nil
	}
}
