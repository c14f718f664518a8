// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// impl_cycle.go — Cycle() constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i→(i+1)%n for i = 0..n-1, in that order.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/gridroute/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the directed ring over all n vertices.
func Cycle() Constructor {
	return func(n int, cfg builderConfig) ([]core.Edge, error) {
		if n < minCycleNodes {
			return nil, builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = emit(edges, i, (i+1)%n, cfg)
		}

		return edges, nil
	}
}
