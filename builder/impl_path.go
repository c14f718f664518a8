// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// impl_path.go — Path() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits i→i+1 for i = 0..n-2, in that order.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/gridroute/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the chain 0→1→…→n-1.
func Path() Constructor {
	return func(n int, cfg builderConfig) ([]core.Edge, error) {
		if n < minPathNodes {
			return nil, builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}

		edges := make([]core.Edge, 0, n-1)
		for i := 0; i < n-1; i++ {
			edges = emit(edges, i, i+1, cfg)
		}

		return edges, nil
	}
}
