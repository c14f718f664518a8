// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridroute.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadMoveCost indicates a negative per-move cost.
	ErrBadMoveCost = errors.New("gridgraph: move cost must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for the grid mapping.
type GridOptions struct {
	// FreeThreshold is the minimum cell value considered walkable.
	FreeThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MoveCost is the weight of every edge between neighbouring free cells.
	MoveCost int64
}

// DefaultGridOptions returns FreeThreshold=1 (values ≥1 are free), Conn4, MoveCost=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		FreeThreshold: 1,
		Conn:          Conn4,
		MoveCost:      1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	FreeThreshold   int
	MoveCost        int64
	neighborOffsets [][2]int
}
