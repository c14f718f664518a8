package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridroute/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadMoveCost if
// opts.MoveCost < 0.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.MoveCost < 0 {
		return nil, ErrBadMoveCost
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		FreeThreshold:   opts.FreeThreshold,
		MoveCost:        opts.MoveCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Free reports whether (x,y) is inside the grid and walkable.
func (gg *GridGraph) Free(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.FreeThreshold
}

// NeighborOffsets returns the precomputed (dx,dy) offsets in emission order.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to its row-major vertex id y*Width + x.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (gg *GridGraph) Index(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return gg.index(x, y), nil
}

// index maps (x,y) to a row-major index without bounds checks.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Label formats the vertex label for cell (x,y).
func (gg *GridGraph) Label(x, y int) string {
	return fmt.Sprintf("(%d,%d)", x, y)
}

// Edges lists the directed moves between neighbouring free cells: for each
// free cell in row-major order, one edge per free neighbour in offset order.
// Complexity: O(W×H×d).
func (gg *GridGraph) Edges() []core.Edge {
	var edges []core.Edge
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Free(x, y) {
				continue
			}
			u := gg.index(x, y)
			for _, d := range gg.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.Free(nx, ny) {
					continue
				}
				edges = append(edges, core.Edge{From: u, To: gg.index(nx, ny), Weight: gg.MoveCost})
			}
		}
	}

	return edges
}

// ToGraph converts the grid into a labeled *core.Graph with Width×Height
// vertices and the edges of Edges().
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToGraph() (*core.Graph, error) {
	n := gg.Width * gg.Height
	labels := make([]string, n)
	for i := range labels {
		x, y := gg.Coordinate(i)
		labels[i] = gg.Label(x, y)
	}

	return core.NewGraph(n, gg.Edges(), core.WithLabels(labels))
}
