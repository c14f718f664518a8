// Package gridgraph maps a rectangular 2D grid of cells onto a core.Graph so
// that grid navigation becomes a shortest-path query.
//
// What:
//
//   - GridGraph wraps a [][]int grid; cells with value ≥ FreeThreshold are
//     free, the rest are obstacles.
//   - Vertices are row-major cell indices (y*Width + x) labeled "(x,y)".
//   - Every free cell gets a directed edge of weight MoveCost to each free
//     neighbour, in fixed N, NE, E, SE, S, SW, W, NW order (Conn8) or
//     N, E, S, W (Conn4). Obstacles are vertices without edges, so they stay
//     unreachable.
//
// Why:
//
//   - The solver only knows integer vertices; coordinates and obstacle rules
//     live here, outside the algorithm.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory (deep copy).
//   - ToGraph:      O(W×H×d) where d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadMoveCost:    MoveCost < 0.
//   - ErrOutOfBounds:    Index called with a coordinate outside the grid.
package gridgraph
