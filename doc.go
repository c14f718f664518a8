// Package gridroute finds shortest routes through small weighted directed
// graphs and grid maps, and exports the result for Graphviz.
//
// What is in the box:
//
//	core/      — immutable int-vertex directed multigraph with optional labels
//	dijkstra/  — single-source shortest paths (binary heap, lazy deletion) + Path
//	dot/       — deterministic DOT export marking shortest-path-tree edges
//	gridgraph/ — 2D cell grids mapped onto core graphs, obstacles excluded
//	builder/   — deterministic graph generators for tests and benchmarks
//	scenario/  — HCL scenario files: labels, edges or grid, source, goal
//	cmd/gridroute — CLI tying it together: solve, report, write .dot
//
// Quick ASCII example (cell 1 is an obstacle):
//
//	0 start ─x─ 1 ─x─ 2 goal
//	   │              ▲
//	3 a ──── 4 b ──── 5 c
//
// The route from 0 to 2 is 0 → 3 → 4 → 5 → 2 at distance 4, and vertex 1
// stays at distance Infinity.
//
//	go get github.com/katalvlaran/gridroute
package gridroute
