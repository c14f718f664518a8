// Package scenario loads routing scenarios from HCL files.
//
// A scenario names the vertices of a graph, lists its weighted edges (or
// describes a grid of cells to be mapped onto one), and picks the source and
// goal of the route:
//
//	labels = ["start", "obstacle", "goal", "a", "b", "c"]
//	source = v.start
//	goal   = v.goal
//	output = "dijkstra-eg.dot"
//
//	edge {
//	  from   = v.start
//	  to     = v.a
//	  weight = 1
//	}
//
// Grid scenarios replace labels/vertices/edge with a single block:
//
//	grid {
//	  cells     = [[1, 0, 1], [1, 1, 1]]
//	  diagonal  = false
//	  threshold = 1
//	  move_cost = 1
//	}
//	source = cell(0, 0)
//	goal   = cell(2, 0)
//
// Expressions are evaluated with two names in scope: the object v, mapping
// each label to its vertex id, and the function cell(x, y), returning the
// row-major id of a grid cell.
package scenario
