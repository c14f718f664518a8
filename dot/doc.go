// Package dot serializes a core.Graph and a Dijkstra predecessor vector into
// a Graphviz digraph, marking which edges belong to the shortest-path tree.
//
// Output shape:
//
//	digraph D {
//	  rankdir=LR
//	  size="4,3"
//	  ratio="fill"
//	  edge[style="bold"]
//	  node[shape="circle"]
//	  0 -> 3 [weight=1, tree=true, label="1", color="black"]
//	  2 -> 5 [weight=1, tree=false, label="1", color="grey"]
//	}
//
// Every edge gets exactly one line, in core.Graph.Edges() order, so the
// artifact is stable across runs and diff-friendly. An edge u→v is a tree
// edge iff u != v and prev[v] == u; tree edges are drawn black, the rest grey.
// Labeled graphs additionally declare each node with its label before the
// edges; edge lines always use vertex ids.
//
// ParseEdges reads the edge lines back, so weight and tree membership are
// recoverable without a Graphviz toolchain.
//
// Export is pure. Writing the text to a file is the caller's business; Write
// is a convenience for any io.Writer.
package dot
