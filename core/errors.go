package core

import "fmt"

// wrapVertex attaches the offending vertex to ErrVertexNotFound.
func wrapVertex(v int) error {
	return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
}

// wrapEdge attaches the offending pair to ErrEdgeNotFound.
func wrapEdge(u, v int) error {
	return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, u, v)
}
