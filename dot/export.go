// SPDX-License-Identifier: MIT
// Package: gridroute/dot
//
// export.go — Export / Write.
//
// Determinism:
//   - Header lines are fixed; node lines ascend by id; edge lines follow
//     core.Graph.Edges() (source ascending, then insertion order).

package dot

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridroute/core"
)

// Sentinel errors for export and parsing.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrPredecessorLength indicates len(prev) differs from the vertex count.
	ErrPredecessorLength = errors.New("dot: predecessor vector length does not match vertex count")

	// ErrMalformedLine indicates an edge line ParseEdges could not read.
	ErrMalformedLine = errors.New("dot: malformed edge line")
)

const (
	defaultName = "D"
	colorTree   = "black"
	colorOther  = "grey"
)

// styleHeader mirrors the layout used by the original dijkstra-eg.dot artifact.
var styleHeader = []string{
	`rankdir=LR`,
	`size="4,3"`,
	`ratio="fill"`,
	`edge[style="bold"]`,
	`node[shape="circle"]`,
}

// Options configures Export.
type Options struct {
	Name  string // digraph name
	Style bool   // emit the layout header lines
}

// Option is a functional option for Export and Write.
type Option func(*Options)

// WithName sets the digraph name. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("dot: WithName(\"\")")
	}

	return func(o *Options) { o.Name = name }
}

// WithoutStyle drops the layout header (rankdir, size, ratio, default styles).
func WithoutStyle() Option {
	return func(o *Options) { o.Style = false }
}

// IsTreeEdge reports whether u→v lies on the shortest-path tree described by prev.
func IsTreeEdge(prev []int, u, v int) bool {
	return u != v && v >= 0 && v < len(prev) && prev[v] == u
}

// Export renders g and its predecessor vector as a DOT digraph.
//
// Errors: ErrNilGraph, ErrPredecessorLength. No partial output is returned.
// Complexity: O(V + E) time and output size.
func Export(g *core.Graph, prev []int, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, g, prev, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write streams the DOT text of Export to w.
// The input is validated before the first byte is written.
func Write(w io.Writer, g *core.Graph, prev []int, opts ...Option) error {
	cfg := Options{Name: defaultName, Style: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return ErrNilGraph
	}
	if len(prev) != g.VertexCount() {
		return fmt.Errorf("%w: got %d, want %d", ErrPredecessorLength, len(prev), g.VertexCount())
	}

	ew := &errWriter{w: w}
	ew.printf("digraph %s {\n", quoteID(cfg.Name))
	if cfg.Style {
		for _, line := range styleHeader {
			ew.printf("  %s\n", line)
		}
	}
	if g.Labeled() {
		for v := 0; v < g.VertexCount(); v++ {
			ew.printf("  %d [label=%s]\n", v, strconv.Quote(g.Label(v)))
		}
	}
	for _, e := range g.Edges() {
		ew.printf("  %s\n", edgeLine(e, IsTreeEdge(prev, e.From, e.To)))
	}
	ew.printf("}\n")

	return ew.err
}

// edgeLine formats one edge declaration (without indentation).
func edgeLine(e core.Edge, tree bool) string {
	color := colorOther
	if tree {
		color = colorTree
	}

	return fmt.Sprintf("%d -> %d [weight=%d, tree=%t, label=\"%d\", color=\"%s\"]",
		e.From, e.To, e.Weight, tree, e.Weight, color)
}

// quoteID leaves plain identifiers bare and quotes anything else.
func quoteID(id string) string {
	for i, r := range id {
		ok := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !ok {
			return strconv.Quote(id)
		}
	}

	return id
}

// errWriter remembers the first write error and skips the rest.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
