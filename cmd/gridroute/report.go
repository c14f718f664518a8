package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridroute/core"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/dot"
)

// writeReport prints the distance/parent table followed by the route.
// A nil path means the goal was not reached.
func writeReport(w io.Writer, dist []int64, prev []int, source, goal int, path []int) error {
	var b strings.Builder
	b.WriteString("distances and parents:\n")
	for v := range dist {
		fmt.Fprintf(&b, "distance(%d) = %s, parent(%d) = %d\n", v, formatDist(dist[v]), v, prev[v])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Path from node %d to node %d\n", source, goal)
	if path == nil {
		b.WriteString("no path\n")
	} else {
		hops := make([]string, len(path))
		for i, v := range path {
			hops[i] = strconv.Itoa(v)
		}
		b.WriteString(strings.Join(hops, " -> "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func formatDist(d int64) string {
	if d == dijkstra.Infinity {
		return "inf"
	}

	return strconv.FormatInt(d, 10)
}

// writeDOT exports g to path, replacing any existing file.
func writeDOT(path string, g *core.Graph, prev []int, opts []dot.Option, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := dot.Write(f, g, prev, opts...); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("DOT file written.", "path", path, "edges", g.EdgeCount())

	return nil
}
