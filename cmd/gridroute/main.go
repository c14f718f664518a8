// Command gridroute solves a single-source shortest-path scenario, prints the
// distance/parent table and the route, and writes the graph as a DOT file with
// the shortest-path tree highlighted.
//
// Usage:
//
//	gridroute [scenario.hcl] [--out file.dot] [--source N] [--goal N]
//
// Without a scenario file the built-in six-cell example is solved.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/scenario"
)

var version = "0.1.0-dev"

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the root command around the given streams and executes it with args.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridroute [scenario.hcl]",
		Short: "Shortest route through a weighted graph or grid map",
		Long: `gridroute runs Dijkstra's algorithm from the scenario's source vertex,
prints every vertex's distance and parent followed by the route to the goal,
and writes the graph as Graphviz DOT with shortest-path-tree edges in black.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSolve,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringP("out", "o", "", "DOT output path (default: scenario output or "+scenario.DefaultOutput+")")
	flags.Int("source", 0, "override the scenario source vertex")
	flags.Int("goal", 0, "override the scenario goal vertex")
	flags.Int64("max-distance", 0, "leave vertices farther than this unreached")
	flags.Bool("no-style", false, "omit the layout header from the DOT output")
	flags.String("log-level", "warn", "log level: debug|info|warn|error")
	flags.String("log-format", "text", "log format: text|json")

	return rootCmd
}
