package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/dot"
	"github.com/katalvlaran/gridroute/scenario"
)

// runSolve is the root command: load → build → solve → report → export.
func runSolve(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	levelStr, _ := flags.GetString("log-level")
	formatStr, _ := flags.GetString("log-format")
	logger := newLogger(levelStr, formatStr, cmd.ErrOrStderr())

	sc := scenario.Default()
	if len(args) == 1 {
		loaded, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		sc = loaded
		logger.Info("Scenario loaded.", "path", args[0], "vertices", sc.Vertices, "edges", len(sc.Edges))
	} else {
		logger.Info("No scenario given, using the built-in example.")
	}

	if flags.Changed("source") {
		sc.Source, _ = flags.GetInt("source")
	}
	if flags.Changed("goal") {
		sc.Goal, _ = flags.GetInt("goal")
	}

	g, err := sc.Graph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	var opts []dijkstra.Option
	if flags.Changed("max-distance") {
		maxDist, _ := flags.GetInt64("max-distance")
		if maxDist < 0 {
			return fmt.Errorf("--max-distance: %w", dijkstra.ErrBadMaxDistance)
		}
		opts = append(opts, dijkstra.WithMaxDistance(maxDist))
	}

	logger.Debug("Solving.", "source", sc.Source, "goal", sc.Goal)
	dist, prev, err := dijkstra.Dijkstra(g, sc.Source, opts...)
	if err != nil {
		return fmt.Errorf("solve from %d: %w", sc.Source, err)
	}

	path, err := dijkstra.Path(prev, sc.Source, sc.Goal)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		logger.Warn("Goal is unreachable.", "source", sc.Source, "goal", sc.Goal)
		path = nil
	case err != nil:
		return fmt.Errorf("route to %d: %w", sc.Goal, err)
	}

	if err := writeReport(cmd.OutOrStdout(), dist, prev, sc.Source, sc.Goal, path); err != nil {
		return err
	}

	if err := cmd.Context().Err(); err != nil {
		return err
	}

	outPath, _ := flags.GetString("out")
	if outPath == "" {
		outPath = sc.OutputPath()
	}
	var dotOpts []dot.Option
	if noStyle, _ := flags.GetBool("no-style"); noStyle {
		dotOpts = append(dotOpts, dot.WithoutStyle())
	}

	return writeDOT(outPath, g, prev, dotOpts, logger)
}
