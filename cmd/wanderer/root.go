package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/wanderer/gridgraph"
	"github.com/katalvlaran/wanderer/loader"
	"github.com/katalvlaran/wanderer/navigator"
	"github.com/katalvlaran/wanderer/trace"
)

type rootFlags struct {
	config   string
	color    string
	logLevel string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "wanderer NODES EDGES OBJECTIVES [OUTPUT]",
		Short: "Navigate a partially observed weighted grid",
		Long: `wanderer reads a node file, an edge file and an objective file, then walks
the objectives in order, replanning whenever fog hides an obstacle on the route.
Each move, completed objective, impassable route and accepted offer is written
as one line to OUTPUT (standard output when omitted or "-").`,
		Args:          cobra.RangeArgs(3, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}
	cmd.Flags().StringVar(&f.config, "config", "", "YAML file with color and log_level")
	cmd.Flags().StringVar(&f.color, "color", ColorAuto, "colourise trace lines: auto, always or never")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "diagnostic log level on stderr")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file over
// defaults.
func resolveConfig(cmd *cobra.Command, f rootFlags) (Config, error) {
	cfg := DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = f.color
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, cfg Config, args []string) (err error) {
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	grid, err := loadGrid(args[0], args[1])
	if err != nil {
		return err
	}
	sc, err := loadScenario(args[2])
	if err != nil {
		return err
	}
	logger.Info("scenario loaded",
		"rows", grid.Rows(), "cols", grid.Cols(),
		"radius", sc.Radius, "start", sc.Start, "objectives", len(sc.Objectives))

	// The trace writer is attached once the output is open, so nothing is
	// created on disk when the scenario itself is invalid.
	var rep deferredReporter
	nav, err := navigator.New(grid, sc.Start, sc.Radius,
		navigator.WithReporter(&rep),
		navigator.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 4 && args[3] != "-" {
		file, ferr := os.Create(args[3])
		if ferr != nil {
			return fmt.Errorf("output: %w", ferr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("output: %w", cerr)
			}
		}()
		out = file
	}
	tw := trace.NewWriter(out, trace.WithColor(useColor(cfg.Color, out)))
	rep.Reporter = tw

	outcomes, err := nav.Run(sc.Objectives)
	if err != nil {
		return err
	}
	if err := tw.Err(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	logger.Info("scenario finished",
		"objectives", len(outcomes), "reached", nav.ObjectivesReached(),
		"revealed", nav.RevealedCount(), "overrides", nav.Overrides().Types())

	return nil
}

// deferredReporter forwards events to a Reporter attached after the
// navigator is built. The navigator emits nothing during construction.
type deferredReporter struct {
	navigator.Reporter
}

func loadGrid(nodesPath, edgesPath string) (*gridgraph.GridGraph, error) {
	nodes, err := os.Open(nodesPath)
	if err != nil {
		return nil, err
	}
	defer nodes.Close()
	edges, err := os.Open(edgesPath)
	if err != nil {
		return nil, err
	}
	defer edges.Close()

	grid, err := loader.ReadGrid(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%s, %s: %w", nodesPath, edgesPath, err)
	}

	return grid, nil
}

func loadScenario(path string) (loader.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return loader.Scenario{}, err
	}
	defer f.Close()

	sc, err := loader.ReadObjectives(f)
	if err != nil {
		return sc, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// useColor resolves the colour mode; auto colours only a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
