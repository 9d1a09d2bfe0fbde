package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sssp/internal/config"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes the arguments of a solve. It returns the resolved Config, a
// boolean telling the caller to exit cleanly (help requested, or no graph path
// given), or an *ExitError with code 2 for invalid usage.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sssp", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sssp - single-source shortest paths, sequential or with parallel relaxation.

Usage:
  sssp [options] GRAPH_PATH
  sssp gen [options]

Arguments:
  GRAPH_PATH
    Edge-list file: "V E" then E lines "u v w".
    A file literally named "gen" must be given as ./gen.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL run configuration file.")
	modeFlag := flagSet.String("mode", def.Mode, "Solver: 'sequential', 'concurrent' or 'both'.")
	workersFlag := flagSet.Int("workers", def.Workers, "Relax workers for the concurrent solver.")
	sourceFlag := flagSet.Int("source", def.Source, "Source vertex id.")
	maxDistFlag := flagSet.Int64("max-distance", def.MaxDistance, "Leave vertices farther than this unreachable (-1 disables).")
	infFlag := flagSet.Int64("inf-edge-threshold", def.InfEdgeThreshold, "Treat edges with weight ≥ this as impassable (0 disables).")
	printFlag := flagSet.Bool("print", false, "Print distance and path for every vertex.")
	showGraphFlag := flagSet.Bool("show-graph", false, "Print the adjacency list of every vertex before solving.")
	timeFlag := flagSet.Bool("time", false, "Report elapsed solve time.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")
	metricsFlag := flagSet.String("metrics-out", "", "Write solver metrics in Prometheus text format to this file.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No graph path provided, nothing to do.")
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one graph path, got %d arguments", flagSet.NArg())}
	}

	cfg := def
	cfg.GraphPath = flagSet.Arg(0)

	if *configFlag != "" {
		file, err := config.DecodeFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		file.Apply(&cfg)
		slog.Debug("Configuration file applied.", "path", *configFlag)
	}

	// Flags set explicitly override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = strings.ToLower(*modeFlag)
		case "workers":
			cfg.Workers = *workersFlag
		case "source":
			cfg.Source = *sourceFlag
		case "max-distance":
			cfg.MaxDistance = *maxDistFlag
		case "inf-edge-threshold":
			cfg.InfEdgeThreshold = *infFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "metrics-out":
			cfg.MetricsPath = *metricsFlag
		}
	})
	cfg.Print = *printFlag
	cfg.ShowGraph = *showGraphFlag
	cfg.Time = *timeFlag

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
