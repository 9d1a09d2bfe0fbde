package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sssp/internal/config"
)

// ParseGen processes the arguments following `gen`. Its return contract
// matches Parse.
func ParseGen(args []string, output io.Writer) (*config.GenConfig, bool, error) {
	flagSet := flag.NewFlagSet("sssp gen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
sssp gen - write a fixture graph in the edge-list format.

Usage:
  sssp gen [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.DefaultGen()
	kind := flagSet.String("kind", def.Kind, "Topology: random, grid, path, star, cycle or complete.")
	n := flagSet.Int("n", def.N, "Vertex count (grid: side length).")
	p := flagSet.Float64("p", def.P, "Edge probability for -kind random.")
	seed := flagSet.Int64("seed", def.Seed, "RNG seed.")
	minW := flagSet.Int64("min-weight", def.MinWeight, "Smallest edge weight.")
	maxW := flagSet.Int64("max-weight", def.MaxWeight, "Largest edge weight.")
	both := flagSet.Bool("bidirectional", false, "Emit the reverse arc of every edge.")
	out := flagSet.String("o", "", "Output file; stdout when empty.")
	logLevel := flagSet.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("gen takes no arguments, got %q", flagSet.Args())}
	}

	cfg := &config.GenConfig{
		Kind:      strings.ToLower(*kind),
		N:         *n,
		P:         *p,
		Seed:      *seed,
		MinWeight: *minW,
		MaxWeight: *maxW,
		Both:      *both,
		Out:       *out,
		LogLevel:  strings.ToLower(*logLevel),
		LogFormat: strings.ToLower(*logFormat),
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
