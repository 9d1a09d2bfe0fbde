package config

import (
	"errors"
	"fmt"
	"math"
)

// Fixture kinds accepted by GenConfig.Kind.
const (
	KindRandom   = "random"
	KindGrid     = "grid"
	KindPath     = "path"
	KindStar     = "star"
	KindCycle    = "cycle"
	KindComplete = "complete"
)

var (
	ErrInvalidKind    = errors.New("config: kind must be one of random, grid, path, star, cycle, complete")
	ErrInvalidSize    = errors.New("config: n must be at least 1")
	ErrInvalidWeights = errors.New("config: weights must satisfy 0 <= min-weight <= max-weight < 2^63-1")
	ErrInvalidProb    = errors.New("config: p must be in [0,1]")
)

// GenConfig describes one fixture graph to generate.
type GenConfig struct {
	Kind      string
	N         int     // vertices (grid: side length)
	P         float64 // edge probability for random
	Seed      int64
	MinWeight int64
	MaxWeight int64
	Both      bool   // emit reverse arcs too
	Out       string // output path, "" or "-" for stdout

	LogLevel  string
	LogFormat string
}

// DefaultGen returns the generator defaults.
func DefaultGen() GenConfig {
	return GenConfig{
		Kind:      KindRandom,
		N:         100,
		P:         0.05,
		Seed:      1,
		MinWeight: 0,
		MaxWeight: 100,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks every field and returns the first violation.
func (g *GenConfig) Validate() error {
	switch g.Kind {
	case KindRandom, KindGrid, KindPath, KindStar, KindCycle, KindComplete:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidKind, g.Kind)
	}
	if g.N < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, g.N)
	}
	if g.P < 0 || g.P > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidProb, g.P)
	}
	if g.MinWeight < 0 || g.MaxWeight < g.MinWeight || g.MaxWeight == math.MaxInt64 {
		return fmt.Errorf("%w: got [%d,%d]", ErrInvalidWeights, g.MinWeight, g.MaxWeight)
	}

	return nil
}
