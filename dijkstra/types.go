package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/sssp/core"
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// NoVertex is the predecessor of the source and of unreachable vertices.
const NoVertex = -1

// Sentinel errors returned (or panicked with) by the solvers.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a constructor.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates Run was called with a source outside [0, V).
	ErrSourceOutOfRange = fmt.Errorf("%w: source", core.ErrVertexOutOfRange)

	// ErrQueryBeforeRun is panicked when results are read before Run completed.
	ErrQueryBeforeRun = errors.New("dijkstra: query before run completed")

	// ErrBadWorkers indicates WithWorkers was given n < 1.
	ErrBadWorkers = errors.New("dijkstra: worker count must be at least 1")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates WithInfEdgeThreshold was given a value ≤ 0.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a solver.
//
// Workers          – relax pool size; 0 means runtime.GOMAXPROCS(0) for
// Concurrent and a Sequential solver for New.
// MaxDistance      – vertices whose distance would exceed it stay unreachable.
// InfEdgeThreshold – edges with weight ≥ threshold are skipped.
// Logger           – destination for Debug records; discarded by default.
type Options struct {
	Workers          int
	MaxDistance      int64
	InfEdgeThreshold int64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// WithWorkers fixes the number of relax workers used by Concurrent.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxDistance caps exploration: a vertex whose shortest distance would
// exceed max is reported unreachable. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics if threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes solver log records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults: no worker override, no distance cap,
// no impassable edges, discarded logs.
func DefaultOptions() Options {
	return Options{
		Workers:          0,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Stats counts the work done by the last Run.
type Stats struct {
	Pops         int // heap entries popped, stale ones included
	StaleSkips   int // popped entries skipped as stale
	Rounds       int // vertices whose edges were relaxed
	Relaxations  int // relax attempts (edges not filtered by thresholds)
	Improvements int // successful compare-and-update installs
	Pushes       int // heap insertions, the source included
}

// Solver is the query surface shared by Sequential and Concurrent.
type Solver interface {
	// Run computes shortest paths from source, discarding any previous result.
	Run(source int) error
	// Source returns the source of the last completed Run.
	Source() int
	// DistanceTo returns the shortest distance to v and whether v is reachable.
	DistanceTo(v int) (int64, bool)
	// HasPathTo reports whether v is reachable from the source.
	HasPathTo(v int) bool
	// PathTo returns the vertices from the source to v, or nil if unreachable.
	PathTo(v int) []int
	// Distances returns a copy of distTo.
	Distances() []int64
	// Predecessors returns a copy of edgeTo.
	Predecessors() []int
	// Stats returns counters of the last completed Run.
	Stats() Stats
}
