package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/graphio"
	"github.com/katalvlaran/sssp/internal/config"
	"github.com/katalvlaran/sssp/internal/ctxlog"
	"github.com/katalvlaran/sssp/internal/metrics"
	"github.com/katalvlaran/sssp/internal/report"
)

// ErrSolversDisagree is returned in mode "both" when the two solvers
// produce different distances.
var ErrSolversDisagree = errors.New("app: sequential and concurrent distances differ")

// App runs one solve described by a config.Config.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    config.Config
	rec    *metrics.Recorder
}

// New returns an App that writes reports to outW and logs to logW.
func New(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{outW: outW, logger: logger, cfg: *cfg, rec: metrics.New()}
}

type outcome struct {
	name    string
	solver  dijkstra.Solver
	elapsed time.Duration
}

// Run loads the graph, solves it with every solver the mode selects and
// writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g, err := graphio.LoadFile(a.cfg.GraphPath)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	a.logger.Info("Graph loaded.", "path", a.cfg.GraphPath, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	a.rec.ObserveGraph(g)
	if a.cfg.ShowGraph {
		if err := report.Graph(a.outW, g); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
	}

	var results []outcome
	for _, name := range a.solverNames() {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := a.solve(ctx, name, g)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	if len(results) == 2 {
		if diff := cmp.Diff(results[0].solver.Distances(), results[1].solver.Distances()); diff != "" {
			return fmt.Errorf("%w (-%s +%s):\n%s", ErrSolversDisagree, results[0].name, results[1].name, diff)
		}
		a.logger.Info("Solvers agree.", "vertices", g.VertexCount())
	}

	if err := a.render(g, results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if a.cfg.MetricsPath != "" {
		if err := a.writeMetrics(); err != nil {
			return err
		}
		a.logger.Debug("Metrics written.", "path", a.cfg.MetricsPath)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) solverNames() []string {
	switch a.cfg.Mode {
	case config.ModeSequential:
		return []string{config.ModeSequential}
	case config.ModeBoth:
		return []string{config.ModeSequential, config.ModeConcurrent}
	default:
		return []string{config.ModeConcurrent}
	}
}

func (a *App) options() []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithLogger(a.logger)}
	if a.cfg.MaxDistance >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(a.cfg.MaxDistance))
	}
	if a.cfg.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(a.cfg.InfEdgeThreshold))
	}

	return opts
}

func (a *App) solve(ctx context.Context, name string, g *core.Graph) (outcome, error) {
	log := ctxlog.FromContext(ctx).With("solver", name)

	var (
		s   dijkstra.Solver
		err error
	)
	if name == config.ModeSequential {
		s, err = dijkstra.NewSequential(g, a.options()...)
	} else {
		s, err = dijkstra.NewConcurrent(g, append(a.options(), dijkstra.WithWorkers(a.cfg.Workers))...)
	}
	if err != nil {
		return outcome{}, fmt.Errorf("%s: %w", name, err)
	}

	start := time.Now()
	if err := s.Run(a.cfg.Source); err != nil {
		return outcome{}, fmt.Errorf("%s: %w", name, err)
	}
	elapsed := time.Since(start)

	st := s.Stats()
	a.rec.ObserveSolve(name, elapsed, st)
	log.Info("Solve finished.", "source", a.cfg.Source, "elapsed", elapsed,
		"pops", st.Pops, "stale", st.StaleSkips, "relaxations", st.Relaxations)

	return outcome{name: name, solver: s, elapsed: elapsed}, nil
}

func (a *App) render(g *core.Graph, results []outcome) error {
	n := g.VertexCount()
	if a.cfg.Print {
		// Solvers agree by now; the last one stands for all.
		if err := report.Write(a.outW, results[len(results)-1].solver, n); err != nil {
			return err
		}
	}
	for _, r := range results {
		if !a.cfg.Print {
			if err := report.Summary(a.outW, r.name, r.solver, n); err != nil {
				return err
			}
		}
		if a.cfg.Time {
			if err := report.Elapsed(a.outW, r.name, r.elapsed); err != nil {
				return err
			}
		}
	}

	return nil
}

func (a *App) writeMetrics() error {
	f, err := os.Create(a.cfg.MetricsPath)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	if err := a.rec.WriteText(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
