// Package metrics exports solver counters as Prometheus metrics. Each
// Recorder owns a private registry, so several runs in one process never
// collide on the default one.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// Recorder accumulates graph and solve metrics.
type Recorder struct {
	reg *prometheus.Registry

	vertices prometheus.Gauge
	edges    prometheus.Gauge

	solves       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	pops         *prometheus.CounterVec
	pushes       *prometheus.CounterVec
	staleSkips   *prometheus.CounterVec
	relaxations  *prometheus.CounterVec
	improvements *prometheus.CounterVec
	rounds       *prometheus.CounterVec
}

// New returns a Recorder with every metric registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		vertices: f.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_graph_vertices",
			Help: "Vertices in the loaded graph",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_graph_edges",
			Help: "Edges in the loaded graph",
		}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_solves_total",
			Help: "Completed solver runs",
		}, []string{"solver"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sssp_solve_duration_seconds",
			Help:    "Wall time of one solver run",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"solver"}),
		pops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_frontier_pops_total",
			Help: "Entries popped from the frontier, stale ones included",
		}, []string{"solver"}),
		pushes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_frontier_pushes_total",
			Help: "Entries pushed onto the frontier, the source included",
		}, []string{"solver"}),
		staleSkips: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_frontier_stale_total",
			Help: "Popped entries discarded as stale",
		}, []string{"solver"}),
		relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_relaxations_total",
			Help: "Candidate distances compared against the tentative one",
		}, []string{"solver"}),
		improvements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_improvements_total",
			Help: "Relaxations that lowered a tentative distance",
		}, []string{"solver"}),
		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_rounds_total",
			Help: "Vertices settled, one relaxation round each",
		}, []string{"solver"}),
	}
}

// ObserveGraph records the size of g.
func (r *Recorder) ObserveGraph(g *core.Graph) {
	r.vertices.Set(float64(g.VertexCount()))
	r.edges.Set(float64(g.EdgeCount()))
}

// ObserveSolve records one completed run of the named solver.
func (r *Recorder) ObserveSolve(solver string, elapsed time.Duration, st dijkstra.Stats) {
	r.solves.WithLabelValues(solver).Inc()
	r.duration.WithLabelValues(solver).Observe(elapsed.Seconds())
	r.pops.WithLabelValues(solver).Add(float64(st.Pops))
	r.pushes.WithLabelValues(solver).Add(float64(st.Pushes))
	r.staleSkips.WithLabelValues(solver).Add(float64(st.StaleSkips))
	r.relaxations.WithLabelValues(solver).Add(float64(st.Relaxations))
	r.improvements.WithLabelValues(solver).Add(float64(st.Improvements))
	r.rounds.WithLabelValues(solver).Add(float64(st.Rounds))
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteText writes every metric in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.Registry().Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
