package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sssp/core"
)

// phase is the solver lifecycle: Unrun → Running → Done.
type phase uint8

const (
	phaseUnrun phase = iota
	phaseRunning
	phaseDone
)

// state is the per-solver arena shared by Sequential and Concurrent.
// distTo and edgeTo are sized V once and reset by every Run.
type state struct {
	g       *core.Graph
	options Options
	log     *slog.Logger

	distTo []int64
	edgeTo []int
	pq     nodePQ

	source int
	phase  phase
	stats  Stats
}

func newState(g *core.Graph, opts []Option) (state, error) {
	if g == nil {
		return state{}, ErrNilGraph
	}
	g.Freeze()
	cfg := resolveOptions(opts)
	n := g.VertexCount()

	return state{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		distTo:  make([]int64, n),
		edgeTo:  make([]int, n),
		pq:      make(nodePQ, 0, n),
		source:  NoVertex,
		phase:   phaseUnrun,
	}, nil
}

// begin validates source, resets the arena and seeds the heap with source.
// On error the previous result, if any, is left untouched.
func (s *state) begin(source int, solver string) error {
	if !s.g.HasVertex(source) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, s.g.VertexCount())
	}

	s.phase = phaseRunning
	s.source = source
	s.stats = Stats{}
	for v := range s.distTo {
		s.distTo[v] = Infinity
		s.edgeTo[v] = NoVertex
	}
	s.distTo[source] = 0

	s.pq = s.pq[:0]
	heap.Init(&s.pq)
	s.push(source, 0)

	s.log.Debug("dijkstra run started",
		"solver", solver, "source", source,
		"vertices", s.g.VertexCount(), "edges", s.g.EdgeCount())

	return nil
}

// finish moves the solver to Done and logs the counters.
func (s *state) finish(solver string) {
	s.pq = s.pq[:0]
	s.phase = phaseDone
	s.log.Debug("dijkstra run finished",
		"solver", solver, "source", s.source,
		"pops", s.stats.Pops, "stale", s.stats.StaleSkips,
		"rounds", s.stats.Rounds, "relaxations", s.stats.Relaxations,
		"improvements", s.stats.Improvements, "pushes", s.stats.Pushes)
}

func (s *state) push(v int, d int64) {
	heap.Push(&s.pq, nodeItem{id: v, dist: d})
	s.stats.Pushes++
}

// pop returns the next live entry, skipping stale ones.
// ok is false once the heap is exhausted.
func (s *state) pop() (item nodeItem, ok bool) {
	for s.pq.Len() > 0 {
		item = heap.Pop(&s.pq).(nodeItem)
		s.stats.Pops++
		if item.dist != s.distTo[item.id] {
			s.stats.StaleSkips++
			continue
		}

		return item, true
	}

	return nodeItem{}, false
}

// candidate returns d+e.Weight if the edge may be relaxed at all.
// Edges at or above InfEdgeThreshold, sums that overflow and sums beyond
// MaxDistance are rejected.
func (s *state) candidate(d int64, e core.Edge) (int64, bool) {
	w := e.Weight
	if w >= s.options.InfEdgeThreshold {
		return 0, false
	}
	if w > Infinity-1-d {
		return 0, false
	}
	nd := d + w
	if nd > s.options.MaxDistance {
		return 0, false
	}

	return nd, true
}

func (s *state) mustBeDone() {
	if s.phase != phaseDone {
		panic(ErrQueryBeforeRun)
	}
}

func (s *state) mustHaveVertex(v int) {
	if !s.g.HasVertex(v) {
		panic(fmt.Errorf("%w: query %d not in [0,%d)", core.ErrVertexOutOfRange, v, s.g.VertexCount()))
	}
}

// Source returns the source of the last completed Run.
func (s *state) Source() int {
	s.mustBeDone()

	return s.source
}

// DistanceTo returns the shortest distance from the source to v and true, or
// (Infinity, false) if v is unreachable.
func (s *state) DistanceTo(v int) (int64, bool) {
	s.mustBeDone()
	s.mustHaveVertex(v)
	d := s.distTo[v]

	return d, d != Infinity
}

// HasPathTo reports whether v is reachable from the source.
func (s *state) HasPathTo(v int) bool {
	_, ok := s.DistanceTo(v)

	return ok
}

// PathTo walks edgeTo back from v to the source and returns the path in
// source→v order. Unreachable vertices yield nil, never a partial path.
// Complexity: O(path length).
func (s *state) PathTo(v int) []int {
	if !s.HasPathTo(v) {
		return nil
	}
	var path []int
	for x := v; x != NoVertex; x = s.edgeTo[x] {
		path = append(path, x)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Distances returns a copy of distTo.
func (s *state) Distances() []int64 {
	s.mustBeDone()

	return append([]int64(nil), s.distTo...)
}

// Predecessors returns a copy of edgeTo.
func (s *state) Predecessors() []int {
	s.mustBeDone()

	return append([]int(nil), s.edgeTo...)
}

// Stats returns the counters of the last completed Run.
func (s *state) Stats() Stats {
	s.mustBeDone()

	return s.stats
}
