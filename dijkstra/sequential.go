package dijkstra

import "github.com/katalvlaran/sssp/core"

const sequentialName = "sequential"

// Sequential is the classic single-goroutine Dijkstra solver.
// It is not safe for concurrent use; run one solver per goroutine.
type Sequential struct {
	state
}

// NewSequential allocates a solver over g and freezes g.
func NewSequential(g *core.Graph, opts ...Option) (*Sequential, error) {
	st, err := newState(g, opts)
	if err != nil {
		return nil, err
	}

	return &Sequential{state: st}, nil
}

// Run computes shortest paths from source.
//
// Steps:
//  1. distTo = ∞, edgeTo = NoVertex, distTo[source] = 0, heap = {source}.
//  2. Pop the nearest live entry v (stale entries are skipped).
//  3. Relax every edge (v,to,w): if distTo[v]+w < distTo[to], install the pair
//     and push (to, distTo[to]).
//  4. Stop when the heap is empty.
func (s *Sequential) Run(source int) error {
	if err := s.begin(source, sequentialName); err != nil {
		return err
	}

	for {
		item, ok := s.pop()
		if !ok {
			break
		}
		s.stats.Rounds++
		s.relax(item.id, item.dist)
	}

	s.finish(sequentialName)

	return nil
}

// relax relaxes every outgoing edge of u, whose distance d is final.
func (s *Sequential) relax(u int, d int64) {
	for _, e := range s.g.EdgesFrom(u) {
		nd, ok := s.candidate(d, e)
		if !ok {
			continue
		}
		s.stats.Relaxations++
		// Strict "<" keeps equal-cost alternatives from re-entering the heap.
		if nd >= s.distTo[e.To] {
			continue
		}
		s.distTo[e.To] = nd
		s.edgeTo[e.To] = u
		s.stats.Improvements++
		s.push(e.To, nd)
	}
}
