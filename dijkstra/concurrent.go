package dijkstra

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/internal/parallel"
)

const concurrentName = "concurrent"

// Concurrent runs Dijkstra with a parallel relax step: the edges of every
// popped vertex are split across a fixed worker pool, relaxed concurrently
// with a per-destination compare-and-update, and joined before the next pop.
//
// A Concurrent is not safe for concurrent Run calls; the parallelism is
// internal to one Run.
type Concurrent struct {
	state

	workers int
	locks   []sync.Mutex // locks[v] guards the pair (distTo[v], edgeTo[v]) during a round
	wins    [][]int      // wins[w]: vertices worker w improved this round
	tallies []tally      // tallies[w]: counters of worker w this round
	mark    []int        // mark[v] == round once v was pushed in that round
	round   int
}

// tally is a worker-private counter block, merged after the join.
type tally struct {
	relaxations  int
	improvements int
}

// NewConcurrent allocates a solver over g and freezes g. The pool size comes
// from WithWorkers, defaulting to runtime.GOMAXPROCS(0).
func NewConcurrent(g *core.Graph, opts ...Option) (*Concurrent, error) {
	st, err := newState(g, opts)
	if err != nil {
		return nil, err
	}
	workers := st.options.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := g.VertexCount()

	return &Concurrent{
		state:   st,
		workers: workers,
		locks:   make([]sync.Mutex, n),
		wins:    make([][]int, workers),
		tallies: make([]tally, workers),
		mark:    make([]int, n),
	}, nil
}

// Workers returns the fixed size of the relax pool.
func (c *Concurrent) Workers() int { return c.workers }

// Run computes shortest paths from source. The outer pop/merge loop is the
// same as Sequential.Run; only the relax step of each popped vertex fans out.
func (c *Concurrent) Run(source int) error {
	if err := c.begin(source, concurrentName); err != nil {
		return err
	}
	for i := range c.mark {
		c.mark[i] = 0
	}
	c.round = 0

	for {
		item, ok := c.pop()
		if !ok {
			break
		}
		c.stats.Rounds++
		c.relaxRound(item.id, item.dist)
		c.merge()
	}

	c.finish(concurrentName)

	return nil
}

// relaxRound relaxes the edges of u in parallel and returns after every worker
// has finished. d is the final distance of u, captured before the fan-out so
// workers never read distTo[u] without its lock.
func (c *Concurrent) relaxRound(u int, d int64) {
	edges := c.g.EdgesFrom(u)
	parallel.ForEachChunk(len(edges), c.workers, func(w int, r parallel.Range) {
		won := c.wins[w][:0]
		var t tally
		for _, e := range edges[r.Lo:r.Hi] {
			nd, ok := c.candidate(d, e)
			if !ok {
				continue
			}
			t.relaxations++
			if c.tryRelax(u, e.To, nd) {
				t.improvements++
				won = append(won, e.To)
			}
		}
		c.wins[w] = won
		c.tallies[w] = t
	})
}

// tryRelax installs (nd, from) at to iff nd is strictly below the distance
// visible under to's lock. It reports whether this call won.
func (c *Concurrent) tryRelax(from, to int, nd int64) bool {
	mu := &c.locks[to]
	mu.Lock()
	defer mu.Unlock()

	if nd >= c.distTo[to] {
		return false
	}
	c.distTo[to] = nd
	c.edgeTo[to] = from

	return true
}

// merge pushes every vertex improved in the finished round exactly once, with
// its final distance, and clears the per-worker buffers. Runs on the outer
// loop goroutine only.
func (c *Concurrent) merge() {
	c.round++
	for w := range c.wins {
		for _, v := range c.wins[w] {
			if c.mark[v] == c.round {
				continue
			}
			c.mark[v] = c.round
			c.push(v, c.distTo[v])
		}
		c.wins[w] = c.wins[w][:0]

		c.stats.Relaxations += c.tallies[w].relaxations
		c.stats.Improvements += c.tallies[w].improvements
		c.tallies[w] = tally{}
	}
}
