package dijkstra

import "github.com/katalvlaran/sssp/core"

// New returns a Concurrent solver when WithWorkers asked for more than one
// worker and a Sequential solver otherwise.
func New(g *core.Graph, opts ...Option) (Solver, error) {
	if resolveOptions(opts).Workers > 1 {
		return NewConcurrent(g, opts...)
	}

	return NewSequential(g, opts...)
}

// ShortestPaths runs a single solve from source and returns copies of the
// distance and predecessor arrays. dist[v] == Infinity and prev[v] == NoVertex
// for unreachable v; prev[source] == NoVertex.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	s, err := New(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err = s.Run(source); err != nil {
		return nil, nil, err
	}

	return s.Distances(), s.Predecessors(), nil
}
