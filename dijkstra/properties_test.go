package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/stretchr/testify/require"
)

// checkShortestPathCertificate asserts the optimality certificate of a
// completed run:
//   - distanceTo(source) == 0;
//   - every reachable v ≠ source satisfies dist[v] == dist[prev[v]] + w for
//     some edge prev[v]→v;
//   - no edge (u,v,w) with u reachable has dist[v] > dist[u] + w;
//   - PathTo(v) starts at the source, ends at v and follows real edges.
func checkShortestPathCertificate(t *testing.T, g *core.Graph, s dijkstra.Solver, source int) {
	t.Helper()
	dist, prev := s.Distances(), s.Predecessors()

	require.Equal(t, int64(0), dist[source])
	require.Equal(t, dijkstra.NoVertex, prev[source])

	for v := 0; v < g.VertexCount(); v++ {
		if v == source {
			continue
		}
		if dist[v] == dijkstra.Infinity {
			require.Equal(t, dijkstra.NoVertex, prev[v], "unreachable %d must have no predecessor", v)
			require.Nil(t, s.PathTo(v))
			continue
		}
		u := prev[v]
		require.NotEqual(t, dijkstra.NoVertex, u, "reachable %d needs a predecessor", v)
		found := false
		for _, e := range g.EdgesFrom(u) {
			if e.To == v && dist[u]+e.Weight == dist[v] {
				found = true
				break
			}
		}
		require.True(t, found, "no tight edge %d→%d", u, v)

		path := s.PathTo(v)
		require.Equal(t, source, path[0])
		require.Equal(t, v, path[len(path)-1])
	}

	for _, e := range g.Edges() {
		if dist[e.From] == dijkstra.Infinity {
			continue
		}
		require.LessOrEqual(t, dist[e.To], dist[e.From]+e.Weight,
			"edge %d→%d (w=%d) still has negative slack", e.From, e.To, e.Weight)
	}
}

func TestShortestPathCertificate(t *testing.T) {
	graphs := map[string]*core.Graph{
		"reference": referenceGraph(t),
		"random-a":  randomGraph(t, 150, 0.04, 20, 11),
		"random-b":  randomGraph(t, 40, 0.3, 1, 12),
		"random-c":  randomGraph(t, 300, 0.01, 500, 13),
	}
	for name, g := range graphs {
		for _, f := range factories() {
			for _, src := range []int{0, g.VertexCount() / 2} {
				t.Run(fmt.Sprintf("%s/%s/src=%d", name, f.name, src), func(t *testing.T) {
					s, err := f.new(g)
					require.NoError(t, err)
					require.NoError(t, s.Run(src))
					checkShortestPathCertificate(t, g, s, src)
				})
			}
		}
	}
}
