// Package dijkstra_test contains unit tests for both solvers: validation,
// the reference scenarios, thresholds, lifecycle and re-runs.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solverFactory builds a solver under test; every test runs against all of them.
type solverFactory struct {
	name string
	new  func(g *core.Graph, opts ...dijkstra.Option) (dijkstra.Solver, error)
}

func factories() []solverFactory {
	return []solverFactory{
		{"sequential", func(g *core.Graph, opts ...dijkstra.Option) (dijkstra.Solver, error) {
			return dijkstra.NewSequential(g, opts...)
		}},
		{"concurrent-1", func(g *core.Graph, opts ...dijkstra.Option) (dijkstra.Solver, error) {
			return dijkstra.NewConcurrent(g, append(opts, dijkstra.WithWorkers(1))...)
		}},
		{"concurrent-4", func(g *core.Graph, opts ...dijkstra.Option) (dijkstra.Solver, error) {
			return dijkstra.NewConcurrent(g, append(opts, dijkstra.WithWorkers(4))...)
		}},
		{"concurrent-16", func(g *core.Graph, opts ...dijkstra.Option) (dijkstra.Solver, error) {
			return dijkstra.NewConcurrent(g, append(opts, dijkstra.WithWorkers(16))...)
		}},
	}
}

// mustGraph builds a graph with v vertices from (u, v, w) triples.
func mustGraph(t *testing.T, v int, edges ...[3]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph(v, core.WithEdgeCapacity(len(edges)))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	g.Freeze()

	return g
}

// referenceGraph is V=4, E=5: (0,1,1) (0,2,4) (1,2,1) (1,3,5) (2,3,1).
func referenceGraph(t *testing.T) *core.Graph {
	return mustGraph(t, 4,
		[3]int64{0, 1, 1}, [3]int64{0, 2, 4}, [3]int64{1, 2, 1}, [3]int64{1, 3, 5}, [3]int64{2, 3, 1})
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			_, err := f.new(nil)
			require.ErrorIs(t, err, dijkstra.ErrNilGraph)
		})
	}
	_, _, err := dijkstra.ShortestPaths(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestRun_SourceOutOfRange(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(referenceGraph(t))
			require.NoError(t, err)
			for _, src := range []int{-1, 4, 100} {
				err = s.Run(src)
				require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
				require.ErrorIs(t, err, core.ErrPreconditionViolation)
			}
		})
	}
}

func TestQueryBeforeRun_Panics(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(referenceGraph(t))
			require.NoError(t, err)
			require.PanicsWithValue(t, dijkstra.ErrQueryBeforeRun, func() { s.DistanceTo(0) })
			require.PanicsWithValue(t, dijkstra.ErrQueryBeforeRun, func() { s.PathTo(0) })
			require.PanicsWithValue(t, dijkstra.ErrQueryBeforeRun, func() { s.Distances() })
			require.PanicsWithValue(t, dijkstra.ErrQueryBeforeRun, func() { s.Stats() })

			// A rejected Run does not complete the lifecycle either.
			require.Error(t, s.Run(-1))
			require.Panics(t, func() { s.HasPathTo(1) })
		})
	}
}

func TestQuery_VertexOutOfRange_Panics(t *testing.T) {
	s, err := dijkstra.NewSequential(referenceGraph(t))
	require.NoError(t, err)
	require.NoError(t, s.Run(0))
	require.Panics(t, func() { s.DistanceTo(4) })
	require.Panics(t, func() { s.PathTo(-1) })
}

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadWorkers.Error(), func() { dijkstra.WithWorkers(0) })
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	require.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestNew_FreezesGraph(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 1))
	_, err := dijkstra.NewSequential(g)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(1, 0, 1), core.ErrGraphFrozen)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestReferenceGraph(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(referenceGraph(t))
			require.NoError(t, err)
			require.NoError(t, s.Run(0))

			require.Equal(t, []int64{0, 1, 2, 3}, s.Distances())
			require.Equal(t, []int{dijkstra.NoVertex, 0, 1, 2}, s.Predecessors())
			require.Equal(t, []int{0, 1, 2, 3}, s.PathTo(3))
			require.Equal(t, []int{0}, s.PathTo(0))
			require.Equal(t, 0, s.Source())

			d, ok := s.DistanceTo(3)
			require.True(t, ok)
			require.Equal(t, int64(3), d)
		})
	}
}

func TestDisconnectedVertex(t *testing.T) {
	g := mustGraph(t, 5,
		[3]int64{0, 1, 1}, [3]int64{0, 2, 4}, [3]int64{1, 2, 1}, [3]int64{1, 3, 5}, [3]int64{2, 3, 1})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g)
			require.NoError(t, err)
			require.NoError(t, s.Run(0))

			d, ok := s.DistanceTo(4)
			require.False(t, ok)
			require.Equal(t, dijkstra.Infinity, d)
			require.False(t, s.HasPathTo(4))
			require.Nil(t, s.PathTo(4))
			require.Equal(t, dijkstra.NoVertex, s.Predecessors()[4])
		})
	}
}

func TestDirectionMatters(t *testing.T) {
	// 1 can reach 0, but 0 cannot reach 1.
	g := mustGraph(t, 2, [3]int64{1, 0, 3})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g)
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			require.False(t, s.HasPathTo(1))

			require.NoError(t, s.Run(1))
			require.Equal(t, []int{1, 0}, s.PathTo(0))
		})
	}
}

func TestSingleVertexAndSelfLoop(t *testing.T) {
	g := mustGraph(t, 1, [3]int64{0, 0, 0}, [3]int64{0, 0, 7})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g)
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			require.Equal(t, []int64{0}, s.Distances())
			require.Equal(t, []int{0}, s.PathTo(0))
		})
	}
}

func TestZeroWeightEdges(t *testing.T) {
	// 0 -0-> 1 -0-> 2, and a costlier shortcut 0 -1-> 2.
	g := mustGraph(t, 3, [3]int64{0, 2, 1}, [3]int64{0, 1, 0}, [3]int64{1, 2, 0})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g)
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			require.Equal(t, []int64{0, 0, 0}, s.Distances())
			require.Equal(t, []int{0, 1, 2}, s.PathTo(2))
		})
	}
}

func TestEqualCostTieKeepsFirstFound(t *testing.T) {
	// Two shortest paths to 3 of cost 2: 0→1→3 and 0→2→3. Vertex 1 pops first
	// (lower id on equal distance) and its strict improvement sticks.
	g := mustGraph(t, 4, [3]int64{0, 2, 1}, [3]int64{0, 1, 1}, [3]int64{2, 3, 1}, [3]int64{1, 3, 1})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g)
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			require.Equal(t, []int{0, 1, 3}, s.PathTo(3))
		})
	}
}

func TestHugeWeightsDoNotOverflow(t *testing.T) {
	big := dijkstra.Infinity - 1
	g := mustGraph(t, 3, [3]int64{0, 1, big}, [3]int64{1, 2, big})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g)
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			d, ok := s.DistanceTo(1)
			require.True(t, ok)
			require.Equal(t, big, d)
			require.False(t, s.HasPathTo(2), "sum past the int64 range is unreachable")
		})
	}
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestMaxDistance(t *testing.T) {
	// Chain 0→1→2→3, weight 1 each.
	g := mustGraph(t, 4, [3]int64{0, 1, 1}, [3]int64{1, 2, 1}, [3]int64{2, 3, 1})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g, dijkstra.WithMaxDistance(1))
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			require.Equal(t, []int64{0, 1, dijkstra.Infinity, dijkstra.Infinity}, s.Distances())

			z, err := f.new(g, dijkstra.WithMaxDistance(0))
			require.NoError(t, err)
			require.NoError(t, z.Run(0))
			require.Equal(t, []int64{0, dijkstra.Infinity, dijkstra.Infinity, dijkstra.Infinity}, z.Distances())
		})
	}
}

func TestInfEdgeThreshold(t *testing.T) {
	// Threshold 5: 0→2 (1) stays usable, 2→3 (5) becomes a wall.
	g := mustGraph(t, 4, [3]int64{0, 1, 2}, [3]int64{1, 2, 4}, [3]int64{0, 2, 1}, [3]int64{2, 3, 5})
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(g, dijkstra.WithInfEdgeThreshold(5))
			require.NoError(t, err)
			require.NoError(t, s.Run(0))
			assert.Equal(t, []int64{0, 2, 1, dijkstra.Infinity}, s.Distances())
		})
	}
}

// ------------------------------------------------------------------------
// 4. Lifecycle
// ------------------------------------------------------------------------

func TestRun_Idempotent(t *testing.T) {
	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			s, err := f.new(referenceGraph(t))
			require.NoError(t, err)

			require.NoError(t, s.Run(0))
			firstD, firstP, firstS := s.Distances(), s.Predecessors(), s.Stats()

			require.NoError(t, s.Run(2))
			require.Equal(t, []int64{dijkstra.Infinity, dijkstra.Infinity, 0, 1}, s.Distances())

			require.NoError(t, s.Run(0))
			require.Equal(t, firstD, s.Distances())
			require.Equal(t, firstP, s.Predecessors())
			require.Equal(t, firstS, s.Stats())
		})
	}
}

func TestRun_RejectedSourceKeepsPreviousResult(t *testing.T) {
	s, err := dijkstra.NewSequential(referenceGraph(t))
	require.NoError(t, err)
	require.NoError(t, s.Run(1))
	require.Error(t, s.Run(9))
	require.Equal(t, 1, s.Source())
	require.Equal(t, []int{1, 2, 3}, s.PathTo(3))
}

func TestResultsAreCopies(t *testing.T) {
	s, err := dijkstra.NewSequential(referenceGraph(t))
	require.NoError(t, err)
	require.NoError(t, s.Run(0))
	d := s.Distances()
	d[3] = 99
	p := s.Predecessors()
	p[3] = 0
	require.Equal(t, []int{0, 1, 2, 3}, s.PathTo(3))
}

func TestStats_Sequential(t *testing.T) {
	s, err := dijkstra.NewSequential(referenceGraph(t))
	require.NoError(t, err)
	require.NoError(t, s.Run(0))

	// Pushes: 0, 1@1, 2@4, 2@2, 3@6, 3@3. Entries 2@4 and 3@6 go stale.
	st := s.Stats()
	assert.Equal(t, 6, st.Pushes)
	assert.Equal(t, 5, st.Improvements)
	assert.Equal(t, 5, st.Relaxations)
	assert.Equal(t, 4, st.Rounds)
	assert.Equal(t, 6, st.Pops)
	assert.Equal(t, 2, st.StaleSkips)
}

func TestShortestPathsAndNew(t *testing.T) {
	dist, prev, err := dijkstra.ShortestPaths(referenceGraph(t), 0, dijkstra.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3}, dist)
	require.Equal(t, []int{dijkstra.NoVertex, 0, 1, 2}, prev)

	_, _, err = dijkstra.ShortestPaths(referenceGraph(t), 7)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	s, err := dijkstra.New(referenceGraph(t))
	require.NoError(t, err)
	require.IsType(t, &dijkstra.Sequential{}, s)

	c, err := dijkstra.New(referenceGraph(t), dijkstra.WithWorkers(3))
	require.NoError(t, err)
	require.IsType(t, &dijkstra.Concurrent{}, c)
	require.Equal(t, 3, c.(*dijkstra.Concurrent).Workers())
}
