package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/internal/report"
)

func solved(t *testing.T) (*dijkstra.Sequential, int) {
	t.Helper()
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))
	s, err := dijkstra.NewSequential(g)
	require.NoError(t, err)
	require.NoError(t, s.Run(0))
	return s, g.VertexCount()
}

func TestWrite(t *testing.T) {
	s, n := solved(t)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, s, n))

	want := "Source: 0\n" +
		"0-(0)->0 : 0\n" +
		"0-(1)->1 : 0 1\n" +
		"0-(2)->2 : 0 1 2\n" +
		"0-(3)->3 : 0 1 2 3\n" +
		"0-(inf)->4 : unreachable\n"
	assert.Equal(t, want, buf.String())
}

func TestElapsed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Elapsed(&buf, "sequential", 1500*time.Microsecond))
	assert.Equal(t, "Time (sequential): 0.001500s\n", buf.String())
}

func TestSummary(t *testing.T) {
	s, n := solved(t)
	var buf bytes.Buffer
	require.NoError(t, report.Summary(&buf, "sequential", s, n))
	assert.Contains(t, buf.String(), "sequential: source=0 reachable=4/5")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	s, n := solved(t)
	assert.Error(t, report.Write(failingWriter{}, s, n))
}

func TestGraph(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 2))

	var buf bytes.Buffer
	require.NoError(t, report.Graph(&buf, g))
	assert.Equal(t, "0 : 0-(4)->1 0-(1)->2\n1 :\n2 : 2-(2)->1\n", buf.String())
}
