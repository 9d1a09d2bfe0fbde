// Package report renders solver results for humans.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// Graph prints one line per vertex listing its outgoing edges in insertion
// order:
//
//	v : v-(w)->to  v-(w)->to
func Graph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for v := 0; v < g.VertexCount(); v++ {
		fmt.Fprintf(bw, "%d :", v)
		for _, e := range g.EdgesFrom(v) {
			fmt.Fprintf(bw, " %d-(%d)->%d", e.From, e.Weight, e.To)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Write prints a "Source: s" header followed by one line per vertex:
//
//	s-(d)->v : s ... v
//
// Unreachable vertices print "s-(inf)->v : unreachable". s must have
// completed a Run over a graph with vertexCount vertices.
func Write(w io.Writer, s dijkstra.Solver, vertexCount int) error {
	bw := bufio.NewWriter(w)
	src := s.Source()
	fmt.Fprintf(bw, "Source: %d\n", src)

	var sb strings.Builder
	for v := 0; v < vertexCount; v++ {
		d, ok := s.DistanceTo(v)
		if !ok {
			fmt.Fprintf(bw, "%d-(inf)->%d : unreachable\n", src, v)
			continue
		}
		sb.Reset()
		for i, x := range s.PathTo(v) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		fmt.Fprintf(bw, "%d-(%d)->%d : %s\n", src, d, v, sb.String())
	}

	return bw.Flush()
}

// Elapsed prints "Time (label): seconds" with microsecond resolution.
func Elapsed(w io.Writer, label string, d time.Duration) error {
	_, err := fmt.Fprintf(w, "Time (%s): %.6fs\n", label, d.Seconds())
	return err
}

// Summary prints the reachable count and solver counters on one line.
func Summary(w io.Writer, label string, s dijkstra.Solver, vertexCount int) error {
	reachable := 0
	for v := 0; v < vertexCount; v++ {
		if s.HasPathTo(v) {
			reachable++
		}
	}
	st := s.Stats()
	_, err := fmt.Fprintf(w, "%s: source=%d reachable=%d/%d pops=%d stale=%d relaxations=%d improvements=%d\n",
		label, s.Source(), reachable, vertexCount, st.Pops, st.StaleSkips, st.Relaxations, st.Improvements)
	return err
}
