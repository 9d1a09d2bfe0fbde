package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sssp/core"
)

// Write serializes g in the format Load reads: a "V E" header, then one
// "u v w" line per edge in core.Graph.Edges order.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("graphio: write edge %d→%d: %w", e.From, e.To, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: flush: %w", err)
	}

	return nil
}
