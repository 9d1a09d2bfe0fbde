// Package core_test verifies that a frozen Graph serves concurrent readers.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/sssp/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs many goroutines over EdgesFrom/Edges of a frozen
// graph. Run with -race to catch any hidden write.
func TestConcurrentReaders(t *testing.T) {
	const n = 64
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v += 7 {
			require.NoError(t, g.AddEdge(u, v, int64(u+v)))
		}
	}
	g.Freeze()

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			v := id % n
			edges := g.EdgesFrom(v)
			require.Len(t, edges, (n+6)/7)
			for _, e := range edges {
				require.Equal(t, v, e.From)
			}
			require.Len(t, g.Edges(), g.EdgeCount())
			g.Freeze() // idempotent, concurrent-safe
		}(i)
	}
	wg.Wait()
}
