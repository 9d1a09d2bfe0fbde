// Package parallel provides the partition-and-join primitive used by the
// concurrent solver: split [0, n) into contiguous chunks, run one goroutine
// per chunk, and return only after every goroutine has finished.
package parallel

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// Chunks splits [0, n) into at most parts contiguous, non-empty ranges whose
// lengths differ by at most one. The first n%k ranges get the extra element.
// Returns nil when n <= 0. Panics if parts < 1.
func Chunks(n, parts int) []Range {
	if parts < 1 {
		panic(fmt.Sprintf("parallel: Chunks(parts=%d): parts must be ≥ 1", parts))
	}
	if n <= 0 {
		return nil
	}
	k := parts
	if k > n {
		k = n
	}
	size, rem := n/k, n%k
	out := make([]Range, k)
	lo := 0
	for i := 0; i < k; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out[i] = Range{Lo: lo, Hi: hi}
		lo = hi
	}

	return out
}

// ForEachChunk partitions [0, n) with Chunks(n, workers) and calls fn once per
// chunk, passing the chunk's worker index. Chunks run concurrently; a single
// chunk runs on the calling goroutine. It returns after all calls complete.
func ForEachChunk(n, workers int, fn func(worker int, r Range)) {
	chunks := Chunks(n, workers)
	switch len(chunks) {
	case 0:
		return
	case 1:
		fn(0, chunks[0])
		return
	}

	var g errgroup.Group
	for i, r := range chunks {
		i, r := i, r
		g.Go(func() error {
			fn(i, r)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail; Wait is the join barrier
}
