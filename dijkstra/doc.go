// Package dijkstra computes single-source shortest paths on a core.Graph with
// non-negative integer weights, sequentially or with a concurrent relax step.
//
// Overview:
//
//   - Sequential runs the classic algorithm over a lazy-deletion min-heap.
//   - Concurrent runs the same outer loop, but for every popped vertex it
//     partitions the outgoing edges across a fixed pool of workers that relax
//     them in parallel, joins them, and merges the improved vertices back into
//     the heap on the single outer-loop goroutine.
//   - Both produce identical distances and predecessors for the same graph and
//     source, for every worker count.
//
// Lazy deletion:
//
//	A vertex may sit in the heap several times. Each entry records the distance
//	it was pushed with; an entry whose distance no longer equals distTo[v] when
//	popped is stale and is skipped without relaxing any edge. This replaces
//	decrease-key. Entries are ordered by (distance, vertex id), a total order,
//	so the pop sequence does not depend on push history.
//
// Concurrent relax:
//
//	Workers may race on the same destination when a vertex has parallel edges.
//	Every destination has its own mutex; a worker installs the pair
//	(distTo[to], edgeTo[to]) only if its candidate is still strictly smaller
//	than the visible distance, under that lock. Equal or worse candidates are
//	dropped. A worker reports only the vertices it won, into its own slice, and
//	the outer loop pushes each improved vertex once with its final distance.
//	The heap is never touched by a worker.
//
// Lifecycle:
//
//	Unrun → Running → Done. Run resets distTo/edgeTo (allocated once per solver)
//	on every call, so runs are repeatable. Queries before the first completed
//	Run panic with ErrQueryBeforeRun: that is a programming error.
//
// Options:
//
//   - WithWorkers(n):          worker pool size for Concurrent (n ≥ 1).
//   - WithMaxDistance(d):      vertices farther than d stay unreachable (d ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (t > 0).
//   - WithLogger(l):           slog logger for run start/finish records.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for both solvers; Concurrent adds one join per
//     popped vertex.
//   - Space: O(V + E), heap holds at most E + 1 entries.
//
// Errors:
//
//   - ErrNilGraph          nil graph passed to a constructor.
//   - ErrSourceOutOfRange  Run(source) with source outside [0, V); wraps
//     core.ErrPreconditionViolation.
//   - ErrQueryBeforeRun    (panic) query before Run completed.
//   - ErrBadWorkers, ErrBadMaxDistance, ErrBadInfThreshold (panic) invalid option.
package dijkstra
