// Package core provides the immutable, dense-index weighted directed Graph
// consumed by the shortest-path solvers.
//
// Vertices are the integers [0, V) and are used as direct array indices, so
// no hashing or ID translation happens on the hot path. Each vertex owns an
// ordered slice of outgoing edges; the order is the insertion order and only
// affects tie-breaking between equally short paths, never correctness.
//
// Lifecycle:
//
//	g := core.NewGraph(4, core.WithEdgeCapacity(5)) // mutable while loading
//	_ = g.AddEdge(0, 1, 1)                          // validated eagerly
//	g.Freeze()                                      // read-only from here on
//
// Validation (eager, fail fast):
//
//	– ErrVertexOutOfRange   an endpoint lies outside [0, V).
//	– ErrNegativeWeight     the weight is < 0.
//	– ErrGraphFrozen        AddEdge after Freeze.
//
// The first two wrap ErrPreconditionViolation, so callers that only care about
// the error class can branch with errors.Is(err, core.ErrPreconditionViolation).
//
// Concurrency:
//
//   - Building (AddEdge) is single-writer; do not share a graph while loading.
//   - After Freeze every query is read-only and safe for any number of
//     concurrent readers without locking.
package core
