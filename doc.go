// Package sssp is the root of a single-source shortest path toolkit for
// directed graphs with non-negative integer weights.
//
// Under the hood, everything is organized in subpackages:
//
//	core/      — Graph, Edge and eager edge validation
//	dijkstra/  — Sequential and Concurrent solvers behind one Solver interface
//	graphio/   — load and write the "V E / u v w" edge-list format
//	builder/   — deterministic fixture topologies (path, grid, star, random…)
//	cmd/sssp/  — command-line front end, plus `sssp gen` for fixtures
//	examples/  — runnable scenario programs
//
// Quick example:
//
//	g := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(2, 3, 1)
//	dist, pred, err := dijkstra.ShortestPaths(g, 0)
//
// The concurrent solver splits each settled vertex's outgoing edges across
// a fixed worker pool and relaxes them under per-vertex locks; its results
// are identical to the sequential solver's.
package sssp
