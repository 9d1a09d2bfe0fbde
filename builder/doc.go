// Package builder generates deterministic fixture graphs for tests,
// benchmarks and the `sssp gen` command.
//
// The package offers:
//
//   - BuildGraph(n, bopts, cons...): creates a core.Graph over [0, n), applies
//     every Constructor in order and freezes the result.
//   - Topologies (Constructor): Path, Cycle, Star, Grid, Complete,
//     RandomSparse, ParallelEdges.
//   - BuilderOption: WithSeed / WithRand (RNG), WithWeightFn (edge weights),
//     WithBidirectional (emit the reverse arc of every generated edge).
//   - Weight distributions (WeightFn): ConstantWeightFn, UniformWeightFn,
//     DefaultWeightFn.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical
//     edge lists, in identical order.
//   - Option constructors panic on meaningless input; Constructors never panic
//     and return sentinel errors wrapped with a method tag.
package builder
