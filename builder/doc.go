// Package builder provides deterministic graph fixtures for core.Graph:
// paths, cycles, stars, complete graphs, grids and Erdős–Rényi-like random
// graphs over integer vertex IDs.
//
// The package offers the following key components:
//
//   - Composition:
//     – Constructor:       a closure that mutates a *core.Graph.
//     – BuildGraph/Apply:  resolve options and run constructors in order.
//     – ByName:            name-based lookup used by the command-line tool.
//   - Configuration primitives (BuilderOption):
//     – WithSeed/WithRand: RNG for RandomSparse and random weights.
//     – WithWeightFn and friends: edge-weight distributions.
//     – WithFirstID:       offset vertex IDs to compose several fixtures.
//     – WithUndirected:    emit both arcs of every edge.
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return builder sentinels or wrapped core
//     errors (a weight above the graph's MaxWeight surfaces as
//     core.ErrWeightOutOfRange).
package builder
