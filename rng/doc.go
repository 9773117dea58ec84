// Package rng centralizes deterministic random generation for every
// randomised strategy (Tabu, Simulated Annealing, Genetic) and for the
// dispatcher that seeds them.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     inside a strategy package.
//   - Each strategy invocation owns an independent *rand.Rand (spec §5: no
//     shared mutable state between runs); the dispatcher builds one per
//     invocation with FromSeed from the configured seed.
//
// math/rand.Rand is NOT goroutine-safe; do not share a *rand.Rand across
// goroutines. Use DeriveRand to produce independent streams.
package rng
