// Package walk provides the deterministic random walk primitives.
//
// The package defines the core types shared by the rest of randwalk:
//
//   - [Source]: seeded pseudo-random source producing floats in [0, 1)
//   - [Walk]: ordered lattice points, always starting at the origin
//   - [BoundingBox]: extent of a walk
//   - [Config]: a resolved seed/depth/algorithm triple plus walk stats
//
// # Example
//
//	src, _ := prng.Select("pseudoRandom")
//	src.Seed(42)
//	w, _ := walk.Generate(src, 5000)
//	box := walk.Bounds(w)
//
// # Determinism
//
// The direction table order is part of every seed's output. Changing it
// changes every walk for every seed.
//
// # Thread Safety
//
// A [Source] is NOT thread-safe. [Survey] builds one source per seed.
package walk
