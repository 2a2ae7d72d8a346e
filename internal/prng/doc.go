// Package prng provides the seeded sources a walk can be drawn from.
//
// Three algorithms are registered by key:
//
//   - "pseudoRandom": Lehmer generator (16807 mod 2^31-1)
//   - "davidBau": ARC4 keyed generator compatible with seedrandom
//   - "p5": the canvas library LCG (1664525, 1013904223 mod 2^32), the default
//
// Every call to [Select] returns a fresh source so no generator state is
// shared between sessions.
package prng
