// Package random provides seeded sources and unbiased ranged draws.
//
// Sources are math/rand/v2 PCG generators. A Seed is either Seeded(v), which
// makes every source built from it replay the same stream, or Unseeded(),
// which draws fresh entropy per source.
//
// The ranged draws are pure functions over a source:
//
//   - Int32Range draws directly with Int64N, the 32-bit width always fits.
//   - Int64Range computes the width as an unsigned 64-bit value and rejects
//     raw draws above RejectionThreshold so that draw % width is uniform.
//   - Float64Range scales Float64 into [min, max).
package random
