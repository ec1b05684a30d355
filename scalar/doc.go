// Package scalar provides branch-light helpers over single numeric values:
// rounding, saturation into fixed-width integer ranges, generic clamping,
// running extremum tracking, squares and 2D/3D norms.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmath/scalar"
//
//	px := scalar.ClampUChar(263.7)            // 255
//	v := scalar.Constrain(x, -1.0, 1.0)        // clamp into [-1, 1]
//	best, changed := scalar.KeepMin(best, cost) // running minimum
//	r := scalar.Norm(dx, dy)                   // √(dx²+dy²)
//
// Contracts:
//
//   - Round2IntPositive is only correct for non-negative input.
//   - ClampChar saturates into [-127, 128]. The +128 upper bound is kept
//     for compatibility with existing callers even though it exceeds the
//     int8 range, so the result is returned as int16.
//   - Constrain requires min <= max; other orderings are unspecified.
//   - NaN input to the Clamp* family is unspecified.
//
// Concurrency:
//
//	Every function is pure and safe for concurrent use. Tracker is a mutable
//	accumulator and must not be updated from several goroutines without
//	external synchronization.
package scalar
