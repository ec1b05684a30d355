// Package lvmath is a small, allocation-free toolbox of numeric primitives
// for motion-estimation code: saturation, norms, closed-form 3×3 inversion,
// NaN screening and so(3) → quaternion conversion.
//
// 🚀 What is inside?
//
//	scalar/ — rounding, clamping to fixed-width integer ranges, saturation,
//	          running extremum tracking, squares and 2D/3D norms
//	fixed/  — value-type Vec2/Vec3/Vec4/Mat3, adjugate 3×3 inverse,
//	          NaN / finiteness detection over any small Grid
//	so3/    — axis-angle (Lie algebra) rotation to unit quaternion,
//	          plus the quaternion algebra needed to consume it
//
// ✨ Guarantees
//
//   - Pure functions over value types: nothing is mutated, nothing escapes
//   - No hidden state: every function is safe for concurrent use
//   - IEEE-754 specials propagate; checked variants return sentinel errors
//
// Quick example:
//
//	q := so3.LieRotToQuaternion(fixed.Vec3{math.Pi, 0, 0})
//	// q ≈ [1 0 0 0]  (x, y, z, w): half turn about X
//
//	go get github.com/katalvlaran/lvmath
package lvmath
