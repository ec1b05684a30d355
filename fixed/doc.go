// Package fixed provides small, fixed-size, value-type vectors and matrices
// (Vec2, Vec3, Vec4, Mat3) together with the closed-form 3×3 inverse and
// NaN screening used by pose-estimation code.
//
// All types are plain arrays: they live on the stack, copy by assignment and
// never share storage. Every operation returns a new value; nothing is
// mutated in place.
//
// Inversion comes in two flavors:
//
//   - Inv3 is the raw adjugate/determinant formula. It performs no checks:
//     a singular input produces ±Inf/NaN entries, which callers can screen
//     with IsNaN or IsFinite afterwards.
//   - Inv3Checked validates finiteness and |det| > ε first and returns
//     ErrNaNInf / ErrSingular (match with errors.Is).
//
// IsNaN and IsFinite accept any Grid, so caller-defined small shapes work
// alongside the built-in ones; vectors are treated as n×1 columns.
//
// Complexity: every operation is O(1) in the fixed input size.
package fixed
