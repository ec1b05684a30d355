// Package so3 converts rotations expressed in the Lie algebra so(3) into unit
// quaternions and provides the small quaternion algebra needed to consume
// them.
//
// An so(3) element is a 3-vector w whose direction is the rotation axis and
// whose length |w| is the rotation angle in radians.
//
// Layout:
//
//	Quaternion is [x, y, z, w]: vector part in components 0..2, scalar
//	(real) part in component 3. Code integrating with w-first libraries must
//	reorder explicitly; use the X/Y/Z/W accessors rather than raw indices.
//
// ⚙️ Usage:
//
//	q := so3.LieRotToQuaternion(fixed.Vec3{0, 0, math.Pi / 2})
//	v := q.Rotate(fixed.Vec3{1, 0, 0}) // ≈ {0, 1, 0}
//
// All functions are pure and safe for concurrent use.
package so3
