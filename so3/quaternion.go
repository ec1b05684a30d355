package so3

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvmath/fixed"
)

// Quaternion is laid out [x, y, z, w] (vector part first, scalar last).
type Quaternion [4]float64

// Identity returns the zero rotation [0, 0, 0, 1].
func Identity() Quaternion { return Quaternion{0, 0, 0, 1} }

// LieRotToQuaternion maps the so(3) rotation w to a unit quaternion:
//
//	angle  = |w|
//	vector = w/angle · sin(angle/2)   (zero when angle == 0)
//	scalar = cos(angle/2)
//
// The zero rotation returns exactly [0, 0, 0, 1]; no division by zero occurs.
// Complexity: O(1).
func LieRotToQuaternion(w fixed.Vec3) Quaternion {
	var q fixed.Vec4
	angle := w.Norm()
	if angle > 0 {
		q = q.SetHead(w.Div(angle).Scale(math.Sin(angle / 2)))
	}
	q[3] = math.Cos(angle / 2)

	return Quaternion(q)
}

// FromR3 is LieRotToQuaternion for callers holding a geo r3.Vector.
func FromR3(w r3.Vector) Quaternion {
	return LieRotToQuaternion(fixed.Vec3FromR3(w))
}

// QuaternionToLieRot is the inverse map for unit quaternions: it returns the
// so(3) vector with angle in [0, 2π] about the quaternion's axis.
// The identity maps to the zero vector.
func QuaternionToLieRot(q Quaternion) fixed.Vec3 {
	v := q.Vec()
	s := v.Norm()
	if s == 0 {
		return fixed.Vec3{}
	}

	return v.Div(s).Scale(2 * math.Atan2(s, q[3]))
}

func (q Quaternion) X() float64 { return q[0] }
func (q Quaternion) Y() float64 { return q[1] }
func (q Quaternion) Z() float64 { return q[2] }
func (q Quaternion) W() float64 { return q[3] }

// Vec returns the vector part (x, y, z).
func (q Quaternion) Vec() fixed.Vec3 { return fixed.Vec4(q).Head() }

// Vec4 returns q as a plain 4-vector in the same [x, y, z, w] layout.
func (q Quaternion) Vec4() fixed.Vec4 { return fixed.Vec4(q) }

// Norm returns |q|; unit quaternions have Norm 1.
func (q Quaternion) Norm() float64 { return fixed.Vec4(q).Norm() }

// Angle returns the rotation angle encoded by the unit quaternion q, in [0, 2π].
func (q Quaternion) Angle() s1.Angle {
	return s1.Angle(2 * math.Atan2(q.Vec().Norm(), q[3]))
}

// Conj returns the conjugate, which is the inverse rotation for unit q.
func (q Quaternion) Conj() Quaternion { return Quaternion{-q[0], -q[1], -q[2], q[3]} }

// Mul returns the Hamilton product q·p: rotating by p first, then by q.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	qv, pv := q.Vec(), p.Vec()
	v := pv.Scale(q[3]).Add(qv.Scale(p[3])).Add(qv.Cross(pv))

	return Quaternion{v[0], v[1], v[2], q[3]*p[3] - qv.Dot(pv)}
}

// Rotate applies the rotation of unit q to v.
func (q Quaternion) Rotate(v fixed.Vec3) fixed.Vec3 {
	u := q.Vec()
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// ToMat3 returns the rotation matrix of unit q, acting on column vectors.
func (q Quaternion) ToMat3() fixed.Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return fixed.Mat3{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}

// HasNaN reports whether any component is NaN.
func (q Quaternion) HasNaN() bool { return fixed.IsNaN(fixed.Vec4(q)) }
