package fixed

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvmath/scalar"
)

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return scalar.Norm(v[0], v[1]) }

// Norm2 returns the squared Euclidean length of v.
func (v Vec2) Norm2() float64 { return scalar.SquaredNorm(v[0], v[1]) }

// Vec3FromR3 converts a geo r3.Vector into a Vec3.
func Vec3FromR3(v r3.Vector) Vec3 { return Vec3{v.X, v.Y, v.Z} }

// R3 converts v into a geo r3.Vector.
func (v Vec3) R3() r3.Vector { return r3.Vector{X: v[0], Y: v[1], Z: v[2]} }

// Norm returns the Euclidean length of v. Norm of the zero vector is exactly 0.
func (v Vec3) Norm() float64 { return scalar.Norm3(v[0], v[1], v[2]) }

// Norm2 returns the squared Euclidean length of v.
func (v Vec3) Norm2() float64 { return scalar.SquaredNorm3(v[0], v[1], v[2]) }

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }

// Sub returns v - u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Div returns v / s, dividing every component (s == 0 yields ±Inf/NaN).
func (v Vec3) Div(s float64) Vec3 { return Vec3{v[0] / s, v[1] / s, v[2] / s} }

// Dot returns v·u.
func (v Vec3) Dot(u Vec3) float64 { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] }

// Cross returns v×u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Head returns components 0..2.
func (v Vec4) Head() Vec3 { return Vec3{v[0], v[1], v[2]} }

// SetHead returns a copy of v with components 0..2 replaced by h.
func (v Vec4) SetHead(h Vec3) Vec4 {
	v[0], v[1], v[2] = h[0], h[1], h[2]

	return v
}

// Norm returns the Euclidean length of v.
func (v Vec4) Norm() float64 {
	return math.Sqrt(scalar.SquaredNorm3(v[0], v[1], v[2]) + scalar.Square(v[3]))
}
