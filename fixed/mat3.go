package fixed

import "math"

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Mul returns m × b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*b[0][j] + m[i][1]*b[1][j] + m[i][2]*b[2][j]
		}
	}

	return out
}

// MulVec returns m × v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}

	return m
}

// Div returns m with every entry divided by s.
// Entries are divided, not scaled by 1/s, so Div(1) is exact.
func (m Mat3) Div(s float64) Mat3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] /= s
		}
	}

	return m
}

// ApproxEqual reports whether |m[i][j] - b[i][j]| <= ε for every entry.
// ε comes from WithEpsilon (default DefaultEpsilon). NaN entries never match.
func (m Mat3) ApproxEqual(b Mat3, opts ...Option) bool {
	o := gatherOptions(opts...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !(math.Abs(m[i][j]-b[i][j]) <= o.eps) {
				return false
			}
		}
	}

	return true
}
