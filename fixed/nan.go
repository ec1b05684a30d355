package fixed

import "math"

// IsNaN reports whether any element of g is NaN. It stops at the first NaN;
// the scan order is not part of the contract.
// Complexity: O(Rows·Cols).
func IsNaN(g Grid) bool {
	rows, cols := g.Rows(), g.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.IsNaN(g.At(i, j)) {
				return true
			}
		}
	}

	return false
}

// IsFinite reports whether every element of g is neither NaN nor ±Inf.
func IsFinite(g Grid) bool {
	rows, cols := g.Rows(), g.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x := g.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}

	return true
}

// HasNaN reports whether any component is NaN.
func (v Vec2) HasNaN() bool { return IsNaN(v) }

// HasNaN reports whether any component is NaN.
func (v Vec3) HasNaN() bool { return IsNaN(v) }

// HasNaN reports whether any component is NaN.
func (v Vec4) HasNaN() bool { return IsNaN(v) }

// HasNaN reports whether any entry is NaN.
func (m Mat3) HasNaN() bool { return IsNaN(m) }
