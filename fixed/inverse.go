// SPDX-License-Identifier: MIT

package fixed

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Inv3 returns the inverse of a via the classical adjugate formula:
// B(i,j) is the signed cofactor of a at (j,i), and the whole adjugate is
// divided by det(a).
//
// No singularity guard: det(a) == 0 yields ±Inf/NaN entries. Use
// Inv3Checked, or screen the result with IsNaN/IsFinite, when the input
// may be degenerate.
// Complexity: O(1), no allocations.
func Inv3(a Mat3) Mat3 {
	var b Mat3

	b[0][0] = a[2][2]*a[1][1] - a[2][1]*a[1][2]
	b[0][1] = -(a[2][2]*a[0][1] - a[2][1]*a[0][2])
	b[0][2] = a[1][2]*a[0][1] - a[1][1]*a[0][2]

	b[1][0] = -(a[2][2]*a[1][0] - a[2][0]*a[1][2])
	b[1][1] = a[2][2]*a[0][0] - a[2][0]*a[0][2]
	b[1][2] = -(a[1][2]*a[0][0] - a[1][0]*a[0][2])

	b[2][0] = a[2][1]*a[1][0] - a[2][0]*a[1][1]
	b[2][1] = -(a[2][1]*a[0][0] - a[2][0]*a[0][1])
	b[2][2] = a[1][1]*a[0][0] - a[1][0]*a[0][1]

	return b.Div(a.Det())
}

// Inv3Checked returns Inv3(a) after validating the input.
//
// Stage 1 (Validate): reject NaN/±Inf entries with ErrNaNInf (unless
// disabled by WithValidateNaNInf(false)).
// Stage 2 (Guard): reject |det(a)| <= ε with ErrSingular.
// Stage 3 (Execute): delegate to Inv3.
func Inv3Checked(a Mat3, opts ...Option) (Mat3, error) {
	o := gatherOptions(opts...)

	// Stage 1: finiteness
	if o.validateNaNInf && !IsFinite(a) {
		return Mat3{}, errors.Wrap(ErrNaNInf, "Inv3Checked")
	}

	// Stage 2: singularity
	det := a.Det()
	if math.Abs(det) <= o.eps {
		return Mat3{}, errors.Wrapf(ErrSingular, "Inv3Checked: |det|=%g <= eps=%g", math.Abs(det), o.eps)
	}

	// Stage 3: closed form
	return Inv3(a), nil
}
