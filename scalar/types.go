package scalar

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is any numeric type that has a negation, i.e. the types
// for which a symmetric range [-limit, limit] makes sense.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Numeric sentinels for callers that need finite stand-ins for ∞ and 0.
const (
	// NumInf is a "near-infinite" value that still behaves under arithmetic.
	NumInf = 1e20

	// NumZero is a "near-zero" value, safe to divide by.
	NumZero = 1e-20

	// Sqrt2Pi is √(2π), the Gaussian normalization constant.
	Sqrt2Pi = 2.506628274631
)
