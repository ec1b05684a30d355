package scalar

import "math"

// Square returns a*a.
func Square[T Number](a T) T {
	return a * a
}

// SquaredNorm returns a² + b², the squared Euclidean norm of (a, b).
// Complexity: O(1).
func SquaredNorm[T Number](a, b T) T {
	return a*a + b*b
}

// SquaredNorm3 returns a² + b² + c².
func SquaredNorm3[T Number](a, b, c T) T {
	return a*a + b*b + c*c
}

// Norm returns √(a² + b²).
//
// The sum is formed in T and only the square root is taken in float64, so
// integer inputs may overflow before conversion. Norm(0, 0) is exactly 0.
func Norm[T Number](a, b T) float64 {
	return math.Sqrt(float64(SquaredNorm(a, b)))
}

// Norm3 returns √(a² + b² + c²).
func Norm3[T Number](a, b, c T) float64 {
	return math.Sqrt(float64(SquaredNorm3(a, b, c)))
}
