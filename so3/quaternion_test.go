package so3_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/fixed"
	"github.com/katalvlaran/lvmath/so3"
)

// approx compares float64 leaves with an absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-12)

// TestLieRotToQuaternion_Zero checks the exact zero-rotation result.
func TestLieRotToQuaternion_Zero(t *testing.T) {
	q := so3.LieRotToQuaternion(fixed.Vec3{})
	assert.Equal(t, so3.Quaternion{0, 0, 0, 1}, q)
	assert.Equal(t, so3.Identity(), q)
	assert.False(t, q.HasNaN())
}

func TestLieRotToQuaternion_HalfTurnX(t *testing.T) {
	q := so3.LieRotToQuaternion(fixed.Vec3{math.Pi, 0, 0})
	assert.InDelta(t, 1, q.X(), 1e-15)
	assert.Equal(t, 0.0, q.Y())
	assert.Equal(t, 0.0, q.Z())
	assert.InDelta(t, 0, q.W(), 1e-15)
}

func TestLieRotToQuaternion_Layout(t *testing.T) {
	// Quarter turn about Z: [0, 0, sin(π/4), cos(π/4)].
	q := so3.LieRotToQuaternion(fixed.Vec3{0, 0, math.Pi / 2})
	want := so3.Quaternion{0, 0, math.Sqrt2 / 2, math.Sqrt2 / 2}
	if diff := cmp.Diff(want, q, approx); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, fixed.Vec3{0, 0, q.Z()}, q.Vec())
	assert.Equal(t, fixed.Vec4(q), q.Vec4())
}

func TestLieRotToQuaternion_TinyAngle(t *testing.T) {
	q := so3.LieRotToQuaternion(fixed.Vec3{1e-300, 0, 0})
	assert.False(t, q.HasNaN())
	assert.InDelta(t, 1, q.Norm(), 1e-15)
}

func TestLieRotToQuaternion_NaNPropagates(t *testing.T) {
	q := so3.LieRotToQuaternion(fixed.Vec3{math.NaN(), 0, 0})
	assert.True(t, q.HasNaN())
}

func TestFromR3(t *testing.T) {
	w := r3.Vector{X: 0.1, Y: -0.2, Z: 0.3}
	assert.Equal(t, so3.LieRotToQuaternion(fixed.Vec3{0.1, -0.2, 0.3}), so3.FromR3(w))
	assert.InDelta(t, w.Norm(), so3.FromR3(w).Angle().Radians(), 1e-15)
}

func TestQuaternionToLieRot(t *testing.T) {
	assert.Equal(t, fixed.Vec3{}, so3.QuaternionToLieRot(so3.Identity()))

	for _, w := range []fixed.Vec3{
		{0.3, 0, 0},
		{0.1, -0.2, 0.3},
		{0, 2.5, -1},
	} {
		got := so3.QuaternionToLieRot(so3.LieRotToQuaternion(w))
		if diff := cmp.Diff(w, got, approx); diff != "" {
			t.Errorf("round trip %v (-want +got):\n%s", w, diff)
		}
	}
}

// TestMul_SameAxisAddsAngles composes two rotations about one axis.
func TestMul_SameAxisAddsAngles(t *testing.T) {
	axis := fixed.Vec3{1, 2, 2}.Div(3)
	a := so3.LieRotToQuaternion(axis.Scale(0.4))
	b := so3.LieRotToQuaternion(axis.Scale(0.9))

	got := a.Mul(b)
	want := so3.LieRotToQuaternion(axis.Scale(1.3))
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("composition mismatch (-want +got):\n%s", diff)
	}
}

func TestMul_ConjIsInverse(t *testing.T) {
	q := so3.LieRotToQuaternion(fixed.Vec3{0.5, -1, 0.25})
	if diff := cmp.Diff(so3.Identity(), q.Mul(q.Conj()), approx); diff != "" {
		t.Fatalf("q·q* != identity (-want +got):\n%s", diff)
	}
}

func TestRotate_QuarterTurnZ(t *testing.T) {
	q := so3.LieRotToQuaternion(fixed.Vec3{0, 0, math.Pi / 2})
	got := q.Rotate(fixed.Vec3{1, 0, 0})
	if diff := cmp.Diff(fixed.Vec3{0, 1, 0}, got, approx); diff != "" {
		t.Fatalf("rotate mismatch (-want +got):\n%s", diff)
	}
}

// TestToMat3 checks the matrix agrees with Rotate and is orthonormal.
func TestToMat3(t *testing.T) {
	assert.Equal(t, fixed.Identity3(), so3.Identity().ToMat3())

	q := so3.LieRotToQuaternion(fixed.Vec3{0.3, -0.7, 1.1})
	r := q.ToMat3()
	v := fixed.Vec3{1, -2, 0.5}
	if diff := cmp.Diff(q.Rotate(v), r.MulVec(v), approx); diff != "" {
		t.Fatalf("ToMat3 vs Rotate (-want +got):\n%s", diff)
	}

	require.InDelta(t, 1, r.Det(), 1e-12)
	assert.True(t, fixed.Inv3(r).ApproxEqual(r.Transpose(), fixed.WithEpsilon(1e-12)),
		"inverse of a rotation is its transpose")
	assert.True(t, q.Conj().ToMat3().ApproxEqual(r.Transpose(), fixed.WithEpsilon(1e-12)))
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, so3.Identity().Angle().Radians())
	q := so3.LieRotToQuaternion(fixed.Vec3{0, 0.75, 0})
	assert.InDelta(t, 0.75, q.Angle().Radians(), 1e-15)
	assert.InDelta(t, 0.75*180/math.Pi, q.Angle().Degrees(), 1e-12)
}
