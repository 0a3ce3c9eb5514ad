package blas

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/numeric"
)

// Rotation is a Givens plane rotation.
//
// Applying it to (a, b) yields (R, 0): C*a + S*b = R and C*b - S*a = 0.
// Z packs C and S into one number: Z = S when |a| > |b|, Z = 1/C when
// C != 0, and Z = 1 otherwise.
type Rotation[T numeric.Float] struct {
	R, Z, C, S T
}

// Drotg constructs the rotation that zeroes b against a.
func Drotg(a, b float64) Rotation[float64] {
	return rotg(a, b, 0x1p-1022)
}

// Srotg is Drotg for float32.
func Srotg(a, b float32) Rotation[float32] {
	return rotg(a, b, 0x1p-126)
}

// DrotgAssign constructs the rotation for (a, b) and writes r, z, c and s
// into out at offset, offset+stride, ... It returns out.
func DrotgAssign(a, b float64, out []float64, stride, offset int) []float64 {
	g := Drotg(a, b)
	return kernel.Copy(4, []float64{g.R, g.Z, g.C, g.S}, 1, 0, out, stride, offset)
}

// SrotgAssign is DrotgAssign for float32.
func SrotgAssign(a, b float32, out []float32, stride, offset int) []float32 {
	g := Srotg(a, b)
	return kernel.Copy(4, []float32{g.R, g.Z, g.C, g.S}, 1, 0, out, stride, offset)
}

// rotg scales by the larger magnitude, clamped to [safmin, 1/safmin], so
// neither the squares nor their sum overflow or underflow.
func rotg[T numeric.Float](a, b, safmin T) Rotation[T] {
	safmax := 1 / safmin
	absA, absB := abs(a), abs(b)
	switch {
	case absB == 0:
		return Rotation[T]{R: a, Z: 0, C: 1, S: 0}
	case absA == 0:
		return Rotation[T]{R: b, Z: 1, C: 0, S: 1}
	}

	scl := min(max(safmin, max(absA, absB)), safmax)
	sigma := T(1)
	if absA > absB {
		if a < 0 {
			sigma = -1
		}
	} else if b < 0 {
		sigma = -1
	}
	as, bs := a/scl, b/scl
	r := sigma * (scl * T(math.Sqrt(float64(as*as+bs*bs))))
	c, s := a/r, b/r

	var z T
	switch {
	case absA > absB:
		z = s
	case c != 0:
		z = 1 / c
	default:
		z = 1
	}
	return Rotation[T]{R: r, Z: z, C: c, S: s}
}

func abs[T numeric.Float](v T) T {
	return T(math.Abs(float64(v)))
}

// ComplexRotation is a complex Givens rotation with real cosine C and
// complex sine S. Applying it to (a, b) yields (R, 0):
// C*a + S*b = R and C*b - conj(S)*a = 0.
type ComplexRotation struct {
	R complex128
	C float64
	S complex128
}

// Zrotg constructs the complex rotation that zeroes b against a.
func Zrotg(a, b complex128) ComplexRotation {
	absA := cmplx.Abs(a)
	if absA == 0 {
		return ComplexRotation{R: b, C: 0, S: 1}
	}
	scale := absA + cmplx.Abs(b)
	na := cmplx.Abs(a / complex(scale, 0))
	nb := cmplx.Abs(b / complex(scale, 0))
	norm := scale * math.Sqrt(na*na+nb*nb)
	alpha := a / complex(absA, 0)
	return ComplexRotation{
		R: alpha * complex(norm, 0),
		C: absA / norm,
		S: alpha * cmplx.Conj(b) / complex(norm, 0),
	}
}

// ComplexRotation64 is ComplexRotation in single precision.
type ComplexRotation64 struct {
	R complex64
	C float32
	S complex64
}

// Crotg is Zrotg for complex64. The rotation is computed in double precision
// and rounded.
func Crotg(a, b complex64) ComplexRotation64 {
	g := Zrotg(complex128(a), complex128(b))
	return ComplexRotation64{R: complex64(g.R), C: float32(g.C), S: complex64(g.S)}
}
