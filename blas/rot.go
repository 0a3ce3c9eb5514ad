package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

// Drot applies the plane rotation (c, s) to n element pairs:
//
//	x[k], y[k] = c*x[k] + s*y[k], c*y[k] - s*x[k]
//
// It returns y.
func Drot(n int, x []float64, incX int, y []float64, incY int, c, s float64) []float64 {
	return DrotNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY), c, s)
}

// DrotNdarray is Drot with explicit offsets.
func DrotNdarray(n int, x []float64, incX, offX int, y []float64, incY, offY int, c, s float64) []float64 {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		contig.Rot(x[offX:offX+n], y[offY:offY+n], c, s)
		return y
	}
	return kernel.Rot(n, x, incX, offX, y, incY, offY, c, s)
}

// Srot is Drot for float32.
func Srot(n int, x []float32, incX int, y []float32, incY int, c, s float32) []float32 {
	return SrotNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY), c, s)
}

// SrotNdarray is Srot with explicit offsets.
func SrotNdarray(n int, x []float32, incX, offX int, y []float32, incY, offY int, c, s float32) []float32 {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		generic.Rot(x[offX:offX+n], y[offY:offY+n], c, s)
		return y
	}
	return kernel.Rot(n, x, incX, offX, y, incY, offY, c, s)
}

// Zdrot applies a real plane rotation to complex vectors. Real and
// imaginary parts are rotated independently. It returns y.
func Zdrot(n int, x []complex128, incX int, y []complex128, incY int, c, s float64) []complex128 {
	return ZdrotNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY), c, s)
}

// ZdrotNdarray is Zdrot with explicit offsets.
func ZdrotNdarray(n int, x []complex128, incX, offX int, y []complex128, incY, offY int, c, s float64) []complex128 {
	ix, iy := offX, offY
	for i := 0; i < n; i++ {
		xr, xi := real(x[ix]), imag(x[ix])
		yr, yi := real(y[iy]), imag(y[iy])
		x[ix] = complex(c*xr+s*yr, c*xi+s*yi)
		y[iy] = complex(c*yr-s*xr, c*yi-s*xi)
		ix += incX
		iy += incY
	}
	return y
}
