package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/numeric"
	"github.com/cwbudde/algo-strided/stride"
)

// Dcusum writes sum + x[0] + ... + x[k] into y[k] for k < n and returns y.
// x and y may be the same view.
func Dcusum(n int, sum float64, x []float64, incX int, y []float64, incY int) []float64 {
	return DcusumNdarray(n, sum, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// DcusumNdarray is Dcusum with explicit offsets.
func DcusumNdarray(n int, sum float64, x []float64, incX, offX int, y []float64, incY, offY int) []float64 {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		contig.CumSum(sum, x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.CumSum(n, sum, x, incX, offX, y, incY, offY)
}

// DcusumKahan is Dcusum with compensated summation.
func DcusumKahan(n int, sum float64, x []float64, incX int, y []float64, incY int) []float64 {
	return kernel.CumSumKahan(n, sum, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// DcusumKahanNdarray is DcusumKahan with explicit offsets.
func DcusumKahanNdarray(n int, sum float64, x []float64, incX, offX int, y []float64, incY, offY int) []float64 {
	return kernel.CumSumKahan(n, sum, x, incX, offX, y, incY, offY)
}

// Scusum is Dcusum for float32.
func Scusum(n int, sum float32, x []float32, incX int, y []float32, incY int) []float32 {
	return Gcusum(n, sum, x, incX, y, incY)
}

// ScusumNdarray is Scusum with explicit offsets.
func ScusumNdarray(n int, sum float32, x []float32, incX, offX int, y []float32, incY, offY int) []float32 {
	return GcusumNdarray(n, sum, x, incX, offX, y, incY, offY)
}

// Gcusum is Dcusum for any numeric element type.
func Gcusum[T numeric.Number](n int, sum T, x []T, incX int, y []T, incY int) []T {
	return GcusumNdarray(n, sum, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// GcusumNdarray is Gcusum with explicit offsets.
func GcusumNdarray[T numeric.Number](n int, sum T, x []T, incX, offX int, y []T, incY, offY int) []T {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		generic.CumSum(sum, x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.CumSum(n, sum, x, incX, offX, y, incY, offY)
}
