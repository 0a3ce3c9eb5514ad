package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

// Ddot returns the dot product of n elements of x and y.
func Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return DdotNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// DdotNdarray is Ddot with explicit offsets.
func DdotNdarray(n int, x []float64, incX, offX int, y []float64, incY, offY int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return contig.Dot(x[offX:offX+n], y[offY:offY+n])
	}
	return kernel.Dot(n, x, incX, offX, y, incY, offY)
}

// Sdot returns the dot product of n elements of x and y, accumulated in
// float32.
func Sdot(n int, x []float32, incX int, y []float32, incY int) float32 {
	return SdotNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// SdotNdarray is Sdot with explicit offsets.
func SdotNdarray(n int, x []float32, incX, offX int, y []float32, incY, offY int) float32 {
	if n <= 0 {
		return 0
	}
	if incX == 1 && incY == 1 {
		return generic.Dot(x[offX:offX+n], y[offY:offY+n])
	}
	return kernel.Dot(n, x, incX, offX, y, incY, offY)
}

// Dasum returns the sum of |x[k]| over n elements.
func Dasum(n int, x []float64, incX int) float64 {
	return DasumNdarray(n, x, incX, stride.Offset(n, incX))
}

// DasumNdarray is Dasum with an explicit offset.
func DasumNdarray(n int, x []float64, incX, offX int) float64 {
	if n <= 0 {
		return 0
	}
	if incX == 1 {
		return contig.Asum(x[offX : offX+n])
	}
	return kernel.Asum(n, x, incX, offX)
}

// Dnrm2 returns the Euclidean norm of n elements of x without intermediate
// overflow.
func Dnrm2(n int, x []float64, incX int) float64 {
	return kernel.Nrm2(n, x, incX, stride.Offset(n, incX))
}

// Dnrm2Ndarray is Dnrm2 with an explicit offset.
func Dnrm2Ndarray(n int, x []float64, incX, offX int) float64 {
	return kernel.Nrm2(n, x, incX, offX)
}

// Idamax returns the position k, in visiting order, of the first element of
// largest magnitude, or -1 when n <= 0.
func Idamax(n int, x []float64, incX int) int {
	return kernel.Iamax(n, x, incX, stride.Offset(n, incX))
}

// IdamaxNdarray is Idamax with an explicit offset.
func IdamaxNdarray(n int, x []float64, incX, offX int) int {
	return kernel.Iamax(n, x, incX, offX)
}
