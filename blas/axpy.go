package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/numeric"
	"github.com/cwbudde/algo-strided/stride"
)

// Daxpy computes y += alpha*x over n elements and returns y.
// alpha == 0 leaves y untouched.
func Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) []float64 {
	return DaxpyNdarray(n, alpha, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// DaxpyNdarray is Daxpy with explicit offsets.
func DaxpyNdarray(n int, alpha float64, x []float64, incX, offX int, y []float64, incY, offY int) []float64 {
	if n <= 0 || alpha == 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		contig.Axpy(alpha, x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.Axpy(n, alpha, x, incX, offX, y, incY, offY)
}

// Saxpy computes y += alpha*x over n elements and returns y.
func Saxpy(n int, alpha float32, x []float32, incX int, y []float32, incY int) []float32 {
	return axpy(n, alpha, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// SaxpyNdarray is Saxpy with explicit offsets.
func SaxpyNdarray(n int, alpha float32, x []float32, incX, offX int, y []float32, incY, offY int) []float32 {
	return axpy(n, alpha, x, incX, offX, y, incY, offY)
}

// Zaxpy computes y += alpha*x over n elements and returns y.
func Zaxpy(n int, alpha complex128, x []complex128, incX int, y []complex128, incY int) []complex128 {
	return axpy(n, alpha, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// ZaxpyNdarray is Zaxpy with explicit offsets.
func ZaxpyNdarray(n int, alpha complex128, x []complex128, incX, offX int, y []complex128, incY, offY int) []complex128 {
	return axpy(n, alpha, x, incX, offX, y, incY, offY)
}

func axpy[T numeric.Number](n int, alpha T, x []T, incX, offX int, y []T, incY, offY int) []T {
	if n <= 0 || alpha == 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		generic.Axpy(alpha, x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.Axpy(n, alpha, x, incX, offX, y, incY, offY)
}
