package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

// Dcopy copies n elements of x into y and returns y.
func Dcopy(n int, x []float64, incX int, y []float64, incY int) []float64 {
	return DcopyNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// DcopyNdarray is Dcopy with explicit offsets.
func DcopyNdarray(n int, x []float64, incX, offX int, y []float64, incY, offY int) []float64 {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		contig.Copy(x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.Copy(n, x, incX, offX, y, incY, offY)
}

// Scopy copies n elements of x into y and returns y.
func Scopy(n int, x []float32, incX int, y []float32, incY int) []float32 {
	return Gcopy(n, x, incX, y, incY)
}

// ScopyNdarray is Scopy with explicit offsets.
func ScopyNdarray(n int, x []float32, incX, offX int, y []float32, incY, offY int) []float32 {
	return GcopyNdarray(n, x, incX, offX, y, incY, offY)
}

// Zcopy copies n elements of x into y and returns y.
func Zcopy(n int, x []complex128, incX int, y []complex128, incY int) []complex128 {
	return Gcopy(n, x, incX, y, incY)
}

// ZcopyNdarray is Zcopy with explicit offsets.
func ZcopyNdarray(n int, x []complex128, incX, offX int, y []complex128, incY, offY int) []complex128 {
	return GcopyNdarray(n, x, incX, offX, y, incY, offY)
}

// Ccopy copies n elements of x into y and returns y.
func Ccopy(n int, x []complex64, incX int, y []complex64, incY int) []complex64 {
	return Gcopy(n, x, incX, y, incY)
}

// CcopyNdarray is Ccopy with explicit offsets.
func CcopyNdarray(n int, x []complex64, incX, offX int, y []complex64, incY, offY int) []complex64 {
	return GcopyNdarray(n, x, incX, offX, y, incY, offY)
}

// Gcopy copies n elements of x into y and returns y.
func Gcopy[T any](n int, x []T, incX int, y []T, incY int) []T {
	return GcopyNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// GcopyNdarray is Gcopy with explicit offsets.
func GcopyNdarray[T any](n int, x []T, incX, offX int, y []T, incY, offY int) []T {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		generic.Copy(x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.Copy(n, x, incX, offX, y, incY, offY)
}
