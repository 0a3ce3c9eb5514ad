package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

// Dswap exchanges n elements of x and y and returns y.
func Dswap(n int, x []float64, incX int, y []float64, incY int) []float64 {
	return DswapNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// DswapNdarray is Dswap with explicit offsets.
func DswapNdarray(n int, x []float64, incX, offX int, y []float64, incY, offY int) []float64 {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		contig.Swap(x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.Swap(n, x, incX, offX, y, incY, offY)
}

// Sswap exchanges n elements of x and y and returns y.
func Sswap(n int, x []float32, incX int, y []float32, incY int) []float32 {
	return Gswap(n, x, incX, y, incY)
}

// SswapNdarray is Sswap with explicit offsets.
func SswapNdarray(n int, x []float32, incX, offX int, y []float32, incY, offY int) []float32 {
	return GswapNdarray(n, x, incX, offX, y, incY, offY)
}

// Zswap exchanges n elements of x and y and returns y.
func Zswap(n int, x []complex128, incX int, y []complex128, incY int) []complex128 {
	return Gswap(n, x, incX, y, incY)
}

// ZswapNdarray is Zswap with explicit offsets.
func ZswapNdarray(n int, x []complex128, incX, offX int, y []complex128, incY, offY int) []complex128 {
	return GswapNdarray(n, x, incX, offX, y, incY, offY)
}

// Cswap exchanges n elements of x and y and returns y.
func Cswap(n int, x []complex64, incX int, y []complex64, incY int) []complex64 {
	return Gswap(n, x, incX, y, incY)
}

// CswapNdarray is Cswap with explicit offsets.
func CswapNdarray(n int, x []complex64, incX, offX int, y []complex64, incY, offY int) []complex64 {
	return GswapNdarray(n, x, incX, offX, y, incY, offY)
}

// Gswap exchanges n elements of x and y and returns y.
func Gswap[T any](n int, x []T, incX int, y []T, incY int) []T {
	return GswapNdarray(n, x, incX, stride.Offset(n, incX), y, incY, stride.Offset(n, incY))
}

// GswapNdarray is Gswap with explicit offsets.
func GswapNdarray[T any](n int, x []T, incX, offX int, y []T, incY, offY int) []T {
	if n <= 0 {
		return y
	}
	if incX == 1 && incY == 1 {
		generic.Swap(x[offX:offX+n], y[offY:offY+n])
		return y
	}
	return kernel.Swap(n, x, incX, offX, y, incY, offY)
}
