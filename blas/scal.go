package blas

import (
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/numeric"
	"github.com/cwbudde/algo-strided/stride"
)

// Dscal multiplies n elements of x by alpha and returns x.
func Dscal(n int, alpha float64, x []float64, incX int) []float64 {
	return DscalNdarray(n, alpha, x, incX, stride.Offset(n, incX))
}

// DscalNdarray is Dscal with an explicit offset.
func DscalNdarray(n int, alpha float64, x []float64, incX, offX int) []float64 {
	if n <= 0 {
		return x
	}
	if incX == 1 {
		contig.Scale(alpha, x[offX:offX+n])
		return x
	}
	return kernel.Scale(n, alpha, x, incX, offX)
}

// Sscal multiplies n elements of x by alpha and returns x.
func Sscal(n int, alpha float32, x []float32, incX int) []float32 {
	return scal(n, alpha, x, incX, stride.Offset(n, incX))
}

// SscalNdarray is Sscal with an explicit offset.
func SscalNdarray(n int, alpha float32, x []float32, incX, offX int) []float32 {
	return scal(n, alpha, x, incX, offX)
}

// Zscal multiplies n elements of x by alpha and returns x.
func Zscal(n int, alpha complex128, x []complex128, incX int) []complex128 {
	return scal(n, alpha, x, incX, stride.Offset(n, incX))
}

// ZscalNdarray is Zscal with an explicit offset.
func ZscalNdarray(n int, alpha complex128, x []complex128, incX, offX int) []complex128 {
	return scal(n, alpha, x, incX, offX)
}

func scal[T numeric.Number](n int, alpha T, x []T, incX, offX int) []T {
	if n <= 0 {
		return x
	}
	if incX == 1 {
		generic.Scale(alpha, x[offX:offX+n])
		return x
	}
	return kernel.Scale(n, alpha, x, incX, offX)
}
