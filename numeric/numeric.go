// Package numeric defines the element-type constraints shared by the strided
// kernels.
package numeric

import "golang.org/x/exp/constraints"

// Real is any integer or real floating-point type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Float is any real floating-point type.
type Float interface {
	constraints.Float
}

// Number is any type supporting +, - and *.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// AbsGreater reports whether |a| > |b|, computed in T.
//
// Signed values are compared on the non-positive half of the range, where
// every magnitude is representable, so MinInt compares greatest and no
// 64-bit integer loses precision. A NaN never compares greater.
func AbsGreater[T Real](a, b T) bool {
	var zero T
	if zero-1 > zero {
		// unsigned
		return a > b
	}
	return negAbs(a) < negAbs(b)
}

func negAbs[T Real](v T) T {
	if v > 0 {
		return -v
	}
	return v
}
