// Package generic contains the pure Go contiguous kernels.
//
// Every kernel handles the N mod M leading elements in a clean-up loop and
// then processes whole batches of M elements, M being the unroll factor used
// by the reference BLAS for the same routine. Arithmetic is performed in
// exactly the order of a plain element-by-element loop, so the results are
// bit-identical to the strided kernels run with unit stride.
//
// Products are converted to T before they are added. The explicit
// conversion rounds the product, which keeps the compiler from fusing the
// multiply and add into an FMA on architectures that have one.
package generic

import "github.com/cwbudde/algo-strided/numeric"

// Unroll factors.
const (
	SwapM   = 3
	ScaleM  = 5
	AxpyM   = 4
	DotM    = 5
	AsumM   = 6
	RotM    = 3
	CumSumM = 3
	MapM    = 4
)

// Swap exchanges x[i] and y[i] for i < len(x).
func Swap[T any](x, y []T) {
	n := len(x)
	y = y[:n]
	m := n % SwapM
	for i := 0; i < m; i++ {
		x[i], y[i] = y[i], x[i]
	}
	for i := m; i < n; i += SwapM {
		x[i], y[i] = y[i], x[i]
		x[i+1], y[i+1] = y[i+1], x[i+1]
		x[i+2], y[i+2] = y[i+2], x[i+2]
	}
}

// Copy copies x into y using the runtime's memmove.
func Copy[T any](x, y []T) {
	copy(y[:len(x)], x)
}

// Fill sets every element of x to v.
func Fill[T any](v T, x []T) {
	for i := range x {
		x[i] = v
	}
}

// Scale multiplies every element of x by alpha in place.
func Scale[T numeric.Number](alpha T, x []T) {
	n := len(x)
	m := n % ScaleM
	for i := 0; i < m; i++ {
		x[i] *= alpha
	}
	for i := m; i < n; i += ScaleM {
		x[i] *= alpha
		x[i+1] *= alpha
		x[i+2] *= alpha
		x[i+3] *= alpha
		x[i+4] *= alpha
	}
}

// Axpy performs y[i] += alpha*x[i].
func Axpy[T numeric.Number](alpha T, x, y []T) {
	n := len(x)
	y = y[:n]
	m := n % AxpyM
	for i := 0; i < m; i++ {
		y[i] += T(alpha * x[i])
	}
	for i := m; i < n; i += AxpyM {
		y[i] += T(alpha * x[i])
		y[i+1] += T(alpha * x[i+1])
		y[i+2] += T(alpha * x[i+2])
		y[i+3] += T(alpha * x[i+3])
	}
}

// Dot returns the sum of x[i]*y[i], accumulated left to right.
func Dot[T numeric.Number](x, y []T) T {
	n := len(x)
	y = y[:n]
	var dot T
	m := n % DotM
	for i := 0; i < m; i++ {
		dot += T(x[i] * y[i])
	}
	for i := m; i < n; i += DotM {
		dot += T(x[i] * y[i])
		dot += T(x[i+1] * y[i+1])
		dot += T(x[i+2] * y[i+2])
		dot += T(x[i+3] * y[i+3])
		dot += T(x[i+4] * y[i+4])
	}
	return dot
}

// Sum returns the sum of x, accumulated left to right.
func Sum[T numeric.Number](x []T) T {
	n := len(x)
	var sum T
	m := n % DotM
	for i := 0; i < m; i++ {
		sum += x[i]
	}
	for i := m; i < n; i += DotM {
		sum += x[i]
		sum += x[i+1]
		sum += x[i+2]
		sum += x[i+3]
		sum += x[i+4]
	}
	return sum
}

// Asum returns the sum of |x[i]|, accumulated left to right.
func Asum[T numeric.Real](x []T) T {
	n := len(x)
	var sum T
	m := n % AsumM
	for i := 0; i < m; i++ {
		sum += abs(x[i])
	}
	for i := m; i < n; i += AsumM {
		sum += abs(x[i])
		sum += abs(x[i+1])
		sum += abs(x[i+2])
		sum += abs(x[i+3])
		sum += abs(x[i+4])
		sum += abs(x[i+5])
	}
	return sum
}

// Rot applies the plane rotation (c, s) to the pairs (x[i], y[i]).
func Rot[T numeric.Float](x, y []T, c, s T) {
	n := len(x)
	y = y[:n]
	m := n % RotM
	for i := 0; i < m; i++ {
		x[i], y[i] = T(c*x[i])+T(s*y[i]), T(c*y[i])-T(s*x[i])
	}
	for i := m; i < n; i += RotM {
		x[i], y[i] = T(c*x[i])+T(s*y[i]), T(c*y[i])-T(s*x[i])
		x[i+1], y[i+1] = T(c*x[i+1])+T(s*y[i+1]), T(c*y[i+1])-T(s*x[i+1])
		x[i+2], y[i+2] = T(c*x[i+2])+T(s*y[i+2]), T(c*y[i+2])-T(s*x[i+2])
	}
}

// CumSum writes the running sum of x, starting from sum, into y.
// x and y may be the same slice.
func CumSum[T numeric.Number](sum T, x, y []T) {
	n := len(x)
	y = y[:n]
	m := n % CumSumM
	for i := 0; i < m; i++ {
		sum += x[i]
		y[i] = sum
	}
	for i := m; i < n; i += CumSumM {
		sum += x[i]
		y[i] = sum
		sum += x[i+1]
		y[i+1] = sum
		sum += x[i+2]
		y[i+2] = sum
	}
}

// Unary writes f(x[i]) into y[i].
func Unary[T, U any](x []T, y []U, f func(T) U) {
	n := len(x)
	y = y[:n]
	m := n % MapM
	for i := 0; i < m; i++ {
		y[i] = f(x[i])
	}
	for i := m; i < n; i += MapM {
		y[i] = f(x[i])
		y[i+1] = f(x[i+1])
		y[i+2] = f(x[i+2])
		y[i+3] = f(x[i+3])
	}
}

// Binary writes f(x[i], y[i]) into z[i].
func Binary[T, U, V any](x []T, y []U, z []V, f func(T, U) V) {
	n := len(x)
	y = y[:n]
	z = z[:n]
	m := n % MapM
	for i := 0; i < m; i++ {
		z[i] = f(x[i], y[i])
	}
	for i := m; i < n; i += MapM {
		z[i] = f(x[i], y[i])
		z[i+1] = f(x[i+1], y[i+1])
		z[i+2] = f(x[i+2], y[i+2])
		z[i+3] = f(x[i+3], y[i+3])
	}
}

// MaskedBinary writes f(x[i], y[i]) into z[i] wherever mask[i] == 0 and
// leaves z[i] untouched elsewhere.
func MaskedBinary[T, U, V any](x []T, y []U, mask []uint8, z []V, f func(T, U) V) {
	n := len(x)
	y = y[:n]
	mask = mask[:n]
	z = z[:n]
	for i := 0; i < n; i++ {
		if mask[i] == 0 {
			z[i] = f(x[i], y[i])
		}
	}
}

func abs[T numeric.Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
