// Package vecmath registers contiguous float64 kernels backed by
// github.com/cwbudde/algo-vecmath, which dispatches to its own SSE2, AVX2 or
// NEON code.
//
// Only the operations algo-vecmath accelerates are delegated. Swap, Copy,
// Asum, Rot and CumSum reuse the pure Go kernels. Reductions accumulate in a
// different order than the generic kernels, so Dot and Sum agree with them
// only to within rounding.
package vecmath

import (
	algovecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// chunk bounds the stack scratch used by Axpy.
const chunk = 256

// Entry returns the algo-vecmath implementation table for the given level.
func Entry(level cpu.SIMDLevel) registry.OpEntry {
	return registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: level,
		Priority:  10,

		Copy:   generic.Copy[float64],
		Swap:   generic.Swap[float64],
		Scale:  Scale,
		Axpy:   Axpy,
		Dot:    Dot,
		Sum:    Sum,
		Asum:   generic.Asum[float64],
		Rot:    generic.Rot[float64],
		CumSum: generic.CumSum[float64],
		Add:    Add,
		Mul:    Mul,
	}
}

// Scale performs x[i] *= alpha.
func Scale(alpha float64, x []float64) {
	if len(x) == 0 {
		return
	}
	algovecmath.ScaleBlockInPlace(x, alpha)
}

// Axpy performs y[i] += alpha*x[i] through a stack scratch block.
func Axpy(alpha float64, x, y []float64) {
	var tmp [chunk]float64
	n := len(x)
	y = y[:n]
	for i := 0; i < n; i += chunk {
		k := min(chunk, n-i)
		algovecmath.ScaleBlock(tmp[:k], x[i:i+k], alpha)
		algovecmath.AddBlockInPlace(y[i:i+k], tmp[:k])
	}
}

// Dot returns sum(x[i]*y[i]).
func Dot(x, y []float64) float64 {
	return algovecmath.DotProduct(x, y[:len(x)])
}

// Sum returns sum(x[i]).
func Sum(x []float64) float64 {
	return algovecmath.Sum(x)
}

// Add performs z[i] = x[i] + y[i].
func Add(x, y, z []float64) {
	n := len(x)
	if n == 0 {
		return
	}
	algovecmath.AddBlock(z[:n], x, y[:n])
}

// Mul performs z[i] = x[i] * y[i].
func Mul(x, y, z []float64) {
	n := len(x)
	if n == 0 {
		return
	}
	algovecmath.MulBlock(z[:n], x, y[:n])
}
