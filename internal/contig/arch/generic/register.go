package generic

import (
	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go float64 kernels.
//
// They are the baseline when no SIMD variant is supported or when
// ForceGeneric is set.
//
// Priority: 0
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the generic float64 implementation table.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Copy:   Copy[float64],
		Swap:   Swap[float64],
		Scale:  Scale[float64],
		Axpy:   Axpy[float64],
		Dot:    Dot[float64],
		Sum:    Sum[float64],
		Asum:   Asum[float64],
		Rot:    Rot[float64],
		CumSum: CumSum[float64],
		Add:    AddFloat64,
		Mul:    MulFloat64,
	}
}

// AddFloat64 performs z[i] = x[i] + y[i].
func AddFloat64(x, y, z []float64) {
	n := len(x)
	y = y[:n]
	z = z[:n]
	m := n % MapM
	for i := 0; i < m; i++ {
		z[i] = x[i] + y[i]
	}
	for i := m; i < n; i += MapM {
		z[i] = x[i] + y[i]
		z[i+1] = x[i+1] + y[i+1]
		z[i+2] = x[i+2] + y[i+2]
		z[i+3] = x[i+3] + y[i+3]
	}
}

// MulFloat64 performs z[i] = x[i] * y[i].
func MulFloat64(x, y, z []float64) {
	n := len(x)
	y = y[:n]
	z = z[:n]
	m := n % MapM
	for i := 0; i < m; i++ {
		z[i] = x[i] * y[i]
	}
	for i := m; i < n; i += MapM {
		z[i] = x[i] * y[i]
		z[i+1] = x[i+1] * y[i+1]
		z[i+2] = x[i+2] * y[i+2]
		z[i+3] = x[i+3] * y[i+3]
	}
}
