// Package contig runs unit-stride float64 kernels through the best
// implementation registered for the current CPU.
//
// Selection happens once, on first use, from cpu.DetectFeatures(). Tests and
// diagnostics can force the pure Go variant with
// cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true}) followed by
// ResetSelection.
package contig

import (
	"sync"

	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	impl     *registry.OpEntry
	implOnce sync.Once
	implMu   sync.Mutex
)

func initImpl() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("contig: no implementation registered (missing generic fallback?)")
	}
	if entry.Copy == nil || entry.Swap == nil || entry.Scale == nil ||
		entry.Axpy == nil || entry.Dot == nil || entry.Sum == nil ||
		entry.Asum == nil || entry.Rot == nil || entry.CumSum == nil ||
		entry.Add == nil || entry.Mul == nil {
		panic("contig: selected implementation " + entry.Name + " is incomplete")
	}
	impl = entry
}

func current() *registry.OpEntry {
	implMu.Lock()
	implOnce.Do(initImpl)
	e := impl
	implMu.Unlock()
	return e
}

// Selected returns the active implementation entry.
func Selected() registry.OpEntry {
	return *current()
}

// ResetSelection discards the cached selection so the next call looks up the
// registry again. Intended for tests.
func ResetSelection() {
	implMu.Lock()
	implOnce = sync.Once{}
	impl = nil
	implMu.Unlock()
}

// Entries lists the registered implementations.
func Entries() []registry.OpEntry {
	return registry.Global.ListEntries()
}

// Copy performs y[i] = x[i] for i < len(x).
func Copy(x, y []float64) { current().Copy(x, y) }

// Swap exchanges x[i] and y[i] for i < len(x).
func Swap(x, y []float64) { current().Swap(x, y) }

// Scale performs x[i] *= alpha.
func Scale(alpha float64, x []float64) { current().Scale(alpha, x) }

// Axpy performs y[i] += alpha*x[i].
func Axpy(alpha float64, x, y []float64) { current().Axpy(alpha, x, y) }

// Dot returns sum(x[i]*y[i]).
func Dot(x, y []float64) float64 { return current().Dot(x, y) }

// Sum returns sum(x[i]).
func Sum(x []float64) float64 { return current().Sum(x) }

// Asum returns sum(|x[i]|).
func Asum(x []float64) float64 { return current().Asum(x) }

// Rot applies the plane rotation (c, s) to (x[i], y[i]).
func Rot(x, y []float64, c, s float64) { current().Rot(x, y, c, s) }

// CumSum writes sum + x[0] + ... + x[i] into y[i].
func CumSum(sum float64, x, y []float64) { current().CumSum(sum, x, y) }

// Add performs z[i] = x[i] + y[i].
func Add(x, y, z []float64) { current().Add(x, y, z) }

// Mul performs z[i] = x[i] * y[i].
func Mul(x, y, z []float64) { current().Mul(x, y, z) }
