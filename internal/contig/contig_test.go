package contig

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-strided/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func forceGeneric(t *testing.T) {
	t.Helper()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	ResetSelection()
	t.Cleanup(func() {
		cpu.ResetDetection()
		ResetSelection()
	})
}

func TestSelectionPrefersHighestPriority(t *testing.T) {
	ResetSelection()
	defer ResetSelection()

	sel := Selected()
	for _, e := range Entries() {
		if cpu.Supports(cpu.DetectFeatures(), e.SIMDLevel) && e.Priority > sel.Priority {
			t.Fatalf("selected %q (priority %d) but %q (priority %d) is supported",
				sel.Name, sel.Priority, e.Name, e.Priority)
		}
	}
}

func TestForceGenericSelectsGeneric(t *testing.T) {
	forceGeneric(t)

	if got := Selected().Name; got != "generic" {
		t.Fatalf("Selected() = %q, want generic", got)
	}
}

// Every registered variant must agree with the pure Go kernels bit for bit
// on elementwise ops. Reductions may sum in a different order and are
// compared within rounding.
func TestEntriesMatchGeneric(t *testing.T) {
	ref := generic.Entry()
	for _, e := range Entries() {
		if !cpu.Supports(cpu.DetectFeatures(), e.SIMDLevel) {
			continue
		}
		t.Run(e.Name, func(t *testing.T) {
			for _, n := range testutil.Sizes {
				checkEntry(t, e, ref, n)
			}
		})
	}
}

func checkEntry(t *testing.T, got, ref registry.OpEntry, n int) {
	t.Helper()
	const tol = 1e-12

	x := testutil.DeterministicNoise(11, 1, n)
	y := testutil.DeterministicNoise(12, 1, n)

	x1, y1 := clone(x), clone(y)
	x2, y2 := clone(x), clone(y)
	got.Swap(x1, y1)
	ref.Swap(x2, y2)
	testutil.RequireSliceEqual(t, x1, x2)
	testutil.RequireSliceEqual(t, y1, y2)

	c1, c2 := make([]float64, n), make([]float64, n)
	got.Copy(x, c1)
	ref.Copy(x, c2)
	testutil.RequireSliceEqual(t, c1, c2)

	x1, x2 = clone(x), clone(x)
	got.Scale(-1.75, x1)
	ref.Scale(-1.75, x2)
	testutil.RequireSliceEqual(t, x1, x2)

	y1, y2 = clone(y), clone(y)
	got.Axpy(0.5, x, y1)
	ref.Axpy(0.5, x, y2)
	testutil.RequireSliceEqual(t, y1, y2)

	z1, z2 := make([]float64, n), make([]float64, n)
	got.Add(x, y, z1)
	ref.Add(x, y, z2)
	testutil.RequireSliceEqual(t, z1, z2)
	got.Mul(x, y, z1)
	ref.Mul(x, y, z2)
	testutil.RequireSliceEqual(t, z1, z2)

	x1, y1 = clone(x), clone(y)
	x2, y2 = clone(x), clone(y)
	got.Rot(x1, y1, 0.6, 0.8)
	ref.Rot(x2, y2, 0.6, 0.8)
	testutil.RequireSliceEqual(t, x1, x2)
	testutil.RequireSliceEqual(t, y1, y2)

	got.CumSum(1, x, z1)
	ref.CumSum(1, x, z2)
	testutil.RequireSliceEqual(t, z1, z2)

	scale := tol * float64(n+1)
	if d := math.Abs(got.Dot(x, y) - ref.Dot(x, y)); d > scale {
		t.Fatalf("N=%d: Dot differs by %v", n, d)
	}
	if d := math.Abs(got.Sum(x) - ref.Sum(x)); d > scale {
		t.Fatalf("N=%d: Sum differs by %v", n, d)
	}
	if d := math.Abs(got.Asum(x) - ref.Asum(x)); d > scale {
		t.Fatalf("N=%d: Asum differs by %v", n, d)
	}
}

func TestFrontFunctions(t *testing.T) {
	forceGeneric(t)

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{6, 7, 8, 9, 10}

	Swap(x, y)
	testutil.RequireSliceEqual(t, x, []float64{6, 7, 8, 9, 10})
	testutil.RequireSliceEqual(t, y, []float64{1, 2, 3, 4, 5})

	if got := Dot(x, y); got != 130 {
		t.Fatalf("Dot = %v, want 130", got)
	}
	if got := Sum(y); got != 15 {
		t.Fatalf("Sum = %v, want 15", got)
	}
	if got := Asum([]float64{-1, 2, -3}); got != 6 {
		t.Fatalf("Asum = %v, want 6", got)
	}

	Axpy(2, y, x)
	testutil.RequireSliceEqual(t, x, []float64{8, 11, 14, 17, 20})

	Scale(0.5, x)
	testutil.RequireSliceEqual(t, x, []float64{4, 5.5, 7, 8.5, 10})

	z := make([]float64, 5)
	Add(x, y, z)
	testutil.RequireSliceEqual(t, z, []float64{5, 7.5, 10, 12.5, 15})
	Mul(y, y, z)
	testutil.RequireSliceEqual(t, z, []float64{1, 4, 9, 16, 25})

	CumSum(0, y, z)
	testutil.RequireSliceEqual(t, z, []float64{1, 3, 6, 10, 15})

	Copy(y, x)
	testutil.RequireSliceEqual(t, x, y)

	a, b := []float64{1}, []float64{0}
	Rot(a, b, 0, 1)
	testutil.RequireSliceEqual(t, a, []float64{0})
	testutil.RequireSliceEqual(t, b, []float64{-1})
}

func BenchmarkAxpySelected(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	y := testutil.DeterministicNoise(2, 1, 4096)
	b.SetBytes(4096 * 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Axpy(1e-9, x, y)
	}
}

func clone(x []float64) []float64 {
	return append([]float64(nil), x...)
}
