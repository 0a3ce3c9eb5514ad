package generic

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-strided/internal/testutil"
)

func TestSwapMatchesLoop(t *testing.T) {
	for _, n := range testutil.Sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(1, 1, n)
			y := testutil.DeterministicNoise(2, 1, n)
			wantX, wantY := append([]float64(nil), y...), append([]float64(nil), x...)

			Swap(x, y)

			testutil.RequireSliceEqual(t, x, wantX)
			testutil.RequireSliceEqual(t, y, wantY)
		})
	}
}

func TestScaleAxpyMatchLoop(t *testing.T) {
	const alpha = 0.37
	for _, n := range testutil.Sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(3, 2, n)
			y := testutil.DeterministicNoise(4, 2, n)

			wantScale := append([]float64(nil), x...)
			for i := range wantScale {
				wantScale[i] *= alpha
			}
			wantAxpy := append([]float64(nil), y...)
			for i := range wantAxpy {
				wantAxpy[i] += float64(alpha * x[i])
			}

			Axpy(alpha, x, y)
			testutil.RequireSliceEqual(t, y, wantAxpy)

			Scale(alpha, x)
			testutil.RequireSliceEqual(t, x, wantScale)
		})
	}
}

func TestReductionsMatchLoop(t *testing.T) {
	for _, n := range testutil.Sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(5, 3, n)
			y := testutil.DeterministicNoise(6, 3, n)

			var dot, sum, asum float64
			for i := range x {
				dot += float64(x[i] * y[i])
				sum += x[i]
				asum += math.Abs(x[i])
			}

			if got := Dot(x, y); math.Float64bits(got) != math.Float64bits(dot) {
				t.Errorf("Dot = %v, want %v", got, dot)
			}
			if got := Sum(x); math.Float64bits(got) != math.Float64bits(sum) {
				t.Errorf("Sum = %v, want %v", got, sum)
			}
			if got := Asum(x); math.Float64bits(got) != math.Float64bits(asum) {
				t.Errorf("Asum = %v, want %v", got, asum)
			}
		})
	}
}

// y = -(alpha*x) rounded cancels to exactly zero only when the product is
// rounded before the add; a fused multiply-add leaves the rounding error.
func TestAxpyRoundsProduct(t *testing.T) {
	alpha := 0.1
	x := []float64{3, 3, 3, 3, 3}
	y := make([]float64, len(x))
	for i := range y {
		y[i] = -float64(alpha * x[i])
	}

	Axpy(alpha, x, y)
	testutil.RequireSliceEqual(t, y, []float64{0, 0, 0, 0, 0})

	if got := Dot([]float64{-1, alpha}, []float64{float64(alpha * 3), 3}); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
}

func TestIntegerKernels(t *testing.T) {
	x := []int32{-3, 1, -4, 1, -5, 9, -2}
	if got := Asum(x); got != 25 {
		t.Errorf("Asum = %d, want 25", got)
	}
	if got := Sum(x); got != -3 {
		t.Errorf("Sum = %d, want -3", got)
	}

	y := make([]int32, len(x))
	CumSum(10, x, y)
	want := []int32{7, 8, 4, 5, 0, 9, 7}
	testutil.RequireSliceEqual(t, y, want)
}

func TestRotMatchesLoop(t *testing.T) {
	c, s := math.Cos(0.3), math.Sin(0.3)
	for _, n := range testutil.Sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := testutil.DeterministicNoise(7, 1, n)
			y := testutil.DeterministicNoise(8, 1, n)
			wantX := make([]float64, n)
			wantY := make([]float64, n)
			for i := range x {
				wantX[i] = float64(c*x[i]) + float64(s*y[i])
				wantY[i] = float64(c*y[i]) - float64(s*x[i])
			}

			Rot(x, y, c, s)

			testutil.RequireSliceEqual(t, x, wantX)
			testutil.RequireSliceEqual(t, y, wantY)
		})
	}
}

func TestCumSumInPlace(t *testing.T) {
	for _, n := range testutil.Sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := testutil.Ramp(1, 1, n)
			want := make([]float64, n)
			sum := 0.5
			for i, v := range x {
				sum += v
				want[i] = sum
			}

			CumSum(0.5, x, x)

			testutil.RequireSliceEqual(t, x, want)
		})
	}
}

func TestMapKernels(t *testing.T) {
	for _, n := range testutil.Sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			x := testutil.Ramp(0, 1, n)
			y := testutil.Ramp(100, -2, n)

			sq := make([]float64, n)
			Unary(x, sq, func(v float64) float64 { return v * v })
			for i := range sq {
				if sq[i] != x[i]*x[i] {
					t.Fatalf("Unary[%d] = %v", i, sq[i])
				}
			}

			sum := make([]float64, n)
			AddFloat64(x, y, sum)
			prod := make([]float64, n)
			MulFloat64(x, y, prod)
			viaBinary := make([]float64, n)
			Binary(x, y, viaBinary, func(a, b float64) float64 { return a + b })
			testutil.RequireSliceEqual(t, sum, viaBinary)
			for i := range prod {
				if prod[i] != x[i]*y[i] {
					t.Fatalf("MulFloat64[%d] = %v", i, prod[i])
				}
			}
		})
	}
}

func TestMaskedBinaryLeavesMaskedUnchanged(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{10, 20, 30, 40, 50}
	mask := []uint8{0, 1, 0, 7, 0}
	z := []float64{-1, -1, -1, -1, -1}

	MaskedBinary(x, y, mask, z, func(a, b float64) float64 { return a + b })

	testutil.RequireSliceEqual(t, z, []float64{11, -1, 33, -1, 55})
}

func TestFillAndCopy(t *testing.T) {
	x := make([]float64, 7)
	Fill(2.5, x)
	y := make([]float64, 9)
	Copy(x, y)
	testutil.RequireSliceEqual(t, y, []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 0, 0})
}

func TestEntryComplete(t *testing.T) {
	e := Entry()
	if e.Name != "generic" || e.Priority != 0 {
		t.Fatalf("unexpected entry %q priority %d", e.Name, e.Priority)
	}
	if e.Copy == nil || e.Swap == nil || e.Scale == nil || e.Axpy == nil ||
		e.Dot == nil || e.Sum == nil || e.Asum == nil || e.Rot == nil ||
		e.CumSum == nil || e.Add == nil || e.Mul == nil {
		t.Fatal("generic entry has nil kernels")
	}
}

func BenchmarkAxpy(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run(sizeStr(n), func(b *testing.B) {
			x := testutil.DeterministicNoise(1, 1, n)
			y := testutil.DeterministicNoise(2, 1, n)
			b.SetBytes(int64(n * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Axpy(1e-9, x, y)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		b.Run(sizeStr(n), func(b *testing.B) {
			x := testutil.DeterministicNoise(1, 1, n)
			y := testutil.DeterministicNoise(2, 1, n)
			b.SetBytes(int64(n * 16))
			b.ResetTimer()
			var sink float64
			for i := 0; i < b.N; i++ {
				sink += Dot(x, y)
			}
			_ = sink
		})
	}
}

func sizeStr(n int) string {
	return fmt.Sprintf("N=%d", n)
}
