package blas

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/blas/gonum"

	"github.com/cwbudde/algo-strided/internal/testutil"
)

// gonum's reference implementation serves as the oracle. Its simple-form
// offsets for negative increments match stride.Offset.
var ref gonum.Implementation

var incPairs = [][2]int{{1, 1}, {2, 1}, {1, 3}, {-1, 1}, {2, -2}, {-3, -1}}

func bufLen(n, inc int) int {
	if n <= 0 {
		return 1
	}
	if inc < 0 {
		inc = -inc
	}
	return (n-1)*inc + 1
}

func TestGonumParityTwoVector(t *testing.T) {
	for _, n := range testutil.Sizes {
		for _, inc := range incPairs {
			incX, incY := inc[0], inc[1]
			t.Run(fmt.Sprintf("N=%d/incX=%d/incY=%d", n, incX, incY), func(t *testing.T) {
				x := testutil.DeterministicNoise(int64(n)+1, 10, bufLen(n, incX))
				y := testutil.DeterministicNoise(int64(n)+2, 10, bufLen(n, incY))
				tol := 1e-12 * float64(n+1)

				x1, y1, x2, y2 := slices.Clone(x), slices.Clone(y), slices.Clone(x), slices.Clone(y)
				Dswap(n, x1, incX, y1, incY)
				ref.Dswap(n, x2, incX, y2, incY)
				testutil.RequireSliceEqual(t, x1, x2)
				testutil.RequireSliceEqual(t, y1, y2)

				y1, y2 = slices.Clone(y), slices.Clone(y)
				Dcopy(n, x, incX, y1, incY)
				ref.Dcopy(n, x, incX, y2, incY)
				testutil.RequireSliceEqual(t, y1, y2)

				y1, y2 = slices.Clone(y), slices.Clone(y)
				Daxpy(n, -0.3, x, incX, y1, incY)
				ref.Daxpy(n, -0.3, x, incX, y2, incY)
				testutil.RequireSliceNearlyEqual(t, y1, y2, tol)

				if got, want := Ddot(n, x, incX, y, incY), ref.Ddot(n, x, incX, y, incY); math.Abs(got-want) > tol*100 {
					t.Fatalf("Ddot = %v, want %v", got, want)
				}

				x1, y1, x2, y2 = slices.Clone(x), slices.Clone(y), slices.Clone(x), slices.Clone(y)
				Drot(n, x1, incX, y1, incY, 0.6, -0.8)
				ref.Drot(n, x2, incX, y2, incY, 0.6, -0.8)
				testutil.RequireSliceNearlyEqual(t, x1, x2, tol)
				testutil.RequireSliceNearlyEqual(t, y1, y2, tol)
			})
		}
	}
}

func TestGonumParitySingleVector(t *testing.T) {
	for _, n := range testutil.Sizes {
		for _, incX := range []int{1, 2, 5} {
			t.Run(fmt.Sprintf("N=%d/incX=%d", n, incX), func(t *testing.T) {
				x := testutil.DeterministicNoise(int64(n)+7, 3, bufLen(n, incX))
				tol := 1e-12 * float64(n+1)

				x1, x2 := slices.Clone(x), slices.Clone(x)
				Dscal(n, 1.5, x1, incX)
				ref.Dscal(n, 1.5, x2, incX)
				testutil.RequireSliceNearlyEqual(t, x1, x2, tol)

				if got, want := Dasum(n, x, incX), ref.Dasum(n, x, incX); math.Abs(got-want) > tol*10 {
					t.Fatalf("Dasum = %v, want %v", got, want)
				}
				if got, want := Dnrm2(n, x, incX), ref.Dnrm2(n, x, incX); math.Abs(got-want) > 1e-14*(want+1) {
					t.Fatalf("Dnrm2 = %v, want %v", got, want)
				}
				if got, want := Idamax(n, x, incX), ref.Idamax(n, x, incX); got != want {
					t.Fatalf("Idamax = %d, want %d", got, want)
				}
			})
		}
	}
}

func TestGonumParityDrotg(t *testing.T) {
	cases := [][2]float64{{0, 2}, {3, 4}, {-4, 3}, {1e-310, 3e-310}, {1e300, -1e300}, {-5, 0}, {0, 0}, {7, 7}}
	for _, ab := range cases {
		c, s, r, z := ref.Drotg(ab[0], ab[1])
		g := Drotg(ab[0], ab[1])
		if g.C != c || g.S != s || g.R != r || g.Z != z {
			t.Fatalf("Drotg(%v, %v) = %+v, want {R:%v Z:%v C:%v S:%v}", ab[0], ab[1], g, r, z, c, s)
		}
	}
}
