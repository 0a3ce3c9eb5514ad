package kernel

import (
	"math"

	"github.com/cwbudde/algo-strided/accessor"
	"github.com/cwbudde/algo-strided/numeric"
)

// Dot returns the sum of x[k]*y[k] over n elements, accumulated in visiting
// order.
func Dot[T numeric.Number](n int, x []T, sx, ox int, y []T, sy, oy int) T {
	var dot T
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		dot += T(x[ix] * y[iy])
		ix += sx
		iy += sy
	}
	return dot
}

// DotAccessor is Dot over accessor-backed buffers.
func DotAccessor[T numeric.Number](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[T], sy, oy int) T {
	var dot T
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		dot += T(x.Get(ix) * y.Get(iy))
		ix += sx
		iy += sy
	}
	return dot
}

// Sum returns the sum of n elements of x.
func Sum[T numeric.Number](n int, x []T, sx, ox int) T {
	var sum T
	ix := ox
	for i := 0; i < n; i++ {
		sum += x[ix]
		ix += sx
	}
	return sum
}

// SumAccessor is Sum over an accessor-backed buffer.
func SumAccessor[T numeric.Number](n int, x accessor.Accessor[T], sx, ox int) T {
	var sum T
	ix := ox
	for i := 0; i < n; i++ {
		sum += x.Get(ix)
		ix += sx
	}
	return sum
}

// Asum returns the sum of |x[k]| over n elements.
func Asum[T numeric.Real](n int, x []T, sx, ox int) T {
	var sum T
	ix := ox
	for i := 0; i < n; i++ {
		v := x[ix]
		if v < 0 {
			v = -v
		}
		sum += v
		ix += sx
	}
	return sum
}

// AsumAccessor is Asum over an accessor-backed buffer.
func AsumAccessor[T numeric.Real](n int, x accessor.Accessor[T], sx, ox int) T {
	var sum T
	ix := ox
	for i := 0; i < n; i++ {
		v := x.Get(ix)
		if v < 0 {
			v = -v
		}
		sum += v
		ix += sx
	}
	return sum
}

// Nrm2 returns the Euclidean norm of n elements of x.
//
// The sum of squares is kept relative to the largest magnitude seen so far,
// so the result neither overflows nor underflows unless the norm itself does.
func Nrm2[T numeric.Float](n int, x []T, sx, ox int) T {
	return nrm2[T](n, func(i int) float64 { return float64(x[i]) }, sx, ox)
}

// Nrm2Accessor is Nrm2 over an accessor-backed buffer.
func Nrm2Accessor[T numeric.Float](n int, x accessor.Accessor[T], sx, ox int) T {
	return nrm2[T](n, func(i int) float64 { return float64(x.Get(i)) }, sx, ox)
}

func nrm2[T numeric.Float](n int, get func(int) float64, sx, ox int) T {
	if n < 1 {
		return 0
	}
	if n == 1 {
		return T(math.Abs(get(ox)))
	}
	scale, ssq := 0.0, 1.0
	ix := ox
	for i := 0; i < n; i++ {
		v := get(ix)
		ix += sx
		if math.IsNaN(v) {
			return T(math.NaN())
		}
		if v == 0 {
			continue
		}
		a := math.Abs(v)
		if scale < a {
			r := scale / a
			ssq = 1 + ssq*r*r
			scale = a
		} else {
			r := a / scale
			ssq += r * r
		}
	}
	if math.IsInf(scale, 1) {
		return T(math.Inf(1))
	}
	return T(scale * math.Sqrt(ssq))
}

// Iamax returns the logical index k of the first element with the largest
// magnitude, or -1 when n <= 0.
func Iamax[T numeric.Real](n int, x []T, sx, ox int) int {
	if n <= 0 {
		return -1
	}
	best, maxAbs := 0, x[ox]
	ix := ox + sx
	for i := 1; i < n; i++ {
		if v := x[ix]; numeric.AbsGreater(v, maxAbs) {
			best, maxAbs = i, v
		}
		ix += sx
	}
	return best
}

// IamaxAccessor is Iamax over an accessor-backed buffer.
func IamaxAccessor[T numeric.Real](n int, x accessor.Accessor[T], sx, ox int) int {
	if n <= 0 {
		return -1
	}
	best, maxAbs := 0, x.Get(ox)
	ix := ox + sx
	for i := 1; i < n; i++ {
		if v := x.Get(ix); numeric.AbsGreater(v, maxAbs) {
			best, maxAbs = i, v
		}
		ix += sx
	}
	return best
}
