package kernel

import (
	"github.com/cwbudde/algo-strided/accessor"
	"github.com/cwbudde/algo-strided/numeric"
)

// Scale multiplies n elements of x by alpha in place and returns x.
func Scale[T numeric.Number](n int, alpha T, x []T, sx, ox int) []T {
	ix := ox
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += sx
	}
	return x
}

// ScaleAccessor is Scale over an accessor-backed buffer.
func ScaleAccessor[T numeric.Number](n int, alpha T, x accessor.Accessor[T], sx, ox int) accessor.Accessor[T] {
	ix := ox
	for i := 0; i < n; i++ {
		x.Set(ix, alpha*x.Get(ix))
		ix += sx
	}
	return x
}

// Axpy computes y += alpha*x over n elements and returns y.
func Axpy[T numeric.Number](n int, alpha T, x []T, sx, ox int, y []T, sy, oy int) []T {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		y[iy] += T(alpha * x[ix])
		ix += sx
		iy += sy
	}
	return y
}

// AxpyAccessor is Axpy over accessor-backed buffers.
func AxpyAccessor[T numeric.Number](n int, alpha T, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[T], sy, oy int) accessor.Accessor[T] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		y.Set(iy, y.Get(iy)+T(alpha*x.Get(ix)))
		ix += sx
		iy += sy
	}
	return y
}

// Rot applies the plane rotation
//
//	x[k], y[k] = c*x[k] + s*y[k], c*y[k] - s*x[k]
//
// to n element pairs and returns y.
func Rot[T numeric.Number](n int, x []T, sx, ox int, y []T, sy, oy int, c, s T) []T {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		x[ix], y[iy] = T(c*x[ix])+T(s*y[iy]), T(c*y[iy])-T(s*x[ix])
		ix += sx
		iy += sy
	}
	return y
}

// RotAccessor is Rot over accessor-backed buffers.
func RotAccessor[T numeric.Number](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[T], sy, oy int, c, s T) accessor.Accessor[T] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		xv, yv := x.Get(ix), y.Get(iy)
		x.Set(ix, T(c*xv)+T(s*yv))
		y.Set(iy, T(c*yv)-T(s*xv))
		ix += sx
		iy += sy
	}
	return y
}

// CumSum writes the running sum sum + x[0] + ... + x[k] into y[k] and
// returns y. x and y may be the same view.
func CumSum[T numeric.Number](n int, sum T, x []T, sx, ox int, y []T, sy, oy int) []T {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		sum += x[ix]
		y[iy] = sum
		ix += sx
		iy += sy
	}
	return y
}

// CumSumAccessor is CumSum over accessor-backed buffers.
func CumSumAccessor[T numeric.Number](n int, sum T, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[T], sy, oy int) accessor.Accessor[T] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		sum += x.Get(ix)
		y.Set(iy, sum)
		ix += sx
		iy += sy
	}
	return y
}

// CumSumKahan is CumSum with Kahan compensated summation.
func CumSumKahan[T numeric.Float](n int, sum T, x []T, sx, ox int, y []T, sy, oy int) []T {
	var comp T
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		v := x[ix] - comp
		t := sum + v
		comp = (t - sum) - v
		sum = t
		y[iy] = sum
		ix += sx
		iy += sy
	}
	return y
}
