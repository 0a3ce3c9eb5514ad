package kernel

import "github.com/cwbudde/algo-strided/accessor"

// Swap exchanges n elements of x and y and returns y.
func Swap[T any](n int, x []T, sx, ox int, y []T, sy, oy int) []T {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += sx
		iy += sy
	}
	return y
}

// SwapAccessor is Swap over accessor-backed buffers.
func SwapAccessor[T any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[T], sy, oy int) accessor.Accessor[T] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		tmp := x.Get(ix)
		x.Set(ix, y.Get(iy))
		y.Set(iy, tmp)
		ix += sx
		iy += sy
	}
	return y
}

// Copy copies n elements of x into y and returns y.
func Copy[T any](n int, x []T, sx, ox int, y []T, sy, oy int) []T {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += sx
		iy += sy
	}
	return y
}

// CopyAccessor is Copy over accessor-backed buffers.
func CopyAccessor[T any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[T], sy, oy int) accessor.Accessor[T] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		y.Set(iy, x.Get(ix))
		ix += sx
		iy += sy
	}
	return y
}

// Fill sets n elements of x to v and returns x.
func Fill[T any](n int, v T, x []T, sx, ox int) []T {
	ix := ox
	for i := 0; i < n; i++ {
		x[ix] = v
		ix += sx
	}
	return x
}

// FillAccessor is Fill over an accessor-backed buffer.
func FillAccessor[T any](n int, v T, x accessor.Accessor[T], sx, ox int) accessor.Accessor[T] {
	ix := ox
	for i := 0; i < n; i++ {
		x.Set(ix, v)
		ix += sx
	}
	return x
}
