package kernel

import "github.com/cwbudde/algo-strided/accessor"

// Callback intercepts an input value before it reaches the map function.
// k is the logical position and index the buffer index of the value.
// Returning false skips position k and leaves the output there unchanged.
type Callback[T any] func(v T, k, index int) (T, bool)

// Callback2 is the two-input form of Callback. ix and iy are the buffer
// indices of a and b.
type Callback2[T, U any] func(a T, b U, k, ix, iy int) (T, U, bool)

// Unary writes f(x[k]) into y[k] and returns y.
func Unary[T, U any](n int, x []T, sx, ox int, y []U, sy, oy int, f func(T) U) []U {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		y[iy] = f(x[ix])
		ix += sx
		iy += sy
	}
	return y
}

// UnaryAccessor is Unary over accessor-backed buffers.
func UnaryAccessor[T, U any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[U], sy, oy int, f func(T) U) accessor.Accessor[U] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		y.Set(iy, f(x.Get(ix)))
		ix += sx
		iy += sy
	}
	return y
}

// Binary writes f(x[k], y[k]) into z[k] and returns z.
func Binary[T, U, V any](n int, x []T, sx, ox int, y []U, sy, oy int, z []V, sz, oz int, f func(T, U) V) []V {
	ix, iy, iz := ox, oy, oz
	for i := 0; i < n; i++ {
		z[iz] = f(x[ix], y[iy])
		ix += sx
		iy += sy
		iz += sz
	}
	return z
}

// BinaryAccessor is Binary over accessor-backed buffers.
func BinaryAccessor[T, U, V any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[U], sy, oy int, z accessor.Accessor[V], sz, oz int, f func(T, U) V) accessor.Accessor[V] {
	ix, iy, iz := ox, oy, oz
	for i := 0; i < n; i++ {
		z.Set(iz, f(x.Get(ix), y.Get(iy)))
		ix += sx
		iy += sy
		iz += sz
	}
	return z
}

// MaskedUnary writes f(x[k]) into y[k] wherever mask[k] is zero. Positions
// with a nonzero mask keep their previous value. Returns y.
func MaskedUnary[T, U any](n int, x []T, sx, ox int, mask []uint8, sm, om int, y []U, sy, oy int, f func(T) U) []U {
	ix, im, iy := ox, om, oy
	for i := 0; i < n; i++ {
		if mask[im] == 0 {
			y[iy] = f(x[ix])
		}
		ix += sx
		im += sm
		iy += sy
	}
	return y
}

// MaskedUnaryAccessor is MaskedUnary over accessor-backed buffers.
func MaskedUnaryAccessor[T, U any](n int, x accessor.Accessor[T], sx, ox int, mask accessor.Accessor[uint8], sm, om int, y accessor.Accessor[U], sy, oy int, f func(T) U) accessor.Accessor[U] {
	ix, im, iy := ox, om, oy
	for i := 0; i < n; i++ {
		if mask.Get(im) == 0 {
			y.Set(iy, f(x.Get(ix)))
		}
		ix += sx
		im += sm
		iy += sy
	}
	return y
}

// MaskedBinary writes f(x[k], y[k]) into z[k] wherever mask[k] is zero.
// Positions with a nonzero mask keep their previous value. Returns z.
func MaskedBinary[T, U, V any](n int, x []T, sx, ox int, y []U, sy, oy int, mask []uint8, sm, om int, z []V, sz, oz int, f func(T, U) V) []V {
	ix, iy, im, iz := ox, oy, om, oz
	for i := 0; i < n; i++ {
		if mask[im] == 0 {
			z[iz] = f(x[ix], y[iy])
		}
		ix += sx
		iy += sy
		im += sm
		iz += sz
	}
	return z
}

// MaskedBinaryAccessor is MaskedBinary over accessor-backed buffers.
func MaskedBinaryAccessor[T, U, V any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[U], sy, oy int, mask accessor.Accessor[uint8], sm, om int, z accessor.Accessor[V], sz, oz int, f func(T, U) V) accessor.Accessor[V] {
	ix, iy, im, iz := ox, oy, om, oz
	for i := 0; i < n; i++ {
		if mask.Get(im) == 0 {
			z.Set(iz, f(x.Get(ix), y.Get(iy)))
		}
		ix += sx
		iy += sy
		im += sm
		iz += sz
	}
	return z
}

// MapBy passes each x[k] through clbk and writes f of the result into y[k].
// Positions clbk rejects keep their previous value. A nil clbk passes values
// through unchanged. Returns y.
func MapBy[T, U any](n int, x []T, sx, ox int, y []U, sy, oy int, f func(T) U, clbk Callback[T]) []U {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		v := x[ix]
		ok := true
		if clbk != nil {
			v, ok = clbk(v, i, ix)
		}
		if ok {
			y[iy] = f(v)
		}
		ix += sx
		iy += sy
	}
	return y
}

// MapByAccessor is MapBy over accessor-backed buffers.
func MapByAccessor[T, U any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[U], sy, oy int, f func(T) U, clbk Callback[T]) accessor.Accessor[U] {
	ix, iy := ox, oy
	for i := 0; i < n; i++ {
		v := x.Get(ix)
		ok := true
		if clbk != nil {
			v, ok = clbk(v, i, ix)
		}
		if ok {
			y.Set(iy, f(v))
		}
		ix += sx
		iy += sy
	}
	return y
}

// BinaryBy is the two-input form of MapBy. Returns z.
func BinaryBy[T, U, V any](n int, x []T, sx, ox int, y []U, sy, oy int, z []V, sz, oz int, f func(T, U) V, clbk Callback2[T, U]) []V {
	ix, iy, iz := ox, oy, oz
	for i := 0; i < n; i++ {
		a, b := x[ix], y[iy]
		ok := true
		if clbk != nil {
			a, b, ok = clbk(a, b, i, ix, iy)
		}
		if ok {
			z[iz] = f(a, b)
		}
		ix += sx
		iy += sy
		iz += sz
	}
	return z
}

// BinaryByAccessor is BinaryBy over accessor-backed buffers.
func BinaryByAccessor[T, U, V any](n int, x accessor.Accessor[T], sx, ox int, y accessor.Accessor[U], sy, oy int, z accessor.Accessor[V], sz, oz int, f func(T, U) V, clbk Callback2[T, U]) accessor.Accessor[V] {
	ix, iy, iz := ox, oy, oz
	for i := 0; i < n; i++ {
		a, b := x.Get(ix), y.Get(iy)
		ok := true
		if clbk != nil {
			a, b, ok = clbk(a, b, i, ix, iy)
		}
		if ok {
			z.Set(iz, f(a, b))
		}
		ix += sx
		iy += sy
		iz += sz
	}
	return z
}
