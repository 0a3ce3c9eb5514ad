package strided

import (
	"fmt"

	"github.com/cwbudde/algo-strided/accessor"
)

// Swap exchanges n elements of x and y and returns y.
func Swap(n int, x any, sx, ox int, y any, sy, oy int, opts ...Option) (any, error) {
	xo, yo := arg("x", x, sx, ox), arg("y", y, sy, oy)
	elem, err := elemType("swap", xo, yo)
	if err != nil {
		return nil, err
	}
	if err := writable("swap", xo, yo); err != nil {
		return nil, err
	}
	k, err := lookup("swap", elem, func(k kernels) bool { return k.swap != nil })
	if err != nil {
		return nil, err
	}
	return k.swap(ApplyOptions(opts...), n, xo, yo)
}

// Copy copies n elements of x into y and returns y.
func Copy(n int, x any, sx, ox int, y any, sy, oy int, opts ...Option) (any, error) {
	xo, yo := arg("x", x, sx, ox), arg("y", y, sy, oy)
	elem, err := elemType("copy", xo, yo)
	if err != nil {
		return nil, err
	}
	if err := writable("copy", yo); err != nil {
		return nil, err
	}
	k, err := lookup("copy", elem, func(k kernels) bool { return k.copy != nil })
	if err != nil {
		return nil, err
	}
	return k.copy(ApplyOptions(opts...), n, xo, yo)
}

// Fill sets n elements of x to v and returns x. v must have the element
// type of x.
func Fill(n int, v any, x any, sx, ox int, opts ...Option) (any, error) {
	xo := arg("x", x, sx, ox)
	elem, err := elemType("fill", xo)
	if err != nil {
		return nil, err
	}
	if err := writable("fill", xo); err != nil {
		return nil, err
	}
	k, err := lookup("fill", elem, func(k kernels) bool { return k.fill != nil })
	if err != nil {
		return nil, err
	}
	return k.fill(ApplyOptions(opts...), n, v, xo)
}

// CumSum writes sum + x[0] + ... + x[k] into y[k] and returns y. sum must be
// nil (zero) or have the element type of x and y.
func CumSum(n int, sum any, x any, sx, ox int, y any, sy, oy int, opts ...Option) (any, error) {
	xo, yo := arg("x", x, sx, ox), arg("y", y, sy, oy)
	elem, err := elemType("cumsum", xo, yo)
	if err != nil {
		return nil, err
	}
	if err := writable("cumsum", yo); err != nil {
		return nil, err
	}
	k, err := lookup("cumsum", elem, func(k kernels) bool { return k.cumsum != nil })
	if err != nil {
		return nil, err
	}
	return k.cumsum(ApplyOptions(opts...), n, sum, xo, yo)
}

// Unary writes fn(x[k]) into y[k] and returns y. fn must be a func(T) T for
// the shared element type T.
func Unary(n int, x any, sx, ox int, y any, sy, oy int, fn any, opts ...Option) (any, error) {
	xo, yo := arg("x", x, sx, ox), arg("y", y, sy, oy)
	elem, err := elemType("unary", xo, yo)
	if err != nil {
		return nil, err
	}
	if err := writable("unary", yo); err != nil {
		return nil, err
	}
	k, err := lookup("unary", elem, func(k kernels) bool { return k.unary != nil })
	if err != nil {
		return nil, err
	}
	return k.unary(ApplyOptions(opts...), n, xo, yo, fn)
}

// Binary writes fn(x[k], y[k]) into z[k] and returns z. fn must be a
// func(T, T) T.
func Binary(n int, x any, sx, ox int, y any, sy, oy int, z any, sz, oz int, fn any, opts ...Option) (any, error) {
	xo, yo, zo := arg("x", x, sx, ox), arg("y", y, sy, oy), arg("z", z, sz, oz)
	elem, err := elemType("binary", xo, yo, zo)
	if err != nil {
		return nil, err
	}
	if err := writable("binary", zo); err != nil {
		return nil, err
	}
	k, err := lookup("binary", elem, func(k kernels) bool { return k.binary != nil })
	if err != nil {
		return nil, err
	}
	return k.binary(ApplyOptions(opts...), n, xo, yo, zo, fn)
}

// MaskedBinary writes fn(x[k], y[k]) into z[k] wherever mask[k] is zero and
// returns z. Masked positions keep their previous value. The mask may be a
// []uint8, a []bool or any uint8 accessor; it takes no part in the element
// type check.
func MaskedBinary(n int, x any, sx, ox int, y any, sy, oy int, mask any, sm, om int, z any, sz, oz int, fn any, opts ...Option) (any, error) {
	xo, yo, zo := arg("x", x, sx, ox), arg("y", y, sy, oy), arg("z", z, sz, oz)
	elem, err := elemType("masked binary", xo, yo, zo)
	if err != nil {
		return nil, err
	}
	if err := writable("masked binary", zo); err != nil {
		return nil, err
	}
	k, err := lookup("masked binary", elem, func(k kernels) bool { return k.masked != nil })
	if err != nil {
		return nil, err
	}
	return k.masked(ApplyOptions(opts...), n, xo, yo, arg("mask", mask, sm, om), zo, fn)
}

// MapBy passes each x[k] through clbk, then writes fn of the result into
// y[k], and returns y. clbk may be nil, a kernel.Callback[T] or a
// func(T, int, int) (T, bool); positions it rejects keep their previous
// value. Elements are visited in stride order, which clbk may rely on.
func MapBy(n int, x any, sx, ox int, y any, sy, oy int, fn, clbk any, opts ...Option) (any, error) {
	xo, yo := arg("x", x, sx, ox), arg("y", y, sy, oy)
	elem, err := elemType("map-by", xo, yo)
	if err != nil {
		return nil, err
	}
	if err := writable("map-by", yo); err != nil {
		return nil, err
	}
	k, err := lookup("map-by", elem, func(k kernels) bool { return k.mapBy != nil })
	if err != nil {
		return nil, err
	}
	return k.mapBy(ApplyOptions(opts...), n, xo, yo, fn, clbk)
}

// Describe reports how a buffer would be dispatched, for diagnostics.
func Describe(buf any) (string, error) {
	if !arrayLike(buf) {
		return "", fmt.Errorf("%w: %T is not array-like", ErrInvalidArgumentType, buf)
	}
	info, err := accessor.Inspect(buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedOperand, err)
	}
	return fmt.Sprintf("%s (storage %s, %s, len %d)", info.Elem, info.Storage, info.Kind, info.Len), nil
}
