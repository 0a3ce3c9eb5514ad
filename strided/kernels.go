package strided

import (
	"fmt"

	"github.com/cwbudde/algo-strided/accessor"
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/numeric"
)

// kernels holds the instantiations of every dispatched operation for one
// element type. A nil field means the operation is undefined for that type.
type kernels struct {
	swap   func(cfg Config, n int, x, y operand) (any, error)
	copy   func(cfg Config, n int, x, y operand) (any, error)
	fill   func(cfg Config, n int, v any, x operand) (any, error)
	cumsum func(cfg Config, n int, sum any, x, y operand) (any, error)
	unary  func(cfg Config, n int, x, y operand, fn any) (any, error)
	binary func(cfg Config, n int, x, y, z operand, fn any) (any, error)
	masked func(cfg Config, n int, x, y, m, z operand, fn any) (any, error)
	mapBy  func(cfg Config, n int, x, y operand, fn, clbk any) (any, error)
}

var byDType = map[accessor.DType]kernels{
	accessor.Float64:    numericKernels[float64](),
	accessor.Float32:    numericKernels[float32](),
	accessor.Int64:      numericKernels[int64](),
	accessor.Int32:      numericKernels[int32](),
	accessor.Int16:      numericKernels[int16](),
	accessor.Int8:       numericKernels[int8](),
	accessor.Uint64:     numericKernels[uint64](),
	accessor.Uint32:     numericKernels[uint32](),
	accessor.Uint16:     numericKernels[uint16](),
	accessor.Uint8:      numericKernels[uint8](),
	accessor.Complex128: numericKernels[complex128](),
	accessor.Complex64:  numericKernels[complex64](),
	accessor.Bool:       anyKernels[bool](),
}

func anyKernels[T any]() kernels {
	return kernels{
		swap:   swapOf[T],
		copy:   copyOf[T],
		fill:   fillOf[T],
		unary:  unaryOf[T],
		binary: binaryOf[T],
		masked: maskedBinaryOf[T],
		mapBy:  mapByOf[T],
	}
}

func numericKernels[T numeric.Number]() kernels {
	k := anyKernels[T]()
	k.cumsum = cumsumOf[T]
	return k
}

func lookup(op string, elem accessor.DType, pick func(kernels) bool) (kernels, error) {
	k, ok := byDType[elem]
	if !ok || !pick(k) {
		return kernels{}, fmt.Errorf("%w: %s: no kernel for %s elements", ErrUnsupportedOperand, op, elem)
	}
	return k, nil
}

func swapOf[T any](cfg Config, n int, x, y operand) (any, error) {
	if n <= 0 {
		return y.buf, nil
	}
	if s, ok := plainAll[T](x, y); ok {
		if cfg.unitStride(x, y) {
			xs, ys := s[0][x.offset:x.offset+n], s[1][y.offset:y.offset+n]
			if xf, ok := any(xs).([]float64); ok && !cfg.ForceGeneric {
				contig.Swap(xf, any(ys).([]float64))
			} else {
				generic.Swap(xs, ys)
			}
			return y.buf, nil
		}
		kernel.Swap(n, s[0], x.stride, x.offset, s[1], y.stride, y.offset)
		return y.buf, nil
	}
	a, err := accessAll[T]("swap", x, y)
	if err != nil {
		return nil, err
	}
	kernel.SwapAccessor(n, a[0], x.stride, x.offset, a[1], y.stride, y.offset)
	return y.buf, nil
}

func copyOf[T any](cfg Config, n int, x, y operand) (any, error) {
	if n <= 0 {
		return y.buf, nil
	}
	if s, ok := plainAll[T](x, y); ok {
		if cfg.unitStride(x, y) {
			xs, ys := s[0][x.offset:x.offset+n], s[1][y.offset:y.offset+n]
			if xf, ok := any(xs).([]float64); ok && !cfg.ForceGeneric {
				contig.Copy(xf, any(ys).([]float64))
			} else {
				generic.Copy(xs, ys)
			}
			return y.buf, nil
		}
		kernel.Copy(n, s[0], x.stride, x.offset, s[1], y.stride, y.offset)
		return y.buf, nil
	}
	a, err := accessAll[T]("copy", x, y)
	if err != nil {
		return nil, err
	}
	kernel.CopyAccessor(n, a[0], x.stride, x.offset, a[1], y.stride, y.offset)
	return y.buf, nil
}

func fillOf[T any](cfg Config, n int, v any, x operand) (any, error) {
	tv, ok := v.(T)
	if !ok {
		return nil, fmt.Errorf("%w: fill: value is %T, want %T", ErrInvalidArgumentType, v, *new(T))
	}
	if n <= 0 {
		return x.buf, nil
	}
	if s, ok := plainAll[T](x); ok {
		if cfg.unitStride(x) {
			generic.Fill(tv, s[0][x.offset:x.offset+n])
		} else {
			kernel.Fill(n, tv, s[0], x.stride, x.offset)
		}
		return x.buf, nil
	}
	a, err := accessAll[T]("fill", x)
	if err != nil {
		return nil, err
	}
	kernel.FillAccessor(n, tv, a[0], x.stride, x.offset)
	return x.buf, nil
}

func cumsumOf[T numeric.Number](cfg Config, n int, sum any, x, y operand) (any, error) {
	var init T
	if sum != nil {
		v, ok := sum.(T)
		if !ok {
			return nil, fmt.Errorf("%w: cumsum: initial sum is %T, want %T", ErrInvalidArgumentType, sum, init)
		}
		init = v
	}
	if n <= 0 {
		return y.buf, nil
	}
	if s, ok := plainAll[T](x, y); ok {
		if cfg.unitStride(x, y) {
			xs, ys := s[0][x.offset:x.offset+n], s[1][y.offset:y.offset+n]
			if xf, ok := any(xs).([]float64); ok && !cfg.ForceGeneric {
				contig.CumSum(any(init).(float64), xf, any(ys).([]float64))
			} else {
				generic.CumSum(init, xs, ys)
			}
			return y.buf, nil
		}
		kernel.CumSum(n, init, s[0], x.stride, x.offset, s[1], y.stride, y.offset)
		return y.buf, nil
	}
	a, err := accessAll[T]("cumsum", x, y)
	if err != nil {
		return nil, err
	}
	kernel.CumSumAccessor(n, init, a[0], x.stride, x.offset, a[1], y.stride, y.offset)
	return y.buf, nil
}

func unaryOf[T any](cfg Config, n int, x, y operand, fn any) (any, error) {
	f, ok := fn.(func(T) T)
	if !ok {
		return nil, fmt.Errorf("%w: unary: fn is %T, want %T", ErrInvalidArgumentType, fn, f)
	}
	if n <= 0 {
		return y.buf, nil
	}
	if s, ok := plainAll[T](x, y); ok {
		if cfg.unitStride(x, y) {
			generic.Unary(s[0][x.offset:x.offset+n], s[1][y.offset:y.offset+n], f)
		} else {
			kernel.Unary(n, s[0], x.stride, x.offset, s[1], y.stride, y.offset, f)
		}
		return y.buf, nil
	}
	a, err := accessAll[T]("unary", x, y)
	if err != nil {
		return nil, err
	}
	kernel.UnaryAccessor(n, a[0], x.stride, x.offset, a[1], y.stride, y.offset, f)
	return y.buf, nil
}

func binaryOf[T any](cfg Config, n int, x, y, z operand, fn any) (any, error) {
	f, ok := fn.(func(T, T) T)
	if !ok {
		return nil, fmt.Errorf("%w: binary: fn is %T, want %T", ErrInvalidArgumentType, fn, f)
	}
	if n <= 0 {
		return z.buf, nil
	}
	if s, ok := plainAll[T](x, y, z); ok {
		if cfg.unitStride(x, y, z) {
			generic.Binary(s[0][x.offset:x.offset+n], s[1][y.offset:y.offset+n], s[2][z.offset:z.offset+n], f)
		} else {
			kernel.Binary(n, s[0], x.stride, x.offset, s[1], y.stride, y.offset, s[2], z.stride, z.offset, f)
		}
		return z.buf, nil
	}
	a, err := accessAll[T]("binary", x, y, z)
	if err != nil {
		return nil, err
	}
	kernel.BinaryAccessor(n, a[0], x.stride, x.offset, a[1], y.stride, y.offset, a[2], z.stride, z.offset, f)
	return z.buf, nil
}

func maskedBinaryOf[T any](cfg Config, n int, x, y, m, z operand, fn any) (any, error) {
	f, ok := fn.(func(T, T) T)
	if !ok {
		return nil, fmt.Errorf("%w: masked binary: fn is %T, want %T", ErrInvalidArgumentType, fn, f)
	}
	mk, err := resolveMask("masked binary", m)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return z.buf, nil
	}
	if s, ok := plainAll[T](x, y, z); ok && mk.plain != nil {
		if cfg.unitStride(x, y, m, z) {
			generic.MaskedBinary(s[0][x.offset:x.offset+n], s[1][y.offset:y.offset+n],
				mk.plain[m.offset:m.offset+n], s[2][z.offset:z.offset+n], f)
		} else {
			kernel.MaskedBinary(n, s[0], x.stride, x.offset, s[1], y.stride, y.offset,
				mk.plain, m.stride, m.offset, s[2], z.stride, z.offset, f)
		}
		return z.buf, nil
	}
	a, err := accessAll[T]("masked binary", x, y, z)
	if err != nil {
		return nil, err
	}
	kernel.MaskedBinaryAccessor(n, a[0], x.stride, x.offset, a[1], y.stride, y.offset,
		mk.asAccessor(), m.stride, m.offset, a[2], z.stride, z.offset, f)
	return z.buf, nil
}

func mapByOf[T any](_ Config, n int, x, y operand, fn, clbk any) (any, error) {
	f, ok := fn.(func(T) T)
	if !ok {
		return nil, fmt.Errorf("%w: map-by: fn is %T, want %T", ErrInvalidArgumentType, fn, f)
	}
	var cb kernel.Callback[T]
	switch c := clbk.(type) {
	case nil:
	case kernel.Callback[T]:
		cb = c
	case func(T, int, int) (T, bool):
		cb = c
	default:
		return nil, fmt.Errorf("%w: map-by: callback is %T, want %T", ErrInvalidArgumentType, clbk, cb)
	}
	if n <= 0 {
		return y.buf, nil
	}
	if s, ok := plainAll[T](x, y); ok {
		kernel.MapBy(n, s[0], x.stride, x.offset, s[1], y.stride, y.offset, f, cb)
		return y.buf, nil
	}
	a, err := accessAll[T]("map-by", x, y)
	if err != nil {
		return nil, err
	}
	kernel.MapByAccessor(n, a[0], x.stride, x.offset, a[1], y.stride, y.offset, f, cb)
	return y.buf, nil
}
