package strided

import (
	"fmt"
	"reflect"

	"github.com/cwbudde/algo-strided/accessor"
)

// operand is one strided buffer argument.
type operand struct {
	name   string
	buf    any
	stride int
	offset int
}

func arg(name string, buf any, stride, offset int) operand {
	return operand{name: name, buf: buf, stride: stride, offset: offset}
}

type lengther interface{ Len() int }

func arrayLike(buf any) bool {
	if buf == nil {
		return false
	}
	if _, ok := buf.(lengther); ok {
		return true
	}
	return reflect.TypeOf(buf).Kind() == reflect.Slice
}

// elemType checks that every operand is array-like and that all of them
// share one element type, which it returns.
func elemType(op string, ops ...operand) (accessor.DType, error) {
	var elem accessor.DType
	for i, o := range ops {
		if !arrayLike(o.buf) {
			return 0, fmt.Errorf("%w: %s: operand %s is %T, not array-like", ErrInvalidArgumentType, op, o.name, o.buf)
		}
		info, err := accessor.Inspect(o.buf)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: operand %s: %v", ErrUnsupportedOperand, op, o.name, err)
		}
		if i == 0 {
			elem = info.Elem
			continue
		}
		if info.Elem != elem {
			return 0, fmt.Errorf("%w: %s: operand %s holds %s, operand %s holds %s",
				ErrTypeMismatch, op, o.name, info.Elem, ops[0].name, elem)
		}
	}
	return elem, nil
}

// writable rejects read-only output operands before any element is touched.
func writable(op string, outs ...operand) error {
	for _, o := range outs {
		if !accessor.Writable(o.buf) {
			return fmt.Errorf("%w: %s: operand %s is read-only: %w", ErrInvalidArgumentType, op, o.name, accessor.ErrReadOnly)
		}
	}
	return nil
}

// plainAll returns the operands as []T when every one of them is a plain
// slice.
func plainAll[T any](ops ...operand) ([][]T, bool) {
	out := make([][]T, len(ops))
	for i, o := range ops {
		s, ok := accessor.Plain[T](o.buf)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// accessAll resolves every operand as an Accessor[T].
func accessAll[T any](op string, ops ...operand) ([]accessor.Accessor[T], error) {
	out := make([]accessor.Accessor[T], len(ops))
	for i, o := range ops {
		a, err := accessor.Resolve[T](o.buf)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: operand %s: %v", ErrUnsupportedOperand, op, o.name, err)
		}
		out[i] = a
	}
	return out, nil
}

// mask is a resolved mask operand. Exactly one of plain and acc is set.
type mask struct {
	plain []uint8
	acc   accessor.Accessor[uint8]
}

func (m mask) asAccessor() accessor.Accessor[uint8] {
	if m.acc != nil {
		return m.acc
	}
	return accessor.Slice[uint8](m.plain)
}

// resolveMask accepts []uint8, []bool and uint8 accessors.
func resolveMask(op string, o operand) (mask, error) {
	if !arrayLike(o.buf) {
		return mask{}, fmt.Errorf("%w: %s: mask is %T, not array-like", ErrInvalidArgumentType, op, o.buf)
	}
	if p, ok := accessor.Plain[uint8](o.buf); ok {
		return mask{plain: p}, nil
	}
	switch b := o.buf.(type) {
	case []bool:
		return mask{acc: accessor.Bools(b)}, nil
	case accessor.Accessor[uint8]:
		return mask{acc: b}, nil
	}
	return mask{}, fmt.Errorf("%w: %s: mask is %T, want uint8 or bool elements", ErrTypeMismatch, op, o.buf)
}

// unitStride reports whether the contiguous fast path applies.
func (c Config) unitStride(ops ...operand) bool {
	if !c.ContiguousFastPath {
		return false
	}
	for _, o := range ops {
		if o.stride != 1 {
			return false
		}
	}
	return true
}
