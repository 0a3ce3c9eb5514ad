// Package accessor abstracts element access for buffers that are not plain
// Go slices of the kernel's element type.
//
// Strided kernels are written once against [Accessor] and run unchanged over
// plain slices ([Slice]), interleaved complex storage ([Complex128s],
// [Complex64s]), half-precision storage ([Float16s]), boolean masks
// ([Bools]), read-only file regions ([ReaderAt]) or arbitrary pseudo-arrays
// ([Funcs]).
//
// Index arguments are logical element indices. For composite storage such as
// interleaved complex numbers, one logical element spans several words of the
// underlying slice and Set always overwrites all of them.
package accessor

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates a buffer that cannot be resolved to an
	// accessor of the requested element type.
	ErrTypeMismatch = errors.New("accessor: buffer type mismatch")
	// ErrReadOnly is the panic value wrapped by Set on read-only accessors.
	ErrReadOnly = errors.New("accessor: buffer is read-only")
)

// Accessor provides indexed element access to a buffer.
//
// Get must not mutate the buffer. Set must fully overwrite the logical
// element at i. Neither method checks bounds beyond what the underlying
// storage does.
type Accessor[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
}

// Slice adapts a plain slice to Accessor.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// Get returns element i.
func (s Slice[T]) Get(i int) T { return s[i] }

// Set stores v at element i.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Funcs is a pseudo-array defined by a get/set function pair.
// A nil SetFunc makes the buffer read-only.
type Funcs[T any] struct {
	N       int
	GetFunc func(i int) T
	SetFunc func(i int, v T)
}

// Len returns N.
func (f Funcs[T]) Len() int { return f.N }

// Get calls GetFunc.
func (f Funcs[T]) Get(i int) T { return f.GetFunc(i) }

// Set calls SetFunc, or panics with ErrReadOnly when none is configured.
func (f Funcs[T]) Set(i int, v T) {
	if f.SetFunc == nil {
		panic(fmt.Errorf("%w: set index %d", ErrReadOnly, i))
	}
	f.SetFunc(i, v)
}

// ReadOnly reports whether Set would panic.
func (f Funcs[T]) ReadOnly() bool { return f.SetFunc == nil }

// Writable reports whether buf accepts Set. Buffers that implement
// ReadOnly() bool are asked; everything else is writable.
func Writable(buf any) bool {
	if r, ok := buf.(interface{ ReadOnly() bool }); ok {
		return !r.ReadOnly()
	}
	return true
}

// Resolve returns an Accessor[T] for buf.
//
// A []T is wrapped as Slice[T]; any value already implementing Accessor[T]
// is returned unchanged. Anything else yields ErrTypeMismatch.
func Resolve[T any](buf any) (Accessor[T], error) {
	switch b := buf.(type) {
	case []T:
		return Slice[T](b), nil
	case Accessor[T]:
		return b, nil
	default:
		var zero T
		return nil, fmt.Errorf("%w: %T is not a buffer of %T", ErrTypeMismatch, buf, zero)
	}
}

// Plain returns buf as a []T when it is backed directly by one.
func Plain[T any](buf any) ([]T, bool) {
	switch b := buf.(type) {
	case []T:
		return b, true
	case Slice[T]:
		return []T(b), true
	default:
		return nil, false
	}
}
