package stride

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrZeroStride indicates a zero stride on a view with more than one element.
	ErrZeroStride = errors.New("stride: stride must be nonzero when N > 1")
	// ErrNegativeOffset indicates a view whose offset is below zero.
	ErrNegativeOffset = errors.New("stride: offset must be nonnegative")
	// ErrOutOfBounds indicates a view that reaches outside its buffer.
	ErrOutOfBounds = errors.New("stride: view exceeds buffer bounds")
)

// Offset returns the starting index of a simple-form view of n elements with
// the given stride.
//
// For stride > 0 the view starts at index 0. For stride < 0 it starts at
// (1-n)*stride, the last element, so that every visited index is
// nonnegative. n <= 0 returns 0.
func Offset(n, stride int) int {
	if stride > 0 || n <= 0 {
		return 0
	}
	return (1 - n) * stride
}

// View is a logical one-dimensional view over a flat buffer.
type View struct {
	N      int // number of visited elements
	Stride int // signed step between consecutive elements
	Offset int // buffer index of the first visited element
}

// New returns the simple-form view of n elements with the given stride.
func New(n, stride int) View {
	return View{N: n, Stride: stride, Offset: Offset(n, stride)}
}

// At returns the ndarray-form view with an explicit offset.
func At(n, stride, offset int) View {
	return View{N: n, Stride: stride, Offset: offset}
}

// Index returns the buffer index of logical element k.
func (v View) Index(k int) int {
	return v.Offset + k*v.Stride
}

// Last returns the buffer index of the final visited element.
// For an empty view it returns Offset.
func (v View) Last() int {
	if v.N <= 0 {
		return v.Offset
	}
	return v.Offset + (v.N-1)*v.Stride
}

// Reverse returns the view visiting the same elements in reverse order.
func (v View) Reverse() View {
	if v.N <= 0 {
		return v
	}
	return View{N: v.N, Stride: -v.Stride, Offset: v.Last()}
}

// MinIndex returns the smallest buffer index touched by the view.
func (v View) MinIndex() int {
	if v.Stride < 0 {
		return v.Last()
	}
	return v.Offset
}

// MaxIndex returns the largest buffer index touched by the view.
func (v View) MaxIndex() int {
	if v.Stride < 0 {
		return v.Offset
	}
	return v.Last()
}

// IsContiguous reports whether the view walks forward one element at a time.
// Empty and single-element views are contiguous regardless of stride.
func (v View) IsContiguous() bool {
	return v.Stride == 1 || v.N <= 1
}

// Fits reports whether every visited index lies within [0, length).
// Empty views always fit.
func (v View) Fits(length int) bool {
	if v.N <= 0 {
		return true
	}
	return v.MinIndex() >= 0 && v.MaxIndex() < length
}

// All iterates over (k, index) pairs in visitation order.
func (v View) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		idx := v.Offset
		for k := 0; k < v.N; k++ {
			if !yield(k, idx) {
				return
			}
			idx += v.Stride
		}
	}
}

// Indices returns the visited buffer indices in order.
func (v View) Indices() []int {
	if v.N <= 0 {
		return nil
	}
	out := make([]int, v.N)
	idx := v.Offset
	for k := range out {
		out[k] = idx
		idx += v.Stride
	}
	return out
}

// String implements fmt.Stringer.
func (v View) String() string {
	return fmt.Sprintf("View{N: %d, Stride: %d, Offset: %d}", v.N, v.Stride, v.Offset)
}

// AllContiguous reports whether every view is contiguous.
func AllContiguous(views ...View) bool {
	for _, v := range views {
		if !v.IsContiguous() {
			return false
		}
	}
	return true
}

// Validate checks v against a buffer of the given length.
// Kernels never call it; it is a helper for callers handling untrusted views.
func Validate(v View, length int) error {
	if v.N <= 0 {
		return nil
	}
	if v.N > 1 && v.Stride == 0 {
		return ErrZeroStride
	}
	if v.Offset < 0 {
		return ErrNegativeOffset
	}
	if !v.Fits(length) {
		return fmt.Errorf("%w: %s over length %d", ErrOutOfBounds, v, length)
	}
	return nil
}
