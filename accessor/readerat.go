package accessor

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Fixed lists the element types ReaderAt can decode.
type Fixed interface {
	float64 | float32 | int64 | int32 | int16 | int8 | uint64 | uint32 | uint16 | uint8
}

// ReaderAt is a read-only accessor over little-endian elements stored in an
// io.ReaderAt, typically a memory-mapped file.
//
// Get panics if the underlying read fails; Set always panics with ErrReadOnly.
type ReaderAt[T Fixed] struct {
	r    io.ReaderAt
	n    int
	size int
}

// NewReaderAt returns an accessor over the first n elements of r.
func NewReaderAt[T Fixed](r io.ReaderAt, n int) *ReaderAt[T] {
	var zero T
	return &ReaderAt[T]{r: r, n: n, size: binary.Size(zero)}
}

// NewReaderAtBytes returns an accessor over as many whole elements as fit in
// byteLen bytes.
func NewReaderAtBytes[T Fixed](r io.ReaderAt, byteLen int) *ReaderAt[T] {
	var zero T
	size := binary.Size(zero)
	return &ReaderAt[T]{r: r, n: byteLen / size, size: size}
}

// Len returns the number of elements.
func (a *ReaderAt[T]) Len() int { return a.n }

// ElemSize returns the encoded size of one element in bytes.
func (a *ReaderAt[T]) ElemSize() int { return a.size }

// Get decodes element i.
func (a *ReaderAt[T]) Get(i int) T {
	var buf [8]byte
	b := buf[:a.size]
	if _, err := a.r.ReadAt(b, int64(i)*int64(a.size)); err != nil {
		panic(fmt.Errorf("accessor: read element %d: %w", i, err))
	}
	return decodeLE[T](b)
}

// ReadOnly always reports true.
func (a *ReaderAt[T]) ReadOnly() bool { return true }

// Set panics with ErrReadOnly.
func (a *ReaderAt[T]) Set(i int, _ T) {
	panic(fmt.Errorf("%w: set index %d", ErrReadOnly, i))
}

func decodeLE[T Fixed](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(b))
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(b))
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *int8:
		*p = int8(b[0])
	case *uint64:
		*p = binary.LittleEndian.Uint64(b)
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *uint8:
		*p = b[0]
	}
	return v
}
