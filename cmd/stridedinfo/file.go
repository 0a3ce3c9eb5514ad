package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-strided/accessor"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
	"golang.org/x/exp/mmap"
)

type request struct {
	path   string
	dtype  accessor.DType
	n      int // < 0 selects as many elements as fit
	stride int
	offset int // < 0 derives the offset from n and stride
	op     string
}

// reduceFile maps req.path read-only and runs req.op over the requested view.
func reduceFile(w io.Writer, req request) error {
	r, err := mmap.Open(req.path)
	if err != nil {
		return err
	}
	defer r.Close()

	x, err := widen(r, r.Len(), req.dtype)
	if err != nil {
		return err
	}
	v, err := resolveView(req, x.Len())
	if err != nil {
		return err
	}
	return reduce(w, x, v, req.op)
}

// widen exposes the little-endian elements of r as float64 values.
func widen(r io.ReaderAt, byteLen int, dt accessor.DType) (accessor.Funcs[float64], error) {
	switch dt {
	case accessor.Float64:
		return widenAs(accessor.NewReaderAtBytes[float64](r, byteLen)), nil
	case accessor.Float32:
		return widenAs(accessor.NewReaderAtBytes[float32](r, byteLen)), nil
	case accessor.Int64:
		return widenAs(accessor.NewReaderAtBytes[int64](r, byteLen)), nil
	case accessor.Int32:
		return widenAs(accessor.NewReaderAtBytes[int32](r, byteLen)), nil
	case accessor.Int16:
		return widenAs(accessor.NewReaderAtBytes[int16](r, byteLen)), nil
	case accessor.Int8:
		return widenAs(accessor.NewReaderAtBytes[int8](r, byteLen)), nil
	case accessor.Uint64:
		return widenAs(accessor.NewReaderAtBytes[uint64](r, byteLen)), nil
	case accessor.Uint32:
		return widenAs(accessor.NewReaderAtBytes[uint32](r, byteLen)), nil
	case accessor.Uint16:
		return widenAs(accessor.NewReaderAtBytes[uint16](r, byteLen)), nil
	case accessor.Uint8:
		return widenAs(accessor.NewReaderAtBytes[uint8](r, byteLen)), nil
	}
	return accessor.Funcs[float64]{}, fmt.Errorf("dtype %s cannot be read from a file", dt)
}

func widenAs[T accessor.Fixed](src *accessor.ReaderAt[T]) accessor.Funcs[float64] {
	return accessor.Funcs[float64]{
		N:       src.Len(),
		GetFunc: func(i int) float64 { return float64(src.Get(i)) },
	}
}

// resolveView fills in the defaults for n and offset and checks that the
// view stays inside a buffer of length elements.
func resolveView(req request, length int) (stride.View, error) {
	s := req.stride
	if s == 0 {
		return stride.View{}, stride.ErrZeroStride
	}
	n := req.n
	if n < 0 {
		n = fitting(length, s, req.offset)
	}
	var v stride.View
	if req.offset < 0 {
		v = stride.New(n, s)
	} else {
		v = stride.At(n, s, req.offset)
	}
	if err := stride.Validate(v, length); err != nil {
		return stride.View{}, err
	}
	return v, nil
}

func reduce(w io.Writer, x accessor.Accessor[float64], v stride.View, op string) error {
	switch strings.ToLower(op) {
	case "sum":
		_, err := fmt.Fprintf(w, "%g\n", kernel.SumAccessor(v.N, x, v.Stride, v.Offset))
		return err
	case "asum":
		_, err := fmt.Fprintf(w, "%g\n", kernel.AsumAccessor(v.N, x, v.Stride, v.Offset))
		return err
	case "nrm2":
		_, err := fmt.Fprintf(w, "%g\n", kernel.Nrm2Accessor(v.N, x, v.Stride, v.Offset))
		return err
	case "iamax":
		_, err := fmt.Fprintf(w, "%d\n", kernel.IamaxAccessor(v.N, x, v.Stride, v.Offset))
		return err
	case "cumsum":
		if v.N <= 0 {
			return nil
		}
		y := make(accessor.Slice[float64], v.N)
		kernel.CumSumAccessor[float64](v.N, 0, x, v.Stride, v.Offset, y, 1, 0)
		for _, s := range y {
			if _, err := fmt.Fprintf(w, "%g\n", s); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown op %q (want sum, asum, nrm2, iamax or cumsum)", op)
}

// fitting returns the largest n whose view stays inside length elements.
// A negative offset stands for the simple-form start.
func fitting(length, s, offset int) int {
	if offset < 0 {
		if s < 0 {
			s = -s
		}
		return (length + s - 1) / s
	}
	if offset >= length {
		return 0
	}
	if s > 0 {
		return (length-1-offset)/s + 1
	}
	return offset/(-s) + 1
}
