package accessor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceAccessor(t *testing.T) {
	buf := []float64{1, 2, 3}
	acc := Slice[float64](buf)

	require.Equal(t, 3, acc.Len())
	require.Equal(t, 2.0, acc.Get(1))

	acc.Set(1, 9)
	require.Equal(t, 9.0, buf[1], "Set must write through to the caller's slice")
}

func TestComplex128sPacksBothWords(t *testing.T) {
	buf := Complex128s{1, 2, 3, 4}
	require.Equal(t, 2, buf.Len())
	require.Equal(t, complex(3, 4), buf.Get(1))

	buf.Set(0, complex(-5, 6))
	require.Equal(t, Complex128s{-5, 6, 3, 4}, buf)
}

func TestComplex64sPacksBothWords(t *testing.T) {
	buf := Complex64s{1, 2, 3, 4, 5}
	require.Equal(t, 2, buf.Len(), "trailing odd word is not an element")

	buf.Set(1, complex64(complex(7, 8)))
	require.Equal(t, Complex64s{1, 2, 7, 8, 5}, buf)
	require.Equal(t, complex64(complex(1, 2)), buf.Get(0))
}

func TestFloat16sRoundTrip(t *testing.T) {
	buf := NewFloat16s(1, 0.5, -2)
	require.Equal(t, float32(0.5), buf.Get(1))

	buf.Set(2, 3.25)
	require.Equal(t, float32(3.25), buf.Get(2))

	// 1/3 is not representable; the stored value is the nearest half.
	buf.Set(0, 1.0/3)
	require.InDelta(t, 1.0/3, float64(buf.Get(0)), 1e-3)
}

func TestBools(t *testing.T) {
	buf := Bools{true, false}
	require.Equal(t, uint8(1), buf.Get(0))
	require.Equal(t, uint8(0), buf.Get(1))

	buf.Set(1, 7)
	require.True(t, buf[1])
}

func TestFuncs(t *testing.T) {
	store := map[int]int32{}
	f := Funcs[int32]{
		N:       4,
		GetFunc: func(i int) int32 { return store[i] },
		SetFunc: func(i int, v int32) { store[i] = v },
	}
	f.Set(2, 11)
	require.Equal(t, int32(11), f.Get(2))
	require.Equal(t, 4, f.Len())

	ro := Funcs[int32]{N: 1, GetFunc: func(int) int32 { return 0 }}
	requirePanicsWith(t, ErrReadOnly, func() { ro.Set(0, 1) })
}

func TestWritable(t *testing.T) {
	get := func(int) float64 { return 0 }
	require.True(t, Writable([]float64{1}))
	require.True(t, Writable(Slice[int8]{1}))
	require.True(t, Writable(Complex128s{1, 2}))
	require.True(t, Writable(Funcs[float64]{N: 1, GetFunc: get, SetFunc: func(int, float64) {}}))
	require.False(t, Writable(Funcs[float64]{N: 1, GetFunc: get}))
	require.False(t, Writable(NewReaderAt[float64](bytes.NewReader(nil), 0)))
}

func TestResolve(t *testing.T) {
	acc, err := Resolve[float64]([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, acc.Len())

	c := Complex128s{1, 2}
	cacc, err := Resolve[complex128](c)
	require.NoError(t, err)
	require.Equal(t, complex(1, 2), cacc.Get(0))

	_, err = Resolve[float64]([]float32{1})
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Resolve[float32](c)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestPlain(t *testing.T) {
	s, ok := Plain[int8]([]int8{1})
	require.True(t, ok)
	require.Len(t, s, 1)

	s, ok = Plain[int8](Slice[int8]{1, 2})
	require.True(t, ok)
	require.Len(t, s, 2)

	_, ok = Plain[complex128](Complex128s{1, 2})
	require.False(t, ok)
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name string
		buf  any
		want Info
	}{
		{"float64", []float64{1, 2}, Info{Float64, Float64, KindPlain, 2}},
		{"slice wrapper", Slice[int32]{1}, Info{Int32, Int32, KindPlain, 1}},
		{"uint8", []uint8{1, 2, 3}, Info{Uint8, Uint8, KindPlain, 3}},
		{"complex128 native", []complex128{1}, Info{Complex128, Complex128, KindPlain, 1}},
		{"complex128 interleaved", Complex128s{1, 2, 3, 4}, Info{Float64, Complex128, KindAccessor, 2}},
		{"complex64 interleaved", Complex64s{1, 2}, Info{Float32, Complex64, KindAccessor, 1}},
		{"float16", NewFloat16s(1, 2), Info{Float16, Float32, KindAccessor, 2}},
		{"bools", Bools{true}, Info{Bool, Uint8, KindAccessor, 1}},
		{"funcs", Funcs[float64]{N: 3}, Info{Float64, Float64, KindAccessor, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Inspect(tt.buf)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := Inspect(nil)
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = Inspect([]string{"x"})
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = Inspect(42.0)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDType(t *testing.T) {
	require.Equal(t, "float16", Float16.String())
	require.Equal(t, 16, Complex128.ByteSize())
	require.True(t, Complex64.IsComplex())
	require.False(t, Float64.IsComplex())
	require.True(t, Float16.IsFloat())
	require.Equal(t, Int16, DTypeFor[int16]())
	require.Equal(t, Generic, DTypeFor[string]())

	d, err := ParseDType("uint32")
	require.NoError(t, err)
	require.Equal(t, Uint32, d)

	_, err = ParseDType("float128")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestReaderAt(t *testing.T) {
	var raw bytes.Buffer
	for _, v := range []float64{1.5, -2, math.Pi} {
		require.NoError(t, binary.Write(&raw, binary.LittleEndian, v))
	}
	r := bytes.NewReader(raw.Bytes())

	acc := NewReaderAtBytes[float64](r, raw.Len())
	require.Equal(t, 3, acc.Len())
	require.Equal(t, 8, acc.ElemSize())
	require.Equal(t, -2.0, acc.Get(1))
	require.Equal(t, math.Pi, acc.Get(2))

	requirePanicsWith(t, ErrReadOnly, func() { acc.Set(0, 1) })
	require.Panics(t, func() { acc.Get(3) })

	var ints bytes.Buffer
	require.NoError(t, binary.Write(&ints, binary.LittleEndian, []int16{-3, 4}))
	iacc := NewReaderAt[int16](bytes.NewReader(ints.Bytes()), 2)
	require.Equal(t, int16(-3), iacc.Get(0))
	require.Equal(t, int16(4), iacc.Get(1))
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
	}()
	fn()
}
