package accessor

import "fmt"

// DType identifies the storage or logical element type of a buffer.
type DType uint8

const (
	Generic DType = iota
	Float64
	Float32
	Float16
	Int64
	Int32
	Int16
	Int8
	Uint64
	Uint32
	Uint16
	Uint8
	Bool
	Complex128
	Complex64
)

var dtypeNames = [...]string{
	Generic:    "generic",
	Float64:    "float64",
	Float32:    "float32",
	Float16:    "float16",
	Int64:      "int64",
	Int32:      "int32",
	Int16:      "int16",
	Int8:       "int8",
	Uint64:     "uint64",
	Uint32:     "uint32",
	Uint16:     "uint16",
	Uint8:      "uint8",
	Bool:       "bool",
	Complex128: "complex128",
	Complex64:  "complex64",
}

// String returns the lower-case type name.
func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return fmt.Sprintf("DType(%d)", uint8(d))
}

// ByteSize returns the storage size of one element, or 0 for Generic.
func (d DType) ByteSize() int {
	switch d {
	case Float64, Int64, Uint64, Complex64:
		return 8
	case Float32, Int32, Uint32:
		return 4
	case Float16, Int16, Uint16:
		return 2
	case Int8, Uint8, Bool:
		return 1
	case Complex128:
		return 16
	default:
		return 0
	}
}

// IsComplex reports whether d is a complex type.
func (d DType) IsComplex() bool { return d == Complex128 || d == Complex64 }

// IsFloat reports whether d is a real floating-point type.
func (d DType) IsFloat() bool { return d == Float64 || d == Float32 || d == Float16 }

// ParseDType returns the DType named s.
func ParseDType(s string) (DType, error) {
	for i, name := range dtypeNames {
		if name == s {
			return DType(i), nil
		}
	}
	return Generic, fmt.Errorf("%w: unknown dtype %q", ErrTypeMismatch, s)
}

// Kind tells whether a buffer is a plain slice or needs accessor mediation.
type Kind uint8

const (
	KindPlain Kind = iota
	KindAccessor
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindPlain {
		return "plain"
	}
	return "accessor"
}

// Info describes a resolved buffer.
type Info struct {
	Storage DType // how elements are stored
	Elem    DType // element type seen by kernels
	Kind    Kind
	Len     int // logical element count
}

// Inspect resolves the storage and element type of buf.
// Unknown buffers yield ErrTypeMismatch.
func Inspect(buf any) (Info, error) {
	switch b := buf.(type) {
	case nil:
		return Info{}, fmt.Errorf("%w: nil buffer", ErrTypeMismatch)
	case Float16s:
		return Info{Storage: Float16, Elem: Float32, Kind: KindAccessor, Len: b.Len()}, nil
	case Bools:
		return Info{Storage: Bool, Elem: Uint8, Kind: KindAccessor, Len: b.Len()}, nil
	case Complex128s:
		return Info{Storage: Float64, Elem: Complex128, Kind: KindAccessor, Len: b.Len()}, nil
	case Complex64s:
		return Info{Storage: Float32, Elem: Complex64, Kind: KindAccessor, Len: b.Len()}, nil
	}
	for _, p := range matchers {
		if info, ok := p(buf); ok {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: unsupported buffer %T", ErrTypeMismatch, buf)
}

// DTypeFor returns the DType of the Go type T, or Generic.
func DTypeFor[T any]() DType {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case int64:
		return Int64
	case int32:
		return Int32
	case int16:
		return Int16
	case int8:
		return Int8
	case uint64:
		return Uint64
	case uint32:
		return Uint32
	case uint16:
		return Uint16
	case uint8:
		return Uint8
	case bool:
		return Bool
	case complex128:
		return Complex128
	case complex64:
		return Complex64
	default:
		return Generic
	}
}

var matchers = []func(any) (Info, bool){
	match[float64](Float64),
	match[float32](Float32),
	match[int64](Int64),
	match[int32](Int32),
	match[int16](Int16),
	match[int8](Int8),
	match[uint64](Uint64),
	match[uint32](Uint32),
	match[uint16](Uint16),
	match[uint8](Uint8),
	match[bool](Bool),
	match[complex128](Complex128),
	match[complex64](Complex64),
}

func match[T any](d DType) func(any) (Info, bool) {
	return func(buf any) (Info, bool) {
		switch b := buf.(type) {
		case []T:
			return Info{Storage: d, Elem: d, Kind: KindPlain, Len: len(b)}, true
		case Slice[T]:
			return Info{Storage: d, Elem: d, Kind: KindPlain, Len: len(b)}, true
		case Accessor[T]:
			return Info{Storage: d, Elem: d, Kind: KindAccessor, Len: b.Len()}, true
		}
		return Info{}, false
	}
}
