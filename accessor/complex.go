package accessor

// Complex128s views interleaved (re, im) float64 pairs as complex128
// elements. Element i occupies words 2i and 2i+1.
type Complex128s []float64

// Len returns the number of complex elements.
func (c Complex128s) Len() int { return len(c) / 2 }

// Get returns element i.
func (c Complex128s) Get(i int) complex128 {
	j := 2 * i
	return complex(c[j], c[j+1])
}

// Set stores v at element i, overwriting both words.
func (c Complex128s) Set(i int, v complex128) {
	j := 2 * i
	c[j] = real(v)
	c[j+1] = imag(v)
}

// Complex64s views interleaved (re, im) float32 pairs as complex64 elements.
type Complex64s []float32

// Len returns the number of complex elements.
func (c Complex64s) Len() int { return len(c) / 2 }

// Get returns element i.
func (c Complex64s) Get(i int) complex64 {
	j := 2 * i
	return complex(c[j], c[j+1])
}

// Set stores v at element i, overwriting both words.
func (c Complex64s) Set(i int, v complex64) {
	j := 2 * i
	c[j] = real(v)
	c[j+1] = imag(v)
}

// Bools exposes a []bool as 0/1 bytes, the representation used by masks.
type Bools []bool

// Len returns the number of elements.
func (b Bools) Len() int { return len(b) }

// Get returns 1 for true and 0 for false.
func (b Bools) Get(i int) uint8 {
	if b[i] {
		return 1
	}
	return 0
}

// Set stores v != 0.
func (b Bools) Set(i int, v uint8) { b[i] = v != 0 }
