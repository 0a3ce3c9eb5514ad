package accessor

import "github.com/x448/float16"

// Float16s views IEEE 754 half-precision storage as float32 elements.
// Set rounds to nearest-even half precision.
type Float16s []float16.Float16

// Len returns the number of elements.
func (h Float16s) Len() int { return len(h) }

// Get widens element i to float32.
func (h Float16s) Get(i int) float32 { return h[i].Float32() }

// Set narrows v to half precision and stores it at element i.
func (h Float16s) Set(i int, v float32) { h[i] = float16.Fromfloat32(v) }

// NewFloat16s converts values to half precision.
func NewFloat16s(values ...float32) Float16s {
	out := make(Float16s, len(values))
	for i, v := range values {
		out[i] = float16.Fromfloat32(v)
	}
	return out
}
