package testutil

import "math/rand"

// Sizes is the length grid used by kernel tests. It covers every remainder
// of the unroll factors in use (3, 4, 5, 6) around several batch counts.
var Sizes = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 12, 13, 15, 16, 17, 29, 30, 31, 60, 61, 100, 257}

// DeterministicNoise returns values uniformly drawn from [-amplitude, amplitude)
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns start, start+step, ... with length elements.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Embed scatters values into a new buffer of the given length at
// offset + k*stride, filling every other slot with fill.
func Embed[T any](values []T, stride, offset, length int, fill T) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = fill
	}
	for k, v := range values {
		out[offset+k*stride] = v
	}
	return out
}

// Gather collects n elements of buf at offset + k*stride.
func Gather[T any](buf []T, n, stride, offset int) []T {
	out := make([]T, n)
	for k := range out {
		out[k] = buf[offset+k*stride]
	}
	return out
}
