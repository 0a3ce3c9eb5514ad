package testutil

import (
	"math"
	"slices"
	"testing"
)

func TestSameBits(t *testing.T) {
	nan := math.NaN()
	if !sameBits(nan, nan) {
		t.Error("identical NaNs should compare equal")
	}
	if sameBits(0.0, math.Copysign(0, -1)) {
		t.Error("+0 and -0 should differ")
	}
	if !sameBits(int32(4), int32(4)) {
		t.Error("equal ints should compare equal")
	}
}

func TestEmbedGather(t *testing.T) {
	buf := Embed([]float64{1, 2, 3}, -2, 4, 6, 0)
	if !slices.Equal(buf, []float64{3, 0, 2, 0, 1, 0}) {
		t.Fatalf("Embed = %v", buf)
	}
	if got := Gather(buf, 3, -2, 4); !slices.Equal(got, []float64{1, 2, 3}) {
		t.Fatalf("Gather = %v", got)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if !slices.Equal(a, b) {
		t.Fatal("noise is not reproducible")
	}
	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	if got := Ramp(1, 0.5, 3); !slices.Equal(got, []float64{1, 1.5, 2}) {
		t.Fatalf("Ramp = %v", got)
	}
}
