package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"text/tabwriter"

	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// checkTol is the relative tolerance for kernels that may reassociate sums.
const checkTol = 1e-12

type checkResult struct {
	impl string
	op   string
	diff float64
	ok   bool
}

// checkEntries runs every op of every supported implementation on n
// deterministic elements and compares it with the unit-stride kernel loop.
// It returns the number of failed comparisons.
func checkEntries(w io.Writer, n int) (int, error) {
	features := cpu.DetectFeatures()
	var results []checkResult
	for _, e := range contig.Entries() {
		if !cpu.Supports(features, e.SIMDLevel) {
			continue
		}
		results = append(results, checkEntry(e, n)...)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Implementation\tOp\tMax diff\tResult\n")
	fmt.Fprintf(tw, "--------------\t--\t--------\t------\n")
	failed := 0
	for _, r := range results {
		status := "PASS"
		if !r.ok {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3g\t%s\n", r.impl, r.op, r.diff, status)
	}
	return failed, tw.Flush()
}

func checkEntry(e registry.OpEntry, n int) []checkResult {
	rng := rand.New(rand.NewSource(int64(n)))
	noise := func() []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = rng.Float64()*2 - 1
		}
		return v
	}
	x, y := noise(), noise()
	const alpha, c, s = 0.75, 0.6, 0.8

	var out []checkResult
	vec := func(op string, got, want []float64) {
		d := maxDiff(got, want)
		out = append(out, checkResult{e.Name, op, d, d <= checkTol*(1+maxAbs(want))})
	}
	scalar := func(op string, got, want float64) {
		d := math.Abs(got - want)
		out = append(out, checkResult{e.Name, op, d, d <= checkTol*(1+math.Abs(want))*float64(n+1)})
	}

	got := make([]float64, n)
	e.Copy(x, got)
	vec("copy", got, kernel.Copy(n, x, 1, 0, make([]float64, n), 1, 0))

	gx, gy := clone(x), clone(y)
	e.Swap(gx, gy)
	wx, wy := clone(x), clone(y)
	kernel.Swap(n, wx, 1, 0, wy, 1, 0)
	vec("swap", append(gx, gy...), append(wx, wy...))

	got = clone(x)
	e.Scale(alpha, got)
	vec("scale", got, kernel.Scale(n, alpha, clone(x), 1, 0))

	got = clone(y)
	e.Axpy(alpha, x, got)
	vec("axpy", got, kernel.Axpy(n, alpha, x, 1, 0, clone(y), 1, 0))

	scalar("dot", e.Dot(x, y), kernel.Dot(n, x, 1, 0, y, 1, 0))
	scalar("sum", e.Sum(x), kernel.Sum(n, x, 1, 0))
	scalar("asum", e.Asum(x), kernel.Asum(n, x, 1, 0))

	gx, gy = clone(x), clone(y)
	e.Rot(gx, gy, c, s)
	wx, wy = clone(x), clone(y)
	kernel.Rot(n, wx, 1, 0, wy, 1, 0, c, s)
	vec("rot", append(gx, gy...), append(wx, wy...))

	got = make([]float64, n)
	e.CumSum(0.5, x, got)
	vec("cumsum", got, kernel.CumSum(n, 0.5, x, 1, 0, make([]float64, n), 1, 0))

	got = make([]float64, n)
	e.Add(x, y, got)
	vec("add", got, kernel.Binary(n, x, 1, 0, y, 1, 0, make([]float64, n), 1, 0,
		func(a, b float64) float64 { return a + b }))

	got = make([]float64, n)
	e.Mul(x, y, got)
	vec("mul", got, kernel.Binary(n, x, 1, 0, y, 1, 0, make([]float64, n), 1, 0,
		func(a, b float64) float64 { return a * b }))

	return out
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}

func maxDiff(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	d := 0.0
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
