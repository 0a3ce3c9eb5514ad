// Command stridedinfo reports which contiguous kernel implementation is
// active, checks every registered implementation against the strided
// reference loops and runs reductions over strided views of binary files.
//
// Usage:
//
//	stridedinfo [flags]
//
// Examples:
//
//	stridedinfo
//	stridedinfo -check 1000
//	stridedinfo -file samples.f64 -op nrm2
//	stridedinfo -file samples.f32 -dtype float32 -stride -2 -op cumsum
//	stridedinfo -file counts.i16 -dtype int16 -n 100 -stride 3 -offset 7 -op iamax
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-strided/accessor"
	"github.com/cwbudde/algo-strided/internal/contig"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	check := flag.Int("check", 0, "compare every supported implementation against the strided loops on N elements")
	file := flag.String("file", "", "binary file of little-endian elements to reduce")
	dtype := flag.String("dtype", "float64", "element type of -file (float64, float32, int64, ..., uint8)")
	n := flag.Int("n", -1, "number of indexed elements (default: as many as fit)")
	strideFlag := flag.Int("stride", 1, "index increment")
	offset := flag.Int("offset", -1, "starting index (default: 0, or the last element for negative strides)")
	op := flag.String("op", "sum", "operation on -file: sum, asum, nrm2, iamax or cumsum")
	forceGeneric := flag.Bool("generic", false, "force the pure Go implementation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stridedinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features and the registered contiguous kernels.\n")
		fmt.Fprintf(os.Stderr, "With -check, verifies them against the strided reference loops.\n")
		fmt.Fprintf(os.Stderr, "With -file, runs a reduction over a strided view of the file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stridedinfo\n")
		fmt.Fprintf(os.Stderr, "  stridedinfo -check 1000\n")
		fmt.Fprintf(os.Stderr, "  stridedinfo -file samples.f64 -op nrm2\n")
		fmt.Fprintf(os.Stderr, "  stridedinfo -file samples.f32 -dtype float32 -stride -2 -op cumsum\n")
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("stridedinfo: ")

	if *forceGeneric {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
		contig.ResetSelection()
	}

	switch {
	case *file != "":
		dt, err := accessor.ParseDType(*dtype)
		if err != nil {
			log.Fatal(err)
		}
		req := request{
			path:   *file,
			dtype:  dt,
			n:      *n,
			stride: *strideFlag,
			offset: *offset,
			op:     *op,
		}
		if err := reduceFile(os.Stdout, req); err != nil {
			log.Fatal(err)
		}
	case *check > 0:
		failed, err := checkEntries(os.Stdout, *check)
		if err != nil {
			log.Fatal(err)
		}
		if failed > 0 {
			log.Fatalf("%d check(s) failed", failed)
		}
	default:
		if err := printInfo(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

func printInfo(w io.Writer) error {
	f := cpu.DetectFeatures()
	if _, err := fmt.Fprintf(w, "Architecture: %s\n", f.Architecture); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Features:     SSE2=%t AVX=%t AVX2=%t AVX512=%t NEON=%t ForceGeneric=%t\n\n",
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON, f.ForceGeneric); err != nil {
		return err
	}

	selected := contig.Selected().Name
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Implementation\tSIMD\tPriority\tSupported\tSelected\n")
	fmt.Fprintf(tw, "--------------\t----\t--------\t---------\t--------\n")
	for _, e := range contig.Entries() {
		mark := ""
		if e.Name == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n", e.Name, e.SIMDLevel, e.Priority, cpu.Supports(f, e.SIMDLevel), mark)
	}
	return tw.Flush()
}
