//go:build amd64 && !purego

package vecmath

import (
	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the algo-vecmath delegate on amd64.
//
// SSE2 is the amd64 baseline; algo-vecmath upgrades to AVX2 internally.
//
// Priority: 10
func init() {
	registry.Global.Register(Entry(cpu.SIMDSSE2))
}
