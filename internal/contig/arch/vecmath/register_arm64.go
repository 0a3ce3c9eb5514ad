//go:build arm64 && !purego

package vecmath

import (
	"github.com/cwbudde/algo-strided/internal/contig/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the algo-vecmath delegate on arm64.
//
// Priority: 10
func init() {
	registry.Global.Register(Entry(cpu.SIMDNEON))
}
