//go:build arm64

package contig

// Imports the arm64 implementation packages so their init() functions
// register with the global registry.

import (
	_ "github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	_ "github.com/cwbudde/algo-strided/internal/contig/arch/vecmath"
)
