//go:build amd64

package contig

// Imports the amd64 implementation packages so their init() functions
// register with the global registry.

import (
	_ "github.com/cwbudde/algo-strided/internal/contig/arch/generic"
	_ "github.com/cwbudde/algo-strided/internal/contig/arch/vecmath"
)
