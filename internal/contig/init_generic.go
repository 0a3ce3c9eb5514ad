//go:build !amd64 && !arm64

package contig

import (
	_ "github.com/cwbudde/algo-strided/internal/contig/arch/generic"
)
