// Package blas provides typed BLAS level-1 routines over strided slices.
//
// Each routine has a simple form, whose offsets follow from the stride sign
// (0 for positive strides, the far end of the view for negative ones), and
// an Ndarray form taking an explicit offset per operand. Routines return
// their output operand so calls can be chained. n <= 0 is a no-op.
//
// Prefixes follow BLAS: D for float64, S for float32, Z for complex128, C for
// complex64 and G for any element type the operation supports. float64
// routines with unit strides run through the CPU-specific contiguous kernels.
//
// Operands that overlap are undefined behavior.
package blas
