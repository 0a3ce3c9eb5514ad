// Package strided dispatches strided kernels over buffers whose element type
// is only known at run time.
//
// Operands are passed as any and may be plain slices ([]float64, []int32,
// []complex128, ...), accessor.Slice values, or anything implementing
// accessor.Accessor for a supported element type, such as
// accessor.Complex128s or accessor.Float16s. Every call:
//
//  1. validates all arguments, so a failing call never mutates a buffer;
//  2. returns the output buffer unchanged when n <= 0;
//  3. runs the plain-slice kernels when every operand is a plain slice,
//     taking the unrolled contiguous path when every stride is 1;
//  4. otherwise routes every operand through its accessor, even the plain
//     ones, so a call never mixes access styles.
//
// The output operand is returned as passed in. Bounds are never checked.
package strided
