// Package stride computes the index sequences visited by strided kernels.
//
// A strided view over a flat buffer is described by a length N, a signed
// stride S and a non-negative offset O. The view visits the buffer indices
//
//	O, O+S, O+2S, ..., O+(N-1)S
//
// in that order. A positive stride walks forward from O, a negative stride
// walks backward from O.
//
// Two call forms exist throughout this module:
//
//   - the simple form takes only (N, S) and derives the offset with [Offset]:
//     0 for positive strides, (1-N)*S for negative strides, so that a
//     negative-stride view starts at the last element and walks toward 0;
//   - the ndarray form takes an explicit offset for every operand, which
//     allows arbitrary sub-views of a larger buffer.
//
// Nothing in this package checks indices against buffer lengths on behalf of
// kernels. [View.Fits] and [Validate] exist for callers that want to check a
// view before handing it to a kernel.
package stride
