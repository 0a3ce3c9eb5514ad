// Package kernel implements the strided-path kernels.
//
// Every kernel takes a length n and, for each operand, a buffer, a signed
// stride and the buffer index of the first element (ndarray form). Operand k
// of a call visits offset + k*stride, so each operand advances independently
// and negative strides walk the buffer downwards. n <= 0 is a no-op.
//
// Kernels come in two flavours: one over plain slices and one, suffixed
// Accessor, over [accessor.Accessor] buffers. Neither checks bounds; a view
// reaching outside its buffer panics with the runtime index error.
//
// Overlapping operands are undefined behavior unless a kernel says
// otherwise. In particular, results of MapBy and the masked kernels on
// partially overlapping views depend on visitation order and are not
// specified.
//
// Products are rounded to T before they are added, so no architecture
// fuses them into an FMA.
//
// These loops are the reference semantics. The unit-stride fast paths in
// internal/contig must agree with them.
package kernel
