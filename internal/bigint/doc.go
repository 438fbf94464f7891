// Package bigint implements an arbitrary-precision integer as a sign flag
// plus a fixed-length little-endian byte buffer, together with sign-aware
// arithmetic (addition, subtraction, multiplication, small-divisor division,
// shifts) and magnitude comparisons.
//
// Every arithmetic operation exists in two bit-exact variants selected by a
// boolean flag: a scalar byte-at-a-time path and a vectorized path that
// processes 15-byte and 7-byte lanes per iteration with manual carry
// propagation across lane boundaries. The two paths producing identical
// output for identical input is the primary correctness property of this
// package and is enforced by its tests.
//
// Buffers never grow: the capacity of an Int is fixed at construction and
// callers must pre-size destinations to the documented worst case of the
// operation being performed. A carry or borrow surviving past the last byte
// of a destination is not an error; it is logged and the result is silently
// truncated.
package bigint
