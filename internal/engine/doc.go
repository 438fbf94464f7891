// Package engine exposes the calculator implementations behind a common
// interface and a registry to select them by name.
//
// Three engines are registered: "scalar" and "vector" are the two bit-exact
// variants of the binary engine, which converts operands to byte buffers,
// computes there, and converts back; "naive" computes digit by digit on the
// alphabet symbols and serves as an independent correctness oracle.
package engine
