// Package radix implements the codec between digit strings in an arbitrary
// base (magnitude 2-128, positive or negative, with a caller-supplied
// alphabet) and the fixed-capacity byte representation of package bigint.
//
// Encoding a digit string accumulates digit*base^i via a running positional
// weight. Decoding uses double-dabble for positive bases and repeated
// division by the base for negative bases.
package radix
