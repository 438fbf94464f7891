// Package naive implements arbitrary-base arithmetic directly on digit
// strings, one alphabet symbol at a time, without ever converting to a
// binary representation. It is deliberately simple and serves as the
// independent correctness oracle for the binary-conversion engines.
package naive
