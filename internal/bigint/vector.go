package bigint

import (
	"github.com/agbru/basecalc/internal/logging"
	"github.com/agbru/basecalc/internal/metrics"
)

// This file holds the vectorized implementations of the unsigned arithmetic
// kernels. They process 15-byte lanes first (two 64-bit halves with manual
// carry propagation between them), then 7-byte lanes (a single 64-bit word
// whose top byte receives the carry), then fall back to single bytes for the
// remainder. Each kernel must produce output bit-identical to its scalar
// counterpart in arith.go.

const lane7Mask = uint64(0x00FFFFFFFFFFFFFF)

// addVector adds the magnitudes of a and b into a with lane-wide additions.
//
// Within a 15-byte lane the carry out of the low 64-bit half is detected by
// comparing the wrapped sum against both operand halves. That comparison
// misses exactly one case: both halves at the maximum value with a pending
// carry-in, where the sum wraps back to the maximum and compares equal. That
// case is handled explicitly.
func addVector(a, b *Int) {
	aLen := a.Len()
	bLen := b.Len()

	var carry uint64
	i := 0

	// 15 bytes at a time.
	for ; i+14 < aLen && i+14 < bLen; i += 15 {
		aLane := a.Lane15At(i)
		bLane := b.Lane15At(i)

		aLowerMax := aLane.Lo == ^uint64(0)
		bLowerMax := bLane.Lo == ^uint64(0)

		lo := aLane.Lo + bLane.Lo + carry
		hi := aLane.Hi + bLane.Hi

		stdCarry := lo < aLane.Lo || lo < bLane.Lo
		maxCarry := aLowerMax && bLowerMax && carry == 1
		if stdCarry || maxCarry {
			hi++
		}

		// The lane holds 15 bytes, so the carry out is bit 56 of the high half.
		carry = (hi >> 56) & 0x1

		a.SetLane15At(i, Lane15{Lo: lo, Hi: hi & lane7Mask})
	}

	// 7 bytes at a time.
	for ; i+6 < aLen && i+6 < bLen; i += 7 {
		sum := a.Lane7(i) + b.Lane7(i) + carry
		carry = (sum >> 56) & 0x1
		a.SetLane7(i, sum&lane7Mask)
	}

	// Remaining bytes, one at a time.
	c := uint16(carry)
	for ; i < aLen; i++ {
		res := uint16(a.mem[i]) + c
		if i < bLen {
			res += uint16(b.mem[i])
		}
		c = (res >> 8) & 0x1
		a.mem[i] = byte(res)
	}

	if c == 1 {
		logging.Default().Warn("addition overflow: carry beyond destination capacity, result truncated",
			logging.String("path", "vector"))
		metrics.RecordTruncation()
	}
}

// subVector subtracts the magnitude of b from a with lane-wide subtractions.
// A borrow out of the low 64-bit half shows as the wrapped difference
// comparing greater than a's half; the one undetectable case is b's half at
// maximum with a pending borrow-in, handled explicitly. The lane borrow out
// is the sign bit of the 120-bit lane difference, which surfaces in the high
// bits of the 64-bit high half because the loaded lane has a zero top byte.
func subVector(a, b *Int) {
	aLen := a.Len()
	bLen := b.Len()

	var borrow uint64
	i := 0

	// 15 bytes at a time.
	for ; i+14 < aLen && i+14 < bLen; i += 15 {
		aLane := a.Lane15At(i)
		bLane := b.Lane15At(i)

		bLowerMax := bLane.Lo == ^uint64(0)

		lo := aLane.Lo - bLane.Lo - borrow
		hi := aLane.Hi - bLane.Hi

		stdBorrow := lo > aLane.Lo
		maxBorrow := bLowerMax && borrow == 1
		if stdBorrow || maxBorrow {
			hi--
		}

		borrow = (hi >> 63) & 0x1

		a.SetLane15At(i, Lane15{Lo: lo, Hi: hi & lane7Mask})
	}

	// 7 bytes at a time.
	for ; i+6 < aLen && i+6 < bLen; i += 7 {
		res := a.Lane7(i) - b.Lane7(i) - borrow
		borrow = (res >> 56) & 0x1
		a.SetLane7(i, res&lane7Mask)
	}

	// Remaining bytes, one at a time.
	c := uint16(borrow)
	for ; i < aLen; i++ {
		res := uint16(a.mem[i]) - c
		if i < bLen {
			res -= uint16(b.mem[i])
		}
		c = (res >> 15) & 0x1
		a.mem[i] = byte(res)
	}

	if c == 1 {
		logging.Default().Warn("subtraction underflow: borrow beyond destination capacity, result truncated",
			logging.String("path", "vector"))
		metrics.RecordTruncation()
	}
}

// shlBitsVector shifts left by 0-7 bits processing 7-byte lanes as 64-bit
// shifts. Seven bytes in an eight-byte word leave exactly enough headroom for
// a shift of up to 7 bits, so the carry out is the top byte of the shifted
// word.
func shlBitsVector(v *Int, bitCount uint8) {
	length := v.Len()

	var carry uint8
	i := 0
	for ; i+6 < length; i += 7 {
		shifted := v.Lane7(i)<<bitCount | uint64(carry)
		v.SetLane7(i, shifted&lane7Mask)
		carry = uint8(shifted >> 56)
	}

	for ; i < length; i++ {
		shifted := uint16(v.mem[i])<<bitCount | uint16(carry)
		v.mem[i] = byte(shifted)
		carry = uint8(shifted >> 8)
	}
}
