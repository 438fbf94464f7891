package radix

import (
	"fmt"

	"github.com/agbru/basecalc/internal/bigint"
)

// Decode converts the value into its digit-string form in the given base and
// writes the symbols into buf, most significant digit first, '-'-prefixed for
// negative values in positive bases. It returns the number of bytes written.
// Writing past the end of buf is a fatal sizing error and panics; callers
// size buf with the ResultDigits* formulas.
//
// Positive bases use double-dabble; negative bases use repeated division and
// mutate value in place. The caller still owns value either way.
func Decode(value *bigint.Int, base int, alph *Alphabet, buf []byte, vec bool) int {
	if base > 0 {
		return decodePositive(value, base, alph, buf, vec)
	}
	return decodeNegative(value, base, alph, buf, vec)
}

// decodePositive runs the double-dabble algorithm with one byte lane per
// output digit: for every bit of the source, the accumulator shifts left one
// bit and takes the source's most significant bit into its low bit; then any
// lane that reached the base is corrected by adding 256-base (wrapping the
// lane back below the base) and carrying one into the next lane. After all
// bits, lane i holds the i-th least significant digit.
func decodePositive(value *bigint.Int, base int, alph *Alphabet, buf []byte, vec bool) int {
	trigger := uint8(base)
	carryAdd := uint8(256 - base)

	acc := bigint.New(len(buf), false)
	remaining := value.Clone()
	defer func() {
		acc.Release()
		remaining.Release()
	}()

	for i := 0; i < value.Len()*8; i++ {
		bigint.ShlBits(acc, 1, vec)

		var msb byte
		if remaining.MostSignificantBit() {
			msb = 1
		}
		acc.SetByte(0, acc.Byte(0)|msb)

		bigint.ShlBits(remaining, 1, vec)

		for j := 0; j < acc.Len(); j++ {
			b := acc.Byte(j)
			if b >= trigger {
				acc.SetByte(j, b+carryAdd)
				if j+1 < acc.Len() {
					acc.SetByte(j+1, acc.Byte(j+1)+1)
				}
			}
		}
	}

	// Highest non-zero lane starts the output; lane 0 always emits.
	start := 0
	for i := acc.Len() - 1; i >= 0; i-- {
		if acc.Byte(i) != 0 {
			start = i
			break
		}
	}

	out := 0
	if value.Negative() {
		out = 1
	}
	for i := start; i >= 0; i, out = i-1, out+1 {
		if out >= len(buf) {
			panic(fmt.Sprintf("radix: decoded digit exceeds output buffer (index %d, length %d)", out, len(buf)))
		}
		buf[out] = alph.Symbol(acc.Byte(i))
	}

	if value.Negative() {
		buf[0] = '-'
	}

	return out
}

// decodeNegative emits digits by repeatedly dividing the value by the
// negative base. A negative remainder is lifted into the digit range by
// adding |base|, compensated by incrementing the quotient. Digits come out
// least significant first and are reversed at the end.
func decodeNegative(value *bigint.Int, base int, alph *Alphabet, buf []byte, vec bool) int {
	baseAbs := -base

	// Zero has no quotient chain; emit the zero symbol directly.
	if value.IsZero(vec) {
		buf[0] = alph.Zero()
		return 1
	}

	temp := bigint.New(value.Len(), false)
	temp2 := bigint.New(value.Len(), false)
	defer func() {
		temp.Release()
		temp2.Release()
	}()

	index := -1
	for !value.IsZero(vec) {
		index++
		remainder := int(bigint.DivSmall(value, int16(base), temp, temp2, vec))

		if remainder < 0 {
			remainder += baseAbs
			bigint.Increment(value)
		}

		if remainder < 0 || remainder >= len(alph.Symbols()) {
			panic(fmt.Sprintf("radix: remainder %d outside alphabet while decoding negative base %d", remainder, base))
		}
		if index >= len(buf) {
			panic(fmt.Sprintf("radix: decoded digit exceeds output buffer (index %d, length %d)", index, len(buf)))
		}
		buf[index] = alph.Symbol(uint8(remainder))
	}

	// Digits were produced least significant first.
	for i, j := index, 0; i > j; i, j = i-1, j+1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return index + 1
}
