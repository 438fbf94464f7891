package radix

import (
	"github.com/agbru/basecalc/internal/bigint"
)

// EncodePair converts the digit strings z1 and z2 into the pre-sized, zeroed
// destination stores dst1 and dst2 by weighted summation: digit i (counting
// from the least significant character) contributes value(digit) * base^i.
//
// Both operands are processed in one pass so the positional weight, which is
// advanced by one multiplication with the signed base per step, is computed
// only once for the longer of the two. After each advance the weight and a
// temporary trade places; the swap transfers ownership of the buffers, not
// their contents.
//
// A leading '-' on an operand is not special-cased here: it maps to digit
// value zero through the alphabet lookup table and contributes nothing. The
// caller applies it as the destination's sign for positive bases.
func EncodePair(base int, alph *Alphabet, z1, z2 string, dst1, dst2 *bigint.Int, vec bool) {
	maxLength := len(z1)
	if len(z2) > maxLength {
		maxLength = len(z2)
	}

	// Scratch stores sized so the weight can reach base^(maxLength-1) and each
	// partial digit product fits its destination.
	z1Temp := bigint.New(dst1.Len(), false)
	z2Temp := bigint.New(dst2.Len(), false)
	weight := bigint.New(MinBytesPow(int16(base), maxLength), false)
	temp := bigint.New(weight.Len(), false)
	temp2 := bigint.New(weight.Len(), false)
	defer func() {
		z1Temp.Release()
		z2Temp.Release()
		weight.Release()
		temp.Release()
		temp2.Release()
	}()

	// weight starts at base^0 = 1.
	weight.SetByte(0, 1)

	for i := 0; i < maxLength; i++ {
		if i < len(z1) {
			digit := alph.Value(z1[len(z1)-1-i])
			bigint.MulByte(weight, digit, z1Temp, temp2, vec)
			bigint.Add(dst1, z1Temp, vec)
		}
		if i < len(z2) {
			digit := alph.Value(z2[len(z2)-1-i])
			bigint.MulByte(weight, digit, z2Temp, temp2, vec)
			bigint.Add(dst2, z2Temp, vec)
		}

		// Advance the weight to base^(i+1), then swap it with the product.
		bigint.MulSmall(weight, int16(base), temp, temp2, vec)
		weight, temp = temp, weight
	}
}
