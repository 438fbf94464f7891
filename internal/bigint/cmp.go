package bigint

// GreaterThanPositive reports whether a's magnitude strictly exceeds b's.
// Both operands must be non-negative; a negative operand is a programming
// error and panics. Buffers may differ in length; missing high bytes compare
// as zero. The scan runs from the most significant shared byte index
// downward and short-circuits on the first differing byte.
func GreaterThanPositive(a, b *Int, vec bool) bool {
	if a.negative || b.negative {
		panic("bigint: GreaterThanPositive requires non-negative operands")
	}

	aLen := a.Len()
	bLen := b.Len()
	maxLength := aLen
	if bLen > maxLength {
		maxLength = bLen
	}

	aZero := a.IsZero(vec)
	bZero := b.IsZero(vec)

	if aZero && bZero {
		return false
	}
	if aZero {
		// a = 0 and b >= 0, so a cannot be greater.
		return false
	}

	for i := maxLength - 1; i >= 0; i-- {
		var aByte, bByte byte
		if i < aLen {
			aByte = a.mem[i]
		}
		if i < bLen {
			bByte = b.mem[i]
		}

		if i >= bLen && i < aLen {
			if aByte != 0 {
				return true
			}
			continue
		}
		if i >= aLen && i < bLen {
			if bByte != 0 {
				return false
			}
			continue
		}
		if aByte == bByte {
			continue
		}
		return aByte > bByte
	}
	return false
}

// GreaterEqualSmall reports whether a >= small for a signed small value in
// [-256, 256]. Opposite signs and zero operands resolve via fast paths; same
// signs compare the least significant byte first, then scan the remaining
// bytes for any non-zero tail that tips the comparison.
func GreaterEqualSmall(a *Int, small int16, vec bool) bool {
	aNegative := a.negative

	aZero := a.IsZero(vec)
	smallZero := small == 0

	if aZero && smallZero {
		return true
	}
	if aZero && small < 0 {
		return true
	}
	if aZero && small > 0 {
		return false
	}
	if aNegative && small >= 0 {
		return false
	}
	if !aNegative && small <= 0 {
		return true
	}

	// Same sign, a non-zero. For positive operands a first byte >= small means
	// a >= small outright (any higher non-zero byte only grows a); for
	// negative operands a first byte of greater magnitude means a < small.
	firstByte := int16(a.mem[0])

	if !aNegative && firstByte == small {
		return true
	}
	if !aNegative && firstByte > small {
		return true
	}
	if aNegative && firstByte > small {
		return false
	}

	for i := 1; i < a.Len(); i++ {
		b := a.mem[i]
		if aNegative && b > 0 {
			// The magnitude only grows, so a only gets smaller.
			return false
		}
		if !aNegative && b > 0 {
			return true
		}
	}

	if !aNegative {
		return false
	}
	return true
}
