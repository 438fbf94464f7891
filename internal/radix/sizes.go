package radix

// Log2AbsCeil returns ceil(log2(|value|)) for small values in [-256, 256],
// or -1 when the magnitude is at most 1.
func Log2AbsCeil(value int16) int {
	abs := value
	if abs < 0 {
		abs = -abs
	}
	for i := 7; i >= 0; i-- {
		if int(abs) > 1<<i {
			return i + 1
		}
	}
	return -1
}

// MinBytesPow returns the minimum byte capacity of a store that can hold
// base^exponent: base^exponent needs ceil(log2(|base|^exponent)) bits, which
// is exponent*ceil(log2(|base|)) by the logarithm laws, rounded up to whole
// bytes.
func MinBytesPow(base int16, exponent int) int {
	return (Log2AbsCeil(base)*exponent)/8 + 1
}

// MinBytes returns the minimum byte capacity of a store that can hold any
// number of the given digit count in the given base. The largest such value
// is |base|^digits - 1, so the bound for |base|^digits suffices.
func MinBytes(base int16, digits int) int {
	return MinBytesPow(base, digits)
}

// Digit-count formulas for result buffers, per operator. The counts carry one
// byte of slack inherited from the string-terminator convention of the
// reference behavior, on top of room for a sign prefix and one carry digit.

// ResultDigitsAdd returns the output buffer size for an addition result given
// the operand digit-string lengths.
func ResultDigitsAdd(len1, len2 int, base int) int {
	n := maxInt(len1, len2) + 2
	if base < 0 {
		n++
	}
	return n
}

// ResultDigitsSub returns the output buffer size for a subtraction result.
func ResultDigitsSub(len1, len2 int, base int) int {
	return maxInt(len1, len2) + 3
}

// ResultDigitsMul returns the output buffer size for a multiplication result.
func ResultDigitsMul(len1, len2 int, base int) int {
	return 2*maxInt(len1, len2) + 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
