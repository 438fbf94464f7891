package naive

import (
	apperrors "github.com/agbru/basecalc/internal/errors"
	"github.com/agbru/basecalc/internal/radix"
)

// Compute evaluates z1 <op> z2 in the given base and alphabet using digit-wise
// schoolbook arithmetic and returns the result digit string. op must be one of
// '+', '-' or '*'. Inputs are assumed validated (see package radix).
func Compute(base int, alphabet, z1, z2 string, op byte) (string, error) {
	alph := radix.NewAlphabet(alphabet)

	if base < 0 {
		// Numbers in a negative base have no explicit sign; they can be
		// treated as unsigned throughout.
		z1 = stripZeroes(z1, alph.Zero())
		z2 = stripZeroes(z2, alph.Zero())

		switch op {
		case '+':
			return addSubUnsigned(true, false, base, &alph, z1, z2), nil
		case '-':
			return addSubUnsigned(false, false, base, &alph, z1, z2), nil
		case '*':
			return mulUnsigned(false, base, &alph, z1, z2), nil
		default:
			return "", apperrors.NewValidationError("operator", "unsupported operator %q", string(op))
		}
	}

	// Positive base: reduce the signed expression to unsigned operations.
	z1, z1Pos := stripSign(z1)
	z2, z2Pos := stripSign(z2)

	z1 = stripZeroes(z1, alph.Zero())
	z2 = stripZeroes(z2, alph.Zero())

	switch op {
	case '+':
		switch {
		case z1Pos && z2Pos: // +a + +b = a + b
			return addSubUnsigned(true, false, base, &alph, z1, z2), nil
		case z1Pos: // +a + -b = a - b
			return subUnsignedToSigned(base, &alph, z1, z2), nil
		case z2Pos: // -a + +b = b - a
			return subUnsignedToSigned(base, &alph, z2, z1), nil
		default: // -a + -b = -(a + b)
			return addSubUnsigned(true, true, base, &alph, z1, z2), nil
		}
	case '-':
		switch {
		case z1Pos && z2Pos: // +a - +b = a - b
			return subUnsignedToSigned(base, &alph, z1, z2), nil
		case z1Pos: // +a - -b = a + b
			return addSubUnsigned(true, false, base, &alph, z1, z2), nil
		case z2Pos: // -a - +b = -(a + b)
			return addSubUnsigned(true, true, base, &alph, z1, z2), nil
		default: // -a - -b = b - a
			return subUnsignedToSigned(base, &alph, z2, z1), nil
		}
	case '*':
		if z1Pos != z2Pos {
			return mulUnsigned(true, base, &alph, z1, z2), nil
		}
		return mulUnsigned(false, base, &alph, z1, z2), nil
	default:
		return "", apperrors.NewValidationError("operator", "unsupported operator %q", string(op))
	}
}

// addSubUnsigned adds or subtracts two unsigned numbers digit by digit from
// the least significant end. For subtraction z1 must not be smaller than z2.
// In a negative base a carry out of one digit position counts against the
// next position, so the carry offset is inverted. If negate is set and the
// result is non-zero, it is prefixed with '-'.
func addSubUnsigned(add, negate bool, base int, alph *radix.Alphabet, z1, z2 string) string {
	carryOffset := 1
	if base < 0 {
		carryOffset = -1
	}

	baseAbs := base
	if baseAbs < 0 {
		baseAbs = -baseAbs
	}

	ai := len(z1) - 1
	bi := len(z2) - 1

	// Digits accumulate least significant first and are reversed at the end.
	out := make([]byte, 0, maxInt(len(z1), len(z2))+2)

	carry := 0
	for ai >= 0 || bi >= 0 || carry != 0 {
		a := alph.Zero()
		if ai >= 0 {
			a = z1[ai]
		}
		b := alph.Zero()
		if bi >= 0 {
			b = z2[bi]
		}

		aIdx := int(alph.Value(a))
		bIdx := int(alph.Value(b))

		var sumIdx int
		if add {
			sumIdx = aIdx + bIdx + carry
		} else {
			sumIdx = aIdx - bIdx + carry
		}

		switch {
		case sumIdx >= baseAbs:
			out = append(out, alph.Symbol(uint8(sumIdx-baseAbs)))
			carry = carryOffset
		case sumIdx < 0:
			out = append(out, alph.Symbol(uint8(sumIdx+baseAbs)))
			carry = -carryOffset
		default:
			out = append(out, alph.Symbol(uint8(sumIdx)))
			carry = 0
		}

		ai--
		bi--
	}

	out = stripTrailing(out, alph.Zero())

	if negate && out[len(out)-1] != alph.Zero() {
		out = append(out, '-')
	}

	reverse(out)
	return string(out)
}

// cmpUnsigned compares two unsigned numbers of the same positive base:
// -1 if z1 < z2, 1 if z1 > z2, 0 if equal. A longer number is larger since
// leading zeroes have been stripped.
func cmpUnsigned(alph *radix.Alphabet, z1, z2 string) int {
	if len(z1) < len(z2) {
		return -1
	}
	if len(z1) > len(z2) {
		return 1
	}
	for i := 0; i < len(z1); i++ {
		v1 := alph.Value(z1[i])
		v2 := alph.Value(z2[i])
		if v1 < v2 {
			return -1
		}
		if v1 > v2 {
			return 1
		}
	}
	return 0
}

// subUnsignedToSigned subtracts z2 from z1, swapping and negating when z2 is
// the larger magnitude, so neither ordering is required of the caller.
func subUnsignedToSigned(base int, alph *radix.Alphabet, z1, z2 string) string {
	if cmpUnsigned(alph, z1, z2) < 0 {
		return addSubUnsigned(false, true, base, alph, z2, z1)
	}
	return addSubUnsigned(false, false, base, alph, z1, z2)
}

// mulDigitShift multiplies z1 by the single digit z2 and shifts the result
// left by shift digit positions (appending zero symbols). In a negative base
// the per-digit carry can run in either direction, so it is normalized step
// by step with the inverted carry offset.
func mulDigitShift(shift int, base int, alph *radix.Alphabet, z1 string, z2 byte) string {
	carryOffset := 1
	if base < 0 {
		carryOffset = -1
	}

	baseAbs := base
	if baseAbs < 0 {
		baseAbs = -baseAbs
	}

	bIdx := int(alph.Value(z2))

	out := make([]byte, 0, len(z1)+shift+2)

	carry := 0
	for ai := len(z1) - 1; ai >= 0 || carry != 0; ai-- {
		a := alph.Zero()
		if ai >= 0 {
			a = z1[ai]
		}
		aIdx := int(alph.Value(a))

		prodIdx := aIdx*bIdx + carry

		switch {
		case prodIdx >= baseAbs:
			carry = 0
			for prodIdx >= baseAbs {
				prodIdx -= baseAbs
				carry += carryOffset
			}
			out = append(out, alph.Symbol(uint8(prodIdx)))
		case prodIdx < 0:
			carry = 0
			for prodIdx < 0 {
				prodIdx += baseAbs
				carry -= carryOffset
			}
			out = append(out, alph.Symbol(uint8(prodIdx)))
		default:
			out = append(out, alph.Symbol(uint8(prodIdx)))
			carry = 0
		}
	}

	out = stripTrailing(out, alph.Zero())
	reverse(out)

	for i := 0; i < shift; i++ {
		out = append(out, alph.Zero())
	}

	return string(out)
}

// mulUnsigned multiplies two unsigned numbers with long multiplication,
// iterating over the digits of the shorter factor. If negate is set the
// result is prefixed with '-'.
func mulUnsigned(negate bool, base int, alph *radix.Alphabet, z1, z2 string) string {
	// Using the shorter factor as the multiplier keeps the number of
	// partial-product additions down.
	a, b := z1, z2
	if len(z2) > len(z1) {
		a, b = z2, z1
	}
	maxShift := len(b) - 1

	acc := string(alph.Zero())

	for i := 0; i < maxShift; i++ {
		partial := mulDigitShift(i, base, alph, a, b[maxShift-i])
		acc = addSubUnsigned(true, false, base, alph, acc, partial)
	}

	partial := mulDigitShift(maxShift, base, alph, a, b[0])
	return addSubUnsigned(true, negate, base, alph, acc, partial)
}

// stripSign removes a leading '-' and reports whether the number is
// non-negative.
func stripSign(z string) (string, bool) {
	if len(z) > 0 && z[0] == '-' {
		return z[1:], false
	}
	return z, true
}

// stripZeroes removes leading zero symbols, keeping at least one digit.
func stripZeroes(z string, zero byte) string {
	for len(z) > 1 && z[0] == zero {
		z = z[1:]
	}
	return z
}

// stripTrailing removes trailing (most significant, pre-reversal) zero
// symbols, keeping at least one digit.
func stripTrailing(digits []byte, zero byte) []byte {
	for len(digits) > 1 && digits[len(digits)-1] == zero {
		digits = digits[:len(digits)-1]
	}
	return digits
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
