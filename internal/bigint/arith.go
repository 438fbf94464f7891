package bigint

import (
	"github.com/agbru/basecalc/internal/logging"
	"github.com/agbru/basecalc/internal/metrics"
)

// signRule identifies how a signed add/sub case is reduced to an operation on
// magnitudes. The four sign combinations of each operator are enumerated in
// explicit rule tables (addRules, subRules) so that every case can be
// inspected and tested independently instead of being buried in nested
// conditionals.
type signRule uint8

const (
	// ruleUnsigned: both operands carry the same sign; operate on the
	// magnitudes directly and keep a's sign.
	ruleUnsigned signRule = iota
	// ruleNegateAThenSub: -a + b = -(a - b). Clear a's sign, subtract, negate
	// the result.
	ruleNegateAThenSub
	// ruleFlipBThenSub: a + -b = a - b. Clear b's sign, subtract, restore b.
	ruleFlipBThenSub
	// ruleFlipBThenAdd: a - -b = a + b. Clear b's sign, add, restore b.
	ruleFlipBThenAdd
	// ruleNegateAThenAdd: -a - b = -(a + b). Clear a's sign, add, negate the
	// result.
	ruleNegateAThenAdd
	// ruleSwapThenSub: -a - -b = b - a. Clear both signs, subtract a from a
	// grown copy of b, move the result into a.
	ruleSwapThenSub
)

// addRules maps [signA][signB] (0 = positive, 1 = negative) to the reduction
// applied by Add.
var addRules = [2][2]signRule{
	{ruleUnsigned, ruleFlipBThenSub},
	{ruleNegateAThenSub, ruleUnsigned},
}

// subRules maps [signA][signB] to the reduction applied by Sub. The both-
// positive case additionally compares magnitudes before subtracting.
var subRules = [2][2]signRule{
	{ruleUnsigned, ruleFlipBThenAdd},
	{ruleNegateAThenAdd, ruleSwapThenSub},
}

func signIndex(v *Int) int {
	if v.negative {
		return 1
	}
	return 0
}

// Add adds b to a in place: a = a + b. a must be pre-sized to hold the
// result; a carry surviving past a's last byte is logged and dropped. The vec
// flag selects the vectorized lane path; both paths are bit-exact.
func Add(a, b *Int, vec bool) {
	switch addRules[signIndex(a)][signIndex(b)] {
	case ruleNegateAThenSub:
		a.SetNegative(false)
		Sub(a, b, vec)
		a.Negate()
	case ruleFlipBThenSub:
		b.SetNegative(false)
		Sub(a, b, vec)
		b.SetNegative(true)
	default:
		// Both signs equal: -a + -b = -(a + b), so the magnitudes are added
		// and a's sign stays.
		if vec {
			addVector(a, b)
		} else {
			addScalar(a, b)
		}
	}
}

// addScalar walks a byte at a time, adding the matching byte of b (zero once
// b is exhausted) plus the running carry. The carry is bit 8 of the 16-bit
// partial sum.
func addScalar(a, b *Int) {
	aLen := a.Len()
	bLen := b.Len()

	var carry uint16
	for i := 0; i < aLen; i++ {
		res := uint16(a.mem[i]) + carry
		if i < bLen {
			res += uint16(b.mem[i])
		}
		carry = (res >> 8) & 0x1
		a.mem[i] = byte(res)
	}

	if carry == 1 {
		logging.Default().Warn("addition overflow: carry beyond destination capacity, result truncated",
			logging.String("path", "scalar"))
		metrics.RecordTruncation()
	}
}

// Sub subtracts b from a in place: a = a - b. a must be pre-sized to hold the
// result; a borrow surviving past a's last byte is logged and dropped.
func Sub(a, b *Int, vec bool) {
	switch subRules[signIndex(a)][signIndex(b)] {
	case ruleFlipBThenAdd:
		b.SetNegative(false)
		Add(a, b, vec)
		b.SetNegative(true)
	case ruleNegateAThenAdd:
		a.SetNegative(false)
		Add(a, b, vec)
		a.Negate()
	case ruleSwapThenSub:
		a.SetNegative(false)
		extra := a.Len() - b.Len()
		if extra < 0 {
			extra = 0
		}
		// b must be large enough to hold the difference.
		bCopy := b.CloneGrow(extra)
		bCopy.SetNegative(false)
		Sub(bCopy, a, vec)
		bCopy.CopyInto(a)
		bCopy.Release()
	default:
		// Both positive. If b's magnitude exceeds a's, compute -(b - a)
		// instead, preserving b's original value across the call.
		if GreaterThanPositive(b, a, vec) {
			bCopy := b.Clone()
			Sub(b, a, vec)
			b.Negate()
			b.CopyInto(a)
			bCopy.CopyInto(b)
			bCopy.Release()
			return
		}
		if vec {
			subVector(a, b)
		} else {
			subScalar(a, b)
		}
	}
}

// subScalar mirrors addScalar with a borrow chain: the borrow is the sign bit
// of the 16-bit partial difference.
func subScalar(a, b *Int) {
	aLen := a.Len()
	bLen := b.Len()

	var borrow uint16
	for i := 0; i < aLen; i++ {
		res := uint16(a.mem[i]) - borrow
		if i < bLen {
			res -= uint16(b.mem[i])
		}
		borrow = (res >> 15) & 0x1
		a.mem[i] = byte(res)
	}

	if borrow == 1 {
		logging.Default().Warn("subtraction underflow: borrow beyond destination capacity, result truncated",
			logging.String("path", "scalar"))
		metrics.RecordTruncation()
	}
}

// Increment moves the value one step away from zero-crossing: a positive
// value gains one via a ripple carry that stops at the first byte that does
// not overflow; a negative value's magnitude loses one, skipping zero bytes.
// No overflow check is performed. Only the decoder's negative-base quotient
// correction calls this, and only on non-negative quotients.
func Increment(v *Int) {
	negative := v.negative
	for i := 0; i < v.Len(); i++ {
		b := v.mem[i]
		if !negative {
			inc := uint16(b) + 1
			v.mem[i] = byte(inc)
			if inc>>8 == 0 {
				break
			}
		} else {
			if b == 0 {
				continue
			}
			v.mem[i] = b - 1
		}
	}
}

// ShlBits shifts the magnitude left by bitCount bits in place. bitCount must
// be in [0,7]. Bits shifted past the last byte are discarded; the buffer
// never grows.
func ShlBits(v *Int, bitCount uint8, vec bool) {
	if vec {
		shlBitsVector(v, bitCount)
	} else {
		shlBitsScalar(v, bitCount)
	}
}

// shlBitsScalar ripples the shifted-out high bits of each byte into the next.
func shlBitsScalar(v *Int, bitCount uint8) {
	var carry uint8
	for i := 0; i < v.Len(); i++ {
		shifted := uint16(v.mem[i])<<bitCount | uint16(carry)
		v.mem[i] = byte(shifted)
		carry = uint8(shifted >> 8)
	}
}

// ShlBytes shifts the magnitude left by count whole bytes in place, zero-
// filling the low count bytes. The copy runs from the top down so bytes are
// not overwritten before they are moved. The destination must already have
// room for the shift.
func ShlBytes(v *Int, count int) {
	for i := v.Len() - count - 1; i >= 0; i-- {
		v.mem[i+count] = v.mem[i]
	}
	for i := 0; i < count && i < v.Len(); i++ {
		v.mem[i] = 0
	}
}

// MulByte computes result = value * mul where mul is a single unsigned byte,
// using binary long multiplication: for each set bit of mul, a running copy
// of value is shifted left by the distance from the previous set bit and
// accumulated into result.
//
// value and result must be distinct. temp is caller-provided scratch and
// needs one byte more capacity than value to absorb the largest intermediate
// shift. result is zeroed first; its previous contents are discarded.
func MulByte(value *Int, mul uint8, result, temp *Int, vec bool) {
	result.SetZero()
	value.CopyInto(temp)

	toShift := uint8(0)
	for i := 0; i < 8; i++ {
		bit := (mul >> i) & 0x1
		if bit == 1 {
			if i != 0 {
				ShlBits(temp, 1+toShift, vec)
				toShift = 0
			}
			Add(result, temp, vec)
		} else if i != 0 {
			toShift++
		}
	}
}

// MulSmall computes result = value * mul for a small signed multiplier in
// [-255, 255] (the absolute value of a signed multiplier this small fits an
// unsigned byte). The result is negative iff exactly one of value's sign and
// the multiplier's sign is negative. Used to advance the positional weight by
// a possibly negative base.
func MulSmall(value *Int, mul int16, result, temp *Int, vec bool) {
	abs := mul
	if abs < 0 {
		abs = -abs
	}
	MulByte(value, uint8(abs), result, temp, vec)
	result.negative = (value.negative && mul > 0) || (!value.negative && mul < 0)
}

// Mul computes res = a * b via byte-wise long multiplication: for each
// non-zero byte i of b, the partial product a*b[i] is shifted left by i whole
// bytes and accumulated into res. res must be pre-sized to a.Len()+b.Len()
// and zeroed. The result is negative iff exactly one operand is negative.
func Mul(a, b, res *Int, vec bool) {
	pp := New(res.Len(), false)
	temp := New(a.Len()+1, false)

	for i := 0; i < b.Len(); i++ {
		byteVal := b.Byte(i)
		if byteVal == 0 {
			continue
		}
		MulByte(a, byteVal, pp, temp, vec)
		ShlBytes(pp, i)
		Add(res, pp, vec)
	}

	pp.Release()
	temp.Release()

	res.negative = (a.negative && !b.negative) || (b.negative && !a.negative)
}

// DivSmall divides value in place by a small signed divisor in [-128, 128]
// using binary long division: for each bit of value from most to least
// significant, the remainder accumulator is shifted left by one, the current
// bit is injected into its low bit, and whenever the accumulator reaches the
// absolute divisor it is reduced and the matching quotient bit is set.
//
// After the call value holds the quotient. The returned remainder follows the
// dividend's original sign rather than the non-negative Euclidean convention:
// -17/8 yields quotient -2 and remainder -1. The negative-base decoder
// depends on this exact convention.
//
// quot and rem are caller-provided scratch; quot needs value's length, rem
// holds at most two significant bytes. Division by zero panics.
func DivSmall(value *Int, divisor int16, quot, rem *Int, vec bool) int16 {
	if divisor == 0 {
		panic("bigint: division by zero")
	}

	abs := divisor
	if abs < 0 {
		abs = -abs
	}
	div := uint8(abs)

	valueNegative := value.negative
	value.SetNegative(false)

	quot.SetZero()
	rem.SetZero()

	divisorBig := New(2, false)
	divisorBig.SetByte(0, div)

	for i := value.Len() - 1; i >= 0; i-- {
		for j := 7; j >= 0; j-- {
			ShlBits(rem, 1, vec)

			bit := (value.Byte(i) >> uint(j)) & 0x1
			rem.SetByte(0, rem.Byte(0)|bit)

			if GreaterEqualSmall(rem, int16(div), vec) {
				Sub(rem, divisorBig, vec)
				quot.SetBit(i*8+j, true)
			}
		}
	}

	quot.CopyInto(value)
	remainder := int16(rem.Byte(0))

	if (valueNegative && divisor > 0) || (!valueNegative && divisor < 0) {
		value.SetNegative(true)
	}
	if valueNegative {
		// The raw remainder is non-negative; it follows the dividend's sign.
		remainder = -remainder
	}

	divisorBig.Release()

	return remainder
}
