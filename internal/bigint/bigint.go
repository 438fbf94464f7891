package bigint

import "fmt"

// Int is an arbitrary-precision integer stored as a sign flag and a
// fixed-length little-endian byte buffer: mem[0] is the least significant
// byte. A negative flag set to true means the value is negative.
//
// The buffer length is fixed at construction and never changes. An Int has a
// single owner; it must not be used by more than one logical operation at a
// time. Release frees the buffer; any access after Release is a fatal error.
type Int struct {
	negative bool
	mem      []byte
}

// New creates a zero-filled Int with the given buffer length in bytes and sign.
func New(length int, negative bool) *Int {
	return &Int{negative: negative, mem: make([]byte, length)}
}

// FromBytes creates an Int of len(bytes) bytes initialized with a copy of the
// given little-endian byte values and the given sign.
func FromBytes(bytes []byte, negative bool) *Int {
	v := New(len(bytes), negative)
	copy(v.mem, bytes)
	return v
}

// Len returns the fixed buffer length in bytes.
func (v *Int) Len() int { return len(v.mem) }

// Negative reports whether the sign flag is set.
func (v *Int) Negative() bool { return v.negative }

// SetNegative sets the sign flag.
func (v *Int) SetNegative(negative bool) { v.negative = negative }

// Negate inverts the sign flag.
func (v *Int) Negate() { v.negative = !v.negative }

// Release frees the backing buffer. Calling Release twice on the same Int is
// a programming error and panics, mirroring the double-free guard of the
// underlying representation. Every Int must be released exactly once by its
// owner.
func (v *Int) Release() {
	if v.mem == nil {
		panic("bigint: Release called twice on the same Int")
	}
	v.mem = nil
}

// Released reports whether the backing buffer has been released.
func (v *Int) Released() bool { return v.mem == nil }

// Byte returns the byte at the given index (0 = least significant).
func (v *Int) Byte(index int) byte { return v.mem[index] }

// SetByte sets the byte at the given index (0 = least significant).
func (v *Int) SetByte(index int, value byte) { v.mem[index] = value }

// Bit returns the bit at the given bit index (0 = least significant).
func (v *Int) Bit(bitIndex int) bool {
	return (v.mem[bitIndex/8]>>(bitIndex%8))&0x1 == 1
}

// SetBit sets or clears the bit at the given bit index.
func (v *Int) SetBit(bitIndex int, value bool) {
	b := v.Byte(bitIndex / 8)
	i := bitIndex % 8
	if value {
		b |= 0x01 << i
	} else {
		b &^= 0x01 << i
	}
	v.SetByte(bitIndex/8, b)
}

// Lane15 is a 15-byte lane viewed as two unsigned words: Lo holds bytes 0..7
// of the lane, Hi holds bytes 8..14 in its low 56 bits. The top byte of Hi is
// always zero on load, which leaves room for a carry bit at bit 56+64 = 120
// of the lane after a lane-wide add.
type Lane15 struct {
	Lo, Hi uint64
}

// Lane7 returns the 7 bytes starting at index as an unsigned 64-bit value
// (little-endian, top byte zero). It panics if the lane would read past the
// buffer end.
func (v *Int) Lane7(index int) uint64 {
	if index+6 >= len(v.mem) {
		panic(fmt.Sprintf("bigint: 7-byte lane read out of bounds (index %d, length %d)", index, len(v.mem)))
	}
	m := v.mem[index:]
	return uint64(m[0]) | uint64(m[1])<<8 | uint64(m[2])<<16 | uint64(m[3])<<24 |
		uint64(m[4])<<32 | uint64(m[5])<<40 | uint64(m[6])<<48
}

// SetLane7 writes the low 7 bytes of value at index. It panics if the lane
// would write past the buffer end.
func (v *Int) SetLane7(index int, value uint64) {
	if index+6 >= len(v.mem) {
		panic(fmt.Sprintf("bigint: 7-byte lane write out of bounds (index %d, length %d)", index, len(v.mem)))
	}
	m := v.mem[index:]
	m[0] = byte(value)
	m[1] = byte(value >> 8)
	m[2] = byte(value >> 16)
	m[3] = byte(value >> 24)
	m[4] = byte(value >> 32)
	m[5] = byte(value >> 40)
	m[6] = byte(value >> 48)
}

// Lane15At returns the 15 bytes starting at index as a Lane15. It panics if
// the lane would read past the buffer end.
func (v *Int) Lane15At(index int) Lane15 {
	if index+14 >= len(v.mem) {
		panic(fmt.Sprintf("bigint: 15-byte lane read out of bounds (index %d, length %d)", index, len(v.mem)))
	}
	m := v.mem[index:]
	lo := uint64(m[0]) | uint64(m[1])<<8 | uint64(m[2])<<16 | uint64(m[3])<<24 |
		uint64(m[4])<<32 | uint64(m[5])<<40 | uint64(m[6])<<48 | uint64(m[7])<<56
	hi := uint64(m[8]) | uint64(m[9])<<8 | uint64(m[10])<<16 | uint64(m[11])<<24 |
		uint64(m[12])<<32 | uint64(m[13])<<40 | uint64(m[14])<<48
	return Lane15{Lo: lo, Hi: hi}
}

// SetLane15At writes the low 15 bytes of the lane at index. Bits above bit
// 119 of the lane are discarded. It panics if the lane would write past the
// buffer end.
func (v *Int) SetLane15At(index int, lane Lane15) {
	if index+14 >= len(v.mem) {
		panic(fmt.Sprintf("bigint: 15-byte lane write out of bounds (index %d, length %d)", index, len(v.mem)))
	}
	m := v.mem[index:]
	m[0] = byte(lane.Lo)
	m[1] = byte(lane.Lo >> 8)
	m[2] = byte(lane.Lo >> 16)
	m[3] = byte(lane.Lo >> 24)
	m[4] = byte(lane.Lo >> 32)
	m[5] = byte(lane.Lo >> 40)
	m[6] = byte(lane.Lo >> 48)
	m[7] = byte(lane.Lo >> 56)
	m[8] = byte(lane.Hi)
	m[9] = byte(lane.Hi >> 8)
	m[10] = byte(lane.Hi >> 16)
	m[11] = byte(lane.Hi >> 24)
	m[12] = byte(lane.Hi >> 32)
	m[13] = byte(lane.Hi >> 40)
	m[14] = byte(lane.Hi >> 48)
}

// MostSignificantBit returns the top bit of the most significant byte,
// independent of the sign flag.
func (v *Int) MostSignificantBit() bool {
	return v.Byte(len(v.mem)-1)&0x80 != 0
}

// Clone creates a new Int with the same length, sign and byte values.
func (v *Int) Clone() *Int {
	c := New(len(v.mem), v.negative)
	copy(c.mem, v.mem)
	return c
}

// CloneGrow creates a new Int with extra additional zero bytes of headroom
// above the original length, preserving sign and value. Used for results that
// may carry beyond an operand's length.
func (v *Int) CloneGrow(extra int) *Int {
	c := New(len(v.mem)+extra, v.negative)
	copy(c.mem, v.mem)
	return c
}

// CopyInto copies the value and sign of v into dst. dst keeps its own length:
// it is zeroed first, then min(v.Len, dst.Len) bytes are copied, so the value
// is zero-extended or truncated as dst's capacity dictates.
func (v *Int) CopyInto(dst *Int) {
	dst.SetZero()
	dst.negative = v.negative
	copy(dst.mem, v.mem)
}

// SetZero zero-fills the buffer in place and clears the sign to positive.
func (v *Int) SetZero() {
	for i := range v.mem {
		v.mem[i] = 0
	}
	v.negative = false
}

// IsZero reports whether the magnitude is zero, ignoring the sign flag. The
// vec flag selects the lane-accelerated scan; both variants agree.
func (v *Int) IsZero(vec bool) bool {
	if vec {
		return v.isZeroVector()
	}
	for i := range v.mem {
		if v.mem[i] != 0 {
			return false
		}
	}
	return true
}

// isZeroVector scans 15-byte lanes, then 7-byte lanes, then single bytes.
func (v *Int) isZeroVector() bool {
	length := len(v.mem)
	i := 0
	for ; i+14 < length; i += 15 {
		lane := v.Lane15At(i)
		if lane.Lo != 0 || lane.Hi != 0 {
			return false
		}
	}
	for ; i+6 < length; i += 7 {
		if v.Lane7(i) != 0 {
			return false
		}
	}
	for ; i < length; i++ {
		if v.mem[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports sign-and-magnitude equality. The buffers may differ in
// length; missing high bytes compare as zero. +0 and -0 are not equal: use
// IsZero where sign-agnostic zero-ness matters.
func (v *Int) Equal(other *Int) bool {
	if v.negative != other.negative {
		return false
	}
	if v.isZeroVector() && other.isZeroVector() {
		return true
	}
	for i := 0; i < len(v.mem) || i < len(other.mem); i++ {
		switch {
		case i < len(v.mem) && i < len(other.mem):
			if v.mem[i] != other.mem[i] {
				return false
			}
		case i < len(v.mem):
			if v.mem[i] != 0 {
				return false
			}
		default:
			if other.mem[i] != 0 {
				return false
			}
		}
	}
	return true
}

// String renders the value for debugging: sign, hex bytes from most to least
// significant, and the buffer length.
func (v *Int) String() string {
	if v.mem == nil {
		return "bigint(released)"
	}
	sign := "+"
	if v.negative {
		sign = "-"
	}
	s := sign + " 0x"
	for i := len(v.mem) - 1; i >= 0; i-- {
		s += fmt.Sprintf("%02X", v.mem[i])
	}
	return fmt.Sprintf("%s (length: %d bytes)", s, len(v.mem))
}
