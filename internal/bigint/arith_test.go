package bigint

import (
	"testing"
)

// vecVariants runs the test body once with the scalar kernels and once with
// the vectorized ones; both must behave identically.
func vecVariants(t *testing.T, body func(t *testing.T, vec bool)) {
	t.Helper()
	t.Run("scalar", func(t *testing.T) { body(t, false) })
	t.Run("vector", func(t *testing.T) { body(t, true) })
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"both positive", 5, 5, 10},
		{"negative plus larger positive", -20, 36, 16},
		{"both negative", -20, -55, -75},
		{"positive plus smaller negative", 60, -14, 46},
		{"positive plus larger negative", 14, -60, -46},
		{"negative plus smaller positive", -36, 20, -16},
		{"zero plus zero", 0, 0, 0},
		{"value plus zero", 123456, 0, 123456},
	}

	vecVariants(t, func(t *testing.T, vec bool) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Operand sizes span the lane widths.
				for _, length := range []int{4, 8, 16, 32} {
					a := fromInt64(tt.a, length+1)
					b := fromInt64(tt.b, length)

					Add(a, b, vec)

					if tt.want == 0 {
						if !a.IsZero(vec) {
							t.Fatalf("length %d: %d + %d = %v, want zero", length, tt.a, tt.b, a)
						}
					} else if got := toBig(a).Int64(); got != tt.want {
						t.Fatalf("length %d: %d + %d = %d, want %d", length, tt.a, tt.b, got, tt.want)
					}

					a.Release()
					b.Release()
				}
			})
		}
	})
}

func TestAddPreservesSecondOperand(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		a := fromInt64(100, 4)
		b := fromInt64(-250, 3)
		defer a.Release()
		defer b.Release()

		Add(a, b, vec)

		if got := toBig(b).Int64(); got != -250 {
			t.Errorf("second operand changed to %d, want -250", got)
		}
	})
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"larger minus smaller", 60, 14, 46},
		{"smaller minus larger", 14, 60, -46},
		{"positive minus negative", 20, -55, 75},
		{"negative minus positive", -20, 55, -75},
		{"negative minus smaller negative", -55, -20, -35},
		{"negative minus larger negative", -20, -55, 35},
		{"equal operands", 42, 42, 0},
		{"zero minus value", 0, 17, -17},
	}

	vecVariants(t, func(t *testing.T, vec bool) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				for _, length := range []int{4, 8, 16, 32} {
					a := fromInt64(tt.a, length+1)
					b := fromInt64(tt.b, length)

					Sub(a, b, vec)

					if tt.want == 0 {
						if !a.IsZero(vec) {
							t.Fatalf("length %d: %d - %d = %v, want zero", length, tt.a, tt.b, a)
						}
					} else if got := toBig(a).Int64(); got != tt.want {
						t.Fatalf("length %d: %d - %d = %d, want %d", length, tt.a, tt.b, got, tt.want)
					}

					a.Release()
					b.Release()
				}
			})
		}
	})
}

func TestSubRestoresSecondOperand(t *testing.T) {
	// The smaller-minus-larger path temporarily computes in b's buffer; b must
	// come back unchanged.
	vecVariants(t, func(t *testing.T, vec bool) {
		a := fromInt64(14, 4)
		b := fromInt64(60, 4)
		defer a.Release()
		defer b.Release()

		Sub(a, b, vec)

		if got := toBig(a).Int64(); got != -46 {
			t.Errorf("14 - 60 = %d, want -46", got)
		}
		if got := toBig(b).Int64(); got != 60 {
			t.Errorf("second operand changed to %d, want 60", got)
		}
	})
}

func TestAddCarryChains(t *testing.T) {
	// Carry propagation across byte, 7-byte, and 15-byte lane boundaries.
	vecVariants(t, func(t *testing.T, vec bool) {
		for _, length := range []int{8, 15, 16, 30, 31} {
			a := New(length+1, false)
			b := New(length, false)

			for i := 0; i < length; i++ {
				a.SetByte(i, 0xFF)
			}
			b.SetByte(0, 1)

			Add(a, b, vec)

			// 0xFF..FF + 1 = 0x100..00
			for i := 0; i < length; i++ {
				if a.Byte(i) != 0 {
					t.Fatalf("length %d: byte %d = %#x, want 0", length, i, a.Byte(i))
				}
			}
			if a.Byte(length) != 1 {
				t.Fatalf("length %d: carry byte = %#x, want 1", length, a.Byte(length))
			}

			a.Release()
			b.Release()
		}
	})
}

func TestSubBorrowChains(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		for _, length := range []int{8, 15, 16, 30, 31} {
			a := New(length+1, false)
			b := New(length, false)

			a.SetByte(length, 1) // a = 0x100..00
			b.SetByte(0, 1)

			Sub(a, b, vec)

			// 0x100..00 - 1 = 0xFF..FF
			for i := 0; i < length; i++ {
				if a.Byte(i) != 0xFF {
					t.Fatalf("length %d: byte %d = %#x, want 0xFF", length, i, a.Byte(i))
				}
			}
			if a.Byte(length) != 0 {
				t.Fatalf("length %d: top byte = %#x, want 0", length, a.Byte(length))
			}

			a.Release()
			b.Release()
		}
	})
}

func TestIncrement(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		v := fromInt64(41, 2)
		defer v.Release()
		Increment(v)
		if got := toBig(v).Int64(); got != 42 {
			t.Errorf("got %d, want 42", got)
		}
	})

	t.Run("ripple carry", func(t *testing.T) {
		v := fromInt64(0xFF, 2)
		defer v.Release()
		Increment(v)
		if got := toBig(v).Int64(); got != 0x100 {
			t.Errorf("got %#x, want 0x100", got)
		}
	})

	t.Run("carry stops at first non-overflowing byte", func(t *testing.T) {
		v := fromInt64(0x01FF, 3)
		defer v.Release()
		Increment(v)
		if got := toBig(v).Int64(); got != 0x200 {
			t.Errorf("got %#x, want 0x200", got)
		}
	})

	t.Run("negative value decrements non-zero bytes", func(t *testing.T) {
		// The negative branch walks every byte, stepping each non-zero one
		// down and skipping zeros.
		v := FromBytes([]byte{2, 0, 3}, true)
		defer v.Release()
		Increment(v)
		if v.Byte(0) != 1 || v.Byte(1) != 0 || v.Byte(2) != 2 {
			t.Errorf("bytes = [%d %d %d], want [1 0 2]", v.Byte(0), v.Byte(1), v.Byte(2))
		}
	})
}

func TestShlBits(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		for _, length := range []int{2, 7, 8, 14, 16} {
			for shift := uint8(0); shift <= 7; shift++ {
				v := fromInt64(0x0123, length)

				ShlBits(v, shift, vec)

				want := int64(0x0123) << shift
				if got := toBig(v).Int64(); got != want {
					t.Fatalf("length %d shift %d: got %#x, want %#x", length, shift, got, want)
				}
				v.Release()
			}
		}
	})

	t.Run("bits shifted past the buffer are dropped", func(t *testing.T) {
		vecVariants(t, func(t *testing.T, vec bool) {
			v := FromBytes([]byte{0x00, 0xC0}, false)
			defer v.Release()

			ShlBits(v, 2, vec)

			if v.Byte(0) != 0 || v.Byte(1) != 0 {
				t.Errorf("bytes = [%#x %#x], want [0 0]", v.Byte(0), v.Byte(1))
			}
		})
	})
}

func TestShlBytes(t *testing.T) {
	v := FromBytes([]byte{0x11, 0x22, 0x33, 0, 0}, false)
	defer v.Release()

	ShlBytes(v, 2)

	want := []byte{0, 0, 0x11, 0x22, 0x33}
	for i, w := range want {
		if v.Byte(i) != w {
			t.Errorf("byte %d = %#x, want %#x", i, v.Byte(i), w)
		}
	}
}

func TestMulByte(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		tests := []struct {
			value int64
			mul   uint8
		}{
			{0, 77},
			{1, 1},
			{123, 0},
			{255, 255},
			{300, 2},
			{0x1234, 16},
			{987654, 251},
		}

		for _, tt := range tests {
			value := fromInt64(tt.value, 8)
			result := New(9, false)
			temp := New(9, false)

			MulByte(value, tt.mul, result, temp, vec)

			want := tt.value * int64(tt.mul)
			if want == 0 {
				if !result.IsZero(vec) {
					t.Fatalf("%d * %d = %v, want zero", tt.value, tt.mul, result)
				}
			} else if got := toBig(result).Int64(); got != want {
				t.Fatalf("%d * %d = %d, want %d", tt.value, tt.mul, got, want)
			}

			value.Release()
			result.Release()
			temp.Release()
		}
	})
}

func TestMulSmall(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		tests := []struct {
			value int64
			mul   int16
			want  int64
		}{
			{10, 10, 100},
			{10, -10, -100},
			{-10, 10, -100},
			{-10, -10, 100},
			{1, 255, 255},
			{4660, -2, -9320},
		}

		for _, tt := range tests {
			value := fromInt64(tt.value, 6)
			result := New(8, false)
			temp := New(8, false)

			MulSmall(value, tt.mul, result, temp, vec)

			if got := toBig(result).Int64(); got != tt.want {
				t.Fatalf("%d * %d = %d, want %d", tt.value, tt.mul, got, tt.want)
			}

			value.Release()
			result.Release()
			temp.Release()
		}
	})
}

func TestMul(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		tests := []struct {
			name string
			a, b int64
		}{
			{"small", 7, 6},
			{"large", 58975131579787, 10828055},
			{"one negative", -4096, 257},
			{"both negative", -1000003, -999983},
			{"by zero", 918273645, 0},
			{"by one", 918273645, 1},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := fromInt64(tt.a, 8)
				b := fromInt64(tt.b, 8)
				res := New(16, false)
				defer a.Release()
				defer b.Release()
				defer res.Release()

				Mul(a, b, res, vec)

				want := toBig(a)
				want.Mul(want, toBig(b))
				got := toBig(res)
				if tt.a == 0 || tt.b == 0 {
					if !res.IsZero(vec) {
						t.Fatalf("%d * %d = %v, want zero", tt.a, tt.b, res)
					}
				} else if got.Cmp(want) != 0 {
					t.Fatalf("%d * %d = %s, want %s", tt.a, tt.b, got, want)
				}
			})
		}
	})
}

func TestDivSmall(t *testing.T) {
	vecVariants(t, func(t *testing.T, vec bool) {
		tests := []struct {
			name     string
			value    int64
			divisor  int16
			wantQuot int64
			wantRem  int16
		}{
			{"exact", 16, 4, 4, 0},
			{"positive with remainder", 17, 8, 2, 1},
			{"negative dividend", -17, 8, -2, -1},
			{"both negative", -17, -8, 2, -1},
			{"negative divisor", 17, -8, -2, 1},
			{"dividend smaller than divisor", 3, 8, 0, 3},
			{"large dividend", 1000000007, 97, 10309278, 41},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				value := fromInt64(tt.value, 6)
				quot := New(6, false)
				rem := New(6, false)
				defer value.Release()
				defer quot.Release()
				defer rem.Release()

				gotRem := DivSmall(value, tt.divisor, quot, rem, vec)

				if gotRem != tt.wantRem {
					t.Errorf("remainder = %d, want %d", gotRem, tt.wantRem)
				}
				if tt.wantQuot == 0 {
					if !value.IsZero(vec) {
						t.Errorf("quotient = %v, want zero", value)
					}
				} else if got := toBig(value).Int64(); got != tt.wantQuot {
					t.Errorf("quotient = %d, want %d", got, tt.wantQuot)
				}
			})
		}
	})
}

func TestDivSmallByZeroPanics(t *testing.T) {
	value := fromInt64(10, 4)
	quot := New(4, false)
	rem := New(4, false)
	defer value.Release()
	defer quot.Release()
	defer rem.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on division by zero")
		}
	}()
	DivSmall(value, 0, quot, rem, false)
}
