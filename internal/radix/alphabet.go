package radix

import (
	"strings"
	"unicode"

	apperrors "github.com/agbru/basecalc/internal/errors"
)

// MinBase and MaxBase bound the supported base magnitude.
const (
	MinBase = 2
	MaxBase = 128
)

// Alphabet maps digit values to symbols and back. The value lookup table
// covers every byte; symbols that are not part of the alphabet map to zero,
// which makes a leading '-' sign character act as a zero digit during
// weighted summation.
type Alphabet struct {
	symbols string
	lookup  [256]uint8
}

// NewAlphabet builds an Alphabet from its symbol string. The i-th symbol
// denotes digit value i. The caller is responsible for validating the string
// (see ValidateAlphabet); the engine assumes validated input.
func NewAlphabet(symbols string) Alphabet {
	a := Alphabet{symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		a.lookup[symbols[i]] = uint8(i)
	}
	return a
}

// Symbols returns the alphabet's symbol string.
func (a *Alphabet) Symbols() string { return a.symbols }

// Value returns the digit value of the given symbol, or zero for symbols
// outside the alphabet.
func (a *Alphabet) Value(symbol byte) uint8 { return a.lookup[symbol] }

// Symbol returns the symbol for the given digit value.
func (a *Alphabet) Symbol(value uint8) byte { return a.symbols[value] }

// Zero returns the symbol for digit value zero.
func (a *Alphabet) Zero() byte { return a.symbols[0] }

// ValidateBase checks that the base magnitude lies in [MinBase, MaxBase].
func ValidateBase(base int) error {
	abs := base
	if abs < 0 {
		abs = -abs
	}
	if abs < MinBase || abs > MaxBase {
		return apperrors.NewValidationError("base", "base magnitude must be in [%d, %d], got %d", MinBase, MaxBase, base)
	}
	return nil
}

// ValidateAlphabet checks the well-formedness rules for an alphabet string:
// its length must equal the base magnitude, every symbol must be printable
// ASCII, no symbol may repeat, and '-' is forbidden for positive bases (it
// marks negative operands there; negative bases encode sign in the digits).
func ValidateAlphabet(alphabet string, base int) error {
	abs := base
	if abs < 0 {
		abs = -abs
	}
	if len(alphabet) != abs {
		return apperrors.NewValidationError("alphabet",
			"alphabet length %d does not match base magnitude %d", len(alphabet), abs)
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if base > 0 && c == '-' {
			return apperrors.NewValidationError("alphabet",
				"alphabet contains '-', which is reserved for the sign when the base is positive")
		}
		if c > unicode.MaxASCII || !unicode.IsPrint(rune(c)) {
			return apperrors.NewValidationError("alphabet",
				"alphabet contains a symbol that is not printable ASCII at index %d", i)
		}
		if strings.IndexByte(alphabet[i+1:], c) >= 0 {
			return apperrors.NewValidationError("alphabet",
				"alphabet contains the symbol %q more than once", string(c))
		}
	}
	return nil
}

// ValidateOperand checks that an operand is a non-empty string of alphabet
// symbols, optionally '-'-prefixed when the base is positive.
func ValidateOperand(field, operand, alphabet string, base int) error {
	digits := operand
	if base > 0 && strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return apperrors.NewValidationError(field, "operand is empty")
	}
	for i := 0; i < len(digits); i++ {
		if strings.IndexByte(alphabet, digits[i]) < 0 {
			return apperrors.NewValidationError(field,
				"operand contains %q, which is not in the alphabet %q", string(digits[i]), alphabet)
		}
	}
	return nil
}

// DefaultAlphabet returns the conventional decimal-digit alphabet "01...9"
// truncated to the base magnitude. Only defined for base magnitudes up to 10;
// larger bases need an explicit alphabet.
func DefaultAlphabet(base int) (string, bool) {
	abs := base
	if abs < 0 {
		abs = -abs
	}
	if abs > 10 {
		return "", false
	}
	return "0123456789"[:abs], true
}
