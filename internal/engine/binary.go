package engine

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/basecalc/internal/bigint"
	apperrors "github.com/agbru/basecalc/internal/errors"
	"github.com/agbru/basecalc/internal/metrics"
	"github.com/agbru/basecalc/internal/radix"
)

var tracer = otel.Tracer("github.com/agbru/basecalc/internal/engine")

// Binary converts both operands to sign-and-magnitude byte buffers, computes
// on those, and converts the result back to a digit string. The vector flag
// selects the lane-based arithmetic kernels; both variants produce identical
// results byte for byte.
type Binary struct {
	vector bool
}

// NewBinary creates a binary engine using either the scalar or the vector
// arithmetic kernels.
func NewBinary(vector bool) *Binary {
	return &Binary{vector: vector}
}

// Name returns "scalar" or "vector" depending on the kernel variant.
func (e *Binary) Name() string {
	if e.vector {
		return "vector"
	}
	return "scalar"
}

// Description returns a one-line description of the engine.
func (e *Binary) Description() string {
	if e.vector {
		return "binary arithmetic on 15-byte and 7-byte lanes"
	}
	return "binary arithmetic one byte at a time"
}

// Compute evaluates z1 <op> z2 in the given base.
//
// The operands are converted by weighted summation over a shared positional
// weight, the operation runs on the byte buffers (addition and subtraction in
// place in the first, larger-sized buffer; multiplication into a dedicated
// product buffer), a zero result is normalized to positive sign, and the
// result is converted back with a buffer sized by the per-operator digit
// formulas. Every store is released on every exit path.
func (e *Binary) Compute(base int, alphabet, z1, z2 string, op byte) (string, error) {
	_, span := tracer.Start(context.Background(), "engine.Compute",
		trace.WithAttributes(
			attribute.String("engine", e.Name()),
			attribute.String("operator", string(op)),
			attribute.Int("base", base),
		))
	defer span.End()

	alph := radix.NewAlphabet(alphabet)
	neg1 := base > 0 && strings.HasPrefix(z1, "-")
	neg2 := base > 0 && strings.HasPrefix(z2, "-")

	min1 := radix.MinBytes(int16(base), len(z1))
	min2 := radix.MinBytes(int16(base), len(z2))

	var result *bigint.Int
	var bufLen int

	switch op {
	case '+', '-':
		// The first store doubles as the result store, so it is sized for the
		// larger operand plus one carry byte.
		storeLen := min1
		if min2 > storeLen {
			storeLen = min2
		}
		storeLen++

		a := bigint.New(storeLen, false)
		b := bigint.New(min2, false)
		defer a.Release()
		defer b.Release()

		// A '-' prefix becomes the store sign only once encoding is done.
		// Negative bases have no sign prefix, and their accumulators carry
		// their own sign out of the weighted summation; only set, never clear.
		radix.EncodePair(base, &alph, z1, z2, a, b, e.vector)
		if neg1 {
			a.SetNegative(true)
		}
		if neg2 {
			b.SetNegative(true)
		}
		if op == '+' {
			bigint.Add(a, b, e.vector)
			bufLen = radix.ResultDigitsAdd(len(z1), len(z2), base)
		} else {
			bigint.Sub(a, b, e.vector)
			bufLen = radix.ResultDigitsSub(len(z1), len(z2), base)
		}
		result = a

	case '*':
		a := bigint.New(min1, false)
		b := bigint.New(min2, false)
		res := bigint.New(min1+min2, false)
		defer a.Release()
		defer b.Release()
		defer res.Release()

		radix.EncodePair(base, &alph, z1, z2, a, b, e.vector)
		if neg1 {
			a.SetNegative(true)
		}
		if neg2 {
			b.SetNegative(true)
		}
		bigint.Mul(a, b, res, e.vector)
		bufLen = radix.ResultDigitsMul(len(z1), len(z2), base)
		result = res

	default:
		metrics.RecordOperationError(e.Name())
		return "", apperrors.NewValidationError("operator", "unsupported operator %q", string(op))
	}

	// -0 and +0 must render identically.
	if result.IsZero(e.vector) {
		result.SetNegative(false)
	}

	buf := make([]byte, bufLen)
	n := radix.Decode(result, base, &alph, buf, e.vector)

	metrics.RecordOperation(e.Name(), op)
	return string(buf[:n]), nil
}
