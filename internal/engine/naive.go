package engine

import (
	"github.com/agbru/basecalc/internal/metrics"
	"github.com/agbru/basecalc/internal/naive"
)

// Naive adapts the digit-wise reference implementation to the Engine
// interface.
type Naive struct{}

// NewNaive creates the naive engine.
func NewNaive() *Naive {
	return &Naive{}
}

// Name returns "naive".
func (e *Naive) Name() string { return "naive" }

// Description returns a one-line description of the engine.
func (e *Naive) Description() string {
	return "schoolbook arithmetic directly on the digit strings"
}

// Compute evaluates z1 <op> z2 digit by digit.
func (e *Naive) Compute(base int, alphabet, z1, z2 string, op byte) (string, error) {
	out, err := naive.Compute(base, alphabet, z1, z2, op)
	if err != nil {
		metrics.RecordOperationError(e.Name())
		return "", err
	}
	metrics.RecordOperation(e.Name(), op)
	return out, nil
}
