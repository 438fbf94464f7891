// Package orchestration coordinates running the same computation on several
// engines concurrently and checking their results against each other.
package orchestration

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/basecalc/internal/engine"
	apperrors "github.com/agbru/basecalc/internal/errors"
)

// EngineResult encapsulates the outcome of a single engine run. It serves as
// the shared domain type between orchestration and presentation layers.
type EngineResult struct {
	// Name is the registry name of the engine (e.g., "vector").
	Name string
	// Output is the computed digit string. It is empty if an error occurred.
	Output string
	// Duration is the time taken to complete the computation.
	Duration time.Duration
	// Err contains any error that occurred during the computation.
	Err error
}

// Request carries one computation to run across engines.
type Request struct {
	Base     int
	Alphabet string
	Z1, Z2   string
	Operator byte
}

// ExecuteAll runs the request on every given engine concurrently and collects
// the per-engine results in engine order.
func ExecuteAll(engines []engine.Engine, req Request) []EngineResult {
	var g errgroup.Group
	results := make([]EngineResult, len(engines))

	for i, e := range engines {
		idx, eng := i, e
		g.Go(func() error {
			start := time.Now()
			out, err := eng.Compute(req.Base, req.Alphabet, req.Z1, req.Z2, req.Operator)
			results[idx] = EngineResult{
				Name: eng.Name(), Output: out, Duration: time.Since(start), Err: err,
			}
			return nil
		})
	}

	// Per-engine errors are reported through the result slice, never through
	// the group.
	_ = g.Wait()

	return results
}

// CheckConsistency validates that every successful result carries the same
// output string.
//
// Returns:
//   - error: nil when all successful results agree; the first engine error
//     when no engine succeeded; a MismatchError naming the first divergent
//     pair otherwise.
func CheckConsistency(results []EngineResult) error {
	var reference *EngineResult
	var firstErr error

	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if reference == nil {
			reference = &results[i]
			continue
		}
		if results[i].Output != reference.Output {
			return apperrors.MismatchError{
				EngineA: reference.Name,
				EngineB: results[i].Name,
				ResultA: reference.Output,
				ResultB: results[i].Output,
			}
		}
	}

	if reference == nil {
		if firstErr != nil {
			return apperrors.WrapError(firstErr, "no engine could complete the computation")
		}
		return apperrors.NewConfigError("no engines to run")
	}
	return nil
}
