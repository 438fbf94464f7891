// Package bench times repeated computations and collects memory and system
// usage readings for the benchmark report.
package bench

import (
	"context"
	"time"

	"github.com/agbru/basecalc/internal/engine"
	apperrors "github.com/agbru/basecalc/internal/errors"
	"github.com/agbru/basecalc/internal/metrics"
	"github.com/agbru/basecalc/internal/orchestration"
	"github.com/agbru/basecalc/internal/sysmon"
)

// DefaultReps is the repetition count used when none is given.
const DefaultReps = 3

// Result holds the outcome of one benchmark run.
type Result struct {
	// Output is the digit string computed by the final repetition.
	Output string
	// Reps is the number of repetitions performed.
	Reps int
	// Total is the wall-clock time across all repetitions.
	Total time.Duration
	// Mean is Total divided by Reps.
	Mean time.Duration
	// Memory is the runtime memory delta from before the first repetition to
	// after the last.
	Memory metrics.MemorySnapshot
	// System is a system-wide CPU/memory sample taken after the run; the CPU
	// percentage covers the benchmark interval.
	System sysmon.Stats
}

// Run executes the request reps times on the engine and reports timing,
// memory, and system usage. onRep, when non-nil, is called before each
// repetition with its 1-based index. The context is checked between
// repetitions so a cancellation interrupts the run.
func Run(ctx context.Context, eng engine.Engine, req orchestration.Request, reps int, onRep func(i int)) (Result, error) {
	if reps <= 0 {
		reps = DefaultReps
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	sysmon.Sample() // prime the CPU delta window

	var out string
	start := time.Now()
	for i := 1; i <= reps; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if onRep != nil {
			onRep(i)
		}

		var err error
		out, err = eng.Compute(req.Base, req.Alphabet, req.Z1, req.Z2, req.Operator)
		if err != nil {
			return Result{}, apperrors.WrapError(err, "benchmark repetition %d", i)
		}
	}
	total := time.Since(start)

	return Result{
		Output: out,
		Reps:   reps,
		Total:  total,
		Mean:   total / time.Duration(reps),
		Memory: before.Delta(collector.Snapshot()),
		System: sysmon.Sample(),
	}, nil
}
