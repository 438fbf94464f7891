package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerInterval is the frame interval of the benchmark spinner.
const spinnerInterval = 100 * time.Millisecond

// BenchProgress drives a terminal spinner while benchmark repetitions run.
// A disabled instance (quiet mode) is a no-op.
type BenchProgress struct {
	spin *spinner.Spinner
	reps int
}

// NewBenchProgress creates a progress indicator for reps repetitions. When
// enabled is false every method is a no-op.
func NewBenchProgress(out io.Writer, reps int, enabled bool) *BenchProgress {
	p := &BenchProgress{reps: reps}
	if enabled {
		p.spin = spinner.New(spinner.CharSets[14], spinnerInterval, spinner.WithWriter(out))
	}
	return p
}

// Start begins the spinner animation.
func (p *BenchProgress) Start() {
	if p.spin != nil {
		p.spin.Start()
	}
}

// Update sets the spinner label to the current 1-based repetition index.
func (p *BenchProgress) Update(i int) {
	if p.spin != nil {
		p.spin.Suffix = fmt.Sprintf(" repetition %d/%d", i, p.reps)
	}
}

// Stop halts the spinner and clears its line.
func (p *BenchProgress) Stop() {
	if p.spin != nil {
		p.spin.Stop()
	}
}
