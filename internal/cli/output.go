// Package cli renders results, reports, and the interactive session on the
// terminal.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/basecalc/internal/bench"
	"github.com/agbru/basecalc/internal/engine"
	"github.com/agbru/basecalc/internal/orchestration"
	"github.com/agbru/basecalc/internal/ui"
)

// Printer renders computation output.
type Printer struct {
	out   io.Writer
	quiet bool
}

// NewPrinter creates a printer. In quiet mode only result digits are emitted.
func NewPrinter(out io.Writer, quiet bool) *Printer {
	return &Printer{out: out, quiet: quiet}
}

// PrintResult renders a single computation result.
func (p *Printer) PrintResult(z1 string, op byte, z2, result string, duration time.Duration) {
	if p.quiet {
		fmt.Fprintln(p.out, result)
		return
	}
	theme := ui.GetCurrentTheme()
	styles := ui.GetCurrentStyles()
	fmt.Fprintf(p.out, "%s %c %s = %s\n", z1, op, z2, styles.Result.Render(result))
	fmt.Fprintf(p.out, "%s(%s)%s\n", theme.Secondary, FormatExecutionDuration(duration), theme.Reset)
}

// PrintEngineList renders the engine table: index, name, description.
func (p *Printer) PrintEngineList(engines []engine.Engine) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(p.out, "%sAvailable engines:%s\n", theme.Bold, theme.Reset)
	for i, e := range engines {
		fmt.Fprintf(p.out, "  %d. %s%-8s%s %s\n", i, theme.Primary, e.Name(), theme.Reset, e.Description())
	}
}

// PrintComparison renders the per-engine comparison table, fastest first
// among successes.
func (p *Printer) PrintComparison(results []orchestration.EngineResult) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(p.out, "%s%-8s %14s  %s%s\n", theme.Bold, "ENGINE", "DURATION", "RESULT", theme.Reset)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(p.out, "%-8s %14s  %serror: %v%s\n",
				res.Name, "-", theme.Error, res.Err, theme.Reset)
			continue
		}
		fmt.Fprintf(p.out, "%-8s %14s  %s\n",
			res.Name, FormatExecutionDuration(res.Duration), res.Output)
	}
}

// PrintBenchReport renders the benchmark report box.
func (p *Printer) PrintBenchReport(engineName string, res bench.Result) {
	if p.quiet {
		fmt.Fprintln(p.out, res.Output)
		return
	}
	styles := ui.GetCurrentStyles()

	label := func(s string) string { return styles.ReportLabel.Render(s) }
	body := styles.ReportTitle.Render(fmt.Sprintf("Benchmark: %s engine, %d repetitions", engineName, res.Reps)) + "\n" +
		fmt.Sprintf("%s %s\n", label("result: "), res.Output) +
		fmt.Sprintf("%s %s total, %s mean\n", label("time:   "),
			FormatExecutionDuration(res.Total), FormatExecutionDuration(res.Mean)) +
		fmt.Sprintf("%s %s heap allocated, %d GC cycles\n", label("memory: "),
			formatBytes(res.Memory.HeapAlloc), res.Memory.NumGC) +
		fmt.Sprintf("%s %.1f%% CPU, %.1f%% memory (%s / %s)", label("system: "),
			res.System.CPUPercent, res.System.MemPercent,
			formatBytes(res.System.MemUsed), formatBytes(res.System.MemTotal))

	fmt.Fprintln(p.out, styles.ReportBox.Render(body))
}

// PrintError renders an error message.
func (p *Printer) PrintError(err error) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(p.out, "%sError:%s %v\n", theme.Error, theme.Reset, err)
}

// FormatExecutionDuration formats a duration with a precision suited to its
// magnitude.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}

// formatBytes renders a byte count in binary units.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
