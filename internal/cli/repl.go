package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/basecalc/internal/config"
	"github.com/agbru/basecalc/internal/engine"
	"github.com/agbru/basecalc/internal/radix"
	"github.com/agbru/basecalc/internal/ui"
)

// REPL is an interactive calculator session. The base, alphabet, and engine
// are session state that expressions are evaluated against.
type REPL struct {
	registry *engine.Registry
	base     int
	alphabet string
	current  engine.Engine
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a REPL seeded from the given configuration.
func NewREPL(registry *engine.Registry, cfg config.AppConfig) *REPL {
	current, err := registry.Get(cfg.Engine)
	if err != nil {
		current = registry.All()[0]
	}
	return &REPL{
		registry: registry,
		base:     cfg.Base,
		alphabet: cfg.Alphabet,
		current:  current,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the session until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	theme := ui.GetCurrentTheme()

	for {
		fmt.Fprintf(r.out, "%sbase %d>%s ", theme.Primary, r.base, theme.Reset)

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", theme.Error, err, theme.Reset)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processLine(input) {
			return
		}
	}
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "%sCommands:%s\n", theme.Bold, theme.Reset)
	fmt.Fprintf(r.out, "  %s<z1> <op> <z2>%s  - Evaluate, e.g. 17 * -4 (op: + - *)\n", theme.Warning, theme.Reset)
	fmt.Fprintf(r.out, "  %sbase <n>%s        - Change the radix (magnitude 2..128)\n", theme.Warning, theme.Reset)
	fmt.Fprintf(r.out, "  %salphabet <s>%s    - Change the digit symbols\n", theme.Warning, theme.Reset)
	fmt.Fprintf(r.out, "  %sengine <name>%s   - Change the engine (%s)\n", theme.Warning, theme.Reset,
		strings.Join(r.registry.Names(), ", "))
	fmt.Fprintf(r.out, "  %slist%s            - List available engines\n", theme.Warning, theme.Reset)
	fmt.Fprintf(r.out, "  %sstatus%s          - Display current session state\n", theme.Warning, theme.Reset)
	fmt.Fprintf(r.out, "  %shelp%s            - Display this help\n", theme.Warning, theme.Reset)
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Leave the session\n", theme.Warning, theme.Reset, theme.Warning, theme.Reset)
}

// processLine parses and executes one input line.
// Returns false if the REPL should exit.
func (r *REPL) processLine(input string) bool {
	theme := ui.GetCurrentTheme()
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "base", "b":
		r.cmdBase(args)
	case "alphabet", "a":
		r.cmdAlphabet(args)
	case "engine", "e":
		r.cmdEngine(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", theme.Success, theme.Reset)
		return false
	default:
		if len(parts) == 3 && len(parts[1]) == 1 && strings.IndexByte("+-*", parts[1][0]) >= 0 {
			r.evaluate(parts[0], parts[1][0], parts[2])
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", theme.Error, cmd, theme.Reset)
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", theme.Warning, theme.Reset)
		}
	}

	return true
}

// evaluate computes z1 <op> z2 with the session engine.
func (r *REPL) evaluate(z1 string, op byte, z2 string) {
	theme := ui.GetCurrentTheme()

	if err := radix.ValidateOperand("z1", z1, r.alphabet, r.base); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", theme.Error, err, theme.Reset)
		return
	}
	if err := radix.ValidateOperand("z2", z2, r.alphabet, r.base); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", theme.Error, err, theme.Reset)
		return
	}

	start := time.Now()
	out, err := r.current.Compute(r.base, r.alphabet, z1, z2, op)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", theme.Error, err, theme.Reset)
		return
	}

	fmt.Fprintf(r.out, "%s%s%s %s(%s)%s\n",
		theme.Success, out, theme.Reset,
		theme.Secondary, FormatExecutionDuration(duration), theme.Reset)
}

// cmdBase handles the "base" command. The alphabet is re-derived for the new
// base when possible; otherwise the user must set one explicitly.
func (r *REPL) cmdBase(args []string) {
	theme := ui.GetCurrentTheme()
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: base <n>%s\n", theme.Error, theme.Reset)
		return
	}

	base, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid base: %s%s\n", theme.Error, args[0], theme.Reset)
		return
	}
	if err := radix.ValidateBase(base); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", theme.Error, err, theme.Reset)
		return
	}

	r.base = base
	if alphabet, ok := radix.DefaultAlphabet(base); ok {
		r.alphabet = alphabet
		fmt.Fprintf(r.out, "Base changed to %s%d%s (alphabet %q)\n", theme.Success, base, theme.Reset, alphabet)
	} else {
		r.alphabet = ""
		fmt.Fprintf(r.out, "Base changed to %s%d%s; set an alphabet of %d symbols before evaluating\n",
			theme.Success, base, theme.Reset, absInt(base))
	}
}

// cmdAlphabet handles the "alphabet" command.
func (r *REPL) cmdAlphabet(args []string) {
	theme := ui.GetCurrentTheme()
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: alphabet <symbols>%s\n", theme.Error, theme.Reset)
		return
	}

	if err := radix.ValidateAlphabet(args[0], r.base); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", theme.Error, err, theme.Reset)
		return
	}

	r.alphabet = args[0]
	fmt.Fprintf(r.out, "Alphabet changed to %s%q%s\n", theme.Success, r.alphabet, theme.Reset)
}

// cmdEngine handles the "engine" command.
func (r *REPL) cmdEngine(args []string) {
	theme := ui.GetCurrentTheme()
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: engine <name>%s\n", theme.Error, theme.Reset)
		fmt.Fprintf(r.out, "Available engines: %s\n", strings.Join(r.registry.Names(), ", "))
		return
	}

	eng, err := r.registry.Get(strings.ToLower(args[0]))
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", theme.Error, err, theme.Reset)
		return
	}

	r.current = eng
	fmt.Fprintf(r.out, "Engine changed to: %s%s%s\n", theme.Success, eng.Name(), theme.Reset)
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "\n%sAvailable engines:%s\n", theme.Bold, theme.Reset)
	for _, e := range r.registry.All() {
		marker := "  "
		if e.Name() == r.current.Name() {
			marker = theme.Success + "> " + theme.Reset
		}
		fmt.Fprintf(r.out, "%s%s%-8s%s - %s\n", marker, theme.Warning, e.Name(), theme.Reset, e.Description())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays the current session state.
func (r *REPL) cmdStatus() {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "\n%sCurrent session:%s\n", theme.Bold, theme.Reset)
	fmt.Fprintf(r.out, "  Base:     %s%d%s\n", theme.Primary, r.base, theme.Reset)
	fmt.Fprintf(r.out, "  Alphabet: %s%q%s\n", theme.Primary, r.alphabet, theme.Reset)
	fmt.Fprintf(r.out, "  Engine:   %s%s%s\n", theme.Primary, r.current.Name(), theme.Reset)
	fmt.Fprintln(r.out)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
