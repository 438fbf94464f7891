// Package config defines the application configuration, command-line parsing,
// environment overrides, and input validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/basecalc/internal/errors"
	"github.com/agbru/basecalc/internal/radix"
)

// EnvPrefix is prepended to every environment variable override key.
const EnvPrefix = "BASECALC_"

// AppConfig holds the full application configuration resolved from defaults,
// environment variables, and command-line flags (in increasing priority).
type AppConfig struct {
	// Base is the signed radix; its magnitude must lie in [2, 128].
	Base int
	// Alphabet maps digit values to symbols; index i is the symbol for value
	// i. Empty means "derive the decimal-digit alphabet", which only works
	// for base magnitudes up to 10.
	Alphabet string
	// Operator is one of "+", "-", "*".
	Operator string
	// Engine selects the calculator implementation by registry name.
	Engine string
	// Compare runs all engines concurrently and checks their outputs agree.
	Compare bool
	// Bench, when positive, repeats the computation that many times and
	// prints a timing report instead of just the result.
	Bench int
	// Quiet suppresses everything except the result digits.
	Quiet bool
	// REPL starts an interactive session instead of a one-shot computation.
	REPL bool
	// Listen, when non-empty, serves Prometheus metrics on this address for
	// the duration of the run.
	Listen string
	// NoColor disables colored output.
	NoColor bool
	// List prints the available engines and exits.
	List bool
	// Version prints the version and exits.
	Version bool
	// Z1 and Z2 are the positional operand digit strings.
	Z1, Z2 string
}

// DefaultConfig returns the configuration used before flags and environment
// variables are applied.
func DefaultConfig() AppConfig {
	return AppConfig{
		Base:     10,
		Operator: "+",
		Engine:   "vector",
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not set on the command line, and
// validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and parse error output.
//   - engineNames: The valid engine names, for validation and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, a ConfigError or
//     ValidationError otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer, engineNames []string) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Base, "b", cfg.Base, "signed radix (magnitude 2..128)")
	fs.IntVar(&cfg.Base, "base", cfg.Base, "signed radix (magnitude 2..128)")
	fs.StringVar(&cfg.Alphabet, "a", cfg.Alphabet, "digit symbols, value 0 first (default derived for |base| <= 10)")
	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "digit symbols, value 0 first (default derived for |base| <= 10)")
	fs.StringVar(&cfg.Operator, "o", cfg.Operator, "operator: +, - or *")
	fs.StringVar(&cfg.Operator, "op", cfg.Operator, "operator: +, - or *")
	fs.StringVar(&cfg.Engine, "engine", cfg.Engine, fmt.Sprintf("engine to use (%s)", strings.Join(engineNames, ", ")))
	fs.BoolVar(&cfg.Compare, "compare", cfg.Compare, "run every engine and verify the results agree")
	fs.IntVar(&cfg.Bench, "bench", cfg.Bench, "repeat the computation N times and report timings")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the result digits")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "print only the result digits")
	fs.BoolVar(&cfg.REPL, "repl", cfg.REPL, "start an interactive session")
	fs.StringVar(&cfg.Listen, "listen", cfg.Listen, "serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list the available engines and exit")
	fs.BoolVar(&cfg.Version, "version", cfg.Version, "print the version and exit")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <z1> <z2>\n\n", programName)
		fmt.Fprintf(errWriter, "Computes z1 <op> z2 exactly in an arbitrary radix.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	rest := fs.Args()
	if len(rest) >= 1 {
		cfg.Z1 = rest[0]
	}
	if len(rest) >= 2 {
		cfg.Z2 = rest[1]
	}
	if len(rest) > 2 {
		return cfg, apperrors.NewConfigError("too many positional arguments: expected <z1> <z2>, got %d", len(rest))
	}

	if err := Resolve(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg, engineNames); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve fills in derived configuration values: a default alphabet when none
// was given. It validates the base first since the derivation depends on it.
func Resolve(cfg *AppConfig) error {
	if err := radix.ValidateBase(cfg.Base); err != nil {
		return err
	}
	if cfg.Alphabet == "" {
		alphabet, ok := radix.DefaultAlphabet(cfg.Base)
		if !ok {
			return apperrors.NewConfigError(
				"no default alphabet for base %d: bases with magnitude above 10 need an explicit -a/--alphabet", cfg.Base)
		}
		cfg.Alphabet = alphabet
	}
	return nil
}

// Validate checks the configuration invariants that do not depend on the run
// mode: base range, alphabet well-formedness, operator, engine name, and
// benchmark repetition count. Operand validation is separate (ValidateOperands)
// because the REPL and listing modes run without operands.
func Validate(cfg AppConfig, engineNames []string) error {
	if err := radix.ValidateBase(cfg.Base); err != nil {
		return err
	}
	if err := radix.ValidateAlphabet(cfg.Alphabet, cfg.Base); err != nil {
		return err
	}
	if len(cfg.Operator) != 1 || strings.IndexByte("+-*", cfg.Operator[0]) < 0 {
		return apperrors.NewValidationError("operator", "operator must be one of +, -, *; got %q", cfg.Operator)
	}
	valid := false
	for _, name := range engineNames {
		if cfg.Engine == name {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.NewConfigError("unknown engine %q (available: %s)", cfg.Engine, strings.Join(engineNames, ", "))
	}
	if cfg.Bench < 0 {
		return apperrors.NewValidationError("bench", "repetition count must be positive, got %d", cfg.Bench)
	}
	return nil
}

// ValidateOperands checks that both positional operands are present and drawn
// from the configured alphabet.
func ValidateOperands(cfg AppConfig) error {
	if cfg.Z1 == "" || cfg.Z2 == "" {
		return apperrors.NewConfigError("two operands are required: <z1> <z2>")
	}
	if err := radix.ValidateOperand("z1", cfg.Z1, cfg.Alphabet, cfg.Base); err != nil {
		return err
	}
	return radix.ValidateOperand("z2", cfg.Z2, cfg.Alphabet, cfg.Base)
}
