// Package app wires configuration, engines, and output into the runnable
// application and maps every outcome to a process exit code.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/basecalc/internal/bench"
	"github.com/agbru/basecalc/internal/cli"
	"github.com/agbru/basecalc/internal/config"
	"github.com/agbru/basecalc/internal/engine"
	apperrors "github.com/agbru/basecalc/internal/errors"
	"github.com/agbru/basecalc/internal/logging"
	"github.com/agbru/basecalc/internal/orchestration"
	"github.com/agbru/basecalc/internal/server"
	"github.com/agbru/basecalc/internal/ui"
)

// Application represents the basecalc application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *engine.Registry
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	registry := engine.NewRegistry()

	programName := "basecalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, registry.Names())
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Registry:  registry,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Quiet {
		logging.SetDefault(logging.NewNop())
	} else {
		logging.SetDefault(logging.NewConsole(a.ErrWriter))
	}
	ui.InitTheme(a.Config.NoColor)

	printer := cli.NewPrinter(out, a.Config.Quiet)

	if a.Config.Version {
		fmt.Fprintf(out, "basecalc %s\n", Version)
		return apperrors.ExitSuccess
	}
	if a.Config.List {
		printer.PrintEngineList(a.Registry.All())
		return apperrors.ExitSuccess
	}

	if a.Config.Listen != "" {
		srv := server.New(a.Config.Listen, logging.Default())
		srv.Start()
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				logging.Default().Warn("metrics server shutdown", logging.Err(err))
			}
		}()
	}

	if a.Config.REPL {
		repl := cli.NewREPL(a.Registry, a.Config)
		repl.SetOutput(out)
		repl.Start()
		return apperrors.ExitSuccess
	}

	if err := config.ValidateOperands(a.Config); err != nil {
		printer.PrintError(err)
		return apperrors.ExitCodeForError(err)
	}

	req := orchestration.Request{
		Base:     a.Config.Base,
		Alphabet: a.Config.Alphabet,
		Z1:       a.Config.Z1,
		Z2:       a.Config.Z2,
		Operator: a.Config.Operator[0],
	}

	switch {
	case a.Config.Compare:
		return a.runCompare(printer, req)
	case a.Config.Bench > 0:
		return a.runBench(ctx, printer, out, req)
	default:
		return a.runCalculate(printer, req)
	}
}

// runCalculate performs a single computation with the configured engine.
func (a *Application) runCalculate(printer *cli.Printer, req orchestration.Request) int {
	eng, err := a.Registry.Get(a.Config.Engine)
	if err != nil {
		printer.PrintError(err)
		return apperrors.ExitCodeForError(err)
	}

	start := time.Now()
	result, err := eng.Compute(req.Base, req.Alphabet, req.Z1, req.Z2, req.Operator)
	if err != nil {
		printer.PrintError(err)
		return apperrors.ExitCodeForError(err)
	}

	printer.PrintResult(req.Z1, req.Operator, req.Z2, result, time.Since(start))
	return apperrors.ExitSuccess
}

// runCompare runs every engine concurrently and verifies their results agree.
func (a *Application) runCompare(printer *cli.Printer, req orchestration.Request) int {
	results := orchestration.ExecuteAll(a.Registry.All(), req)
	printer.PrintComparison(results)

	if err := orchestration.CheckConsistency(results); err != nil {
		printer.PrintError(err)
		return apperrors.ExitCodeForError(err)
	}
	return apperrors.ExitSuccess
}

// runBench repeats the computation and prints the timing report.
func (a *Application) runBench(ctx context.Context, printer *cli.Printer, out io.Writer, req orchestration.Request) int {
	eng, err := a.Registry.Get(a.Config.Engine)
	if err != nil {
		printer.PrintError(err)
		return apperrors.ExitCodeForError(err)
	}

	progress := cli.NewBenchProgress(out, a.Config.Bench, !a.Config.Quiet)
	progress.Start()
	res, err := bench.Run(ctx, eng, req, a.Config.Bench, progress.Update)
	progress.Stop()

	if err != nil {
		printer.PrintError(err)
		return apperrors.ExitCodeForError(err)
	}

	printer.PrintBenchReport(eng.Name(), res)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
