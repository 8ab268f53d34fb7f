// Package app wires the limbcalc command line together: configuration,
// logging, the operation registry, the self-check runner and the optional
// metrics endpoint.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agbru/limbcalc/internal/calc"
	"github.com/agbru/limbcalc/internal/cli"
	"github.com/agbru/limbcalc/internal/config"
	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/ui"
)

// Application represents the limbcalc application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *calc.Registry
	Metrics   *metrics.Metrics
	ErrWriter io.Writer
	// In feeds the interactive session.
	In io.Reader
	// IsTerminal decides whether progress is animated on a writer.
	IsTerminal func(w io.Writer) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom operation registry for the application.
func WithRegistry(r *calc.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithMetrics sets the metrics sink, e.g. to inspect it in tests.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// WithInput sets the reader of the interactive session.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin, IsTerminal: isTerminal}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = calc.NewRegistry()
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewMetrics()
	}

	programName := "limbcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveDefaults(cfg)
	return app, nil
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Command == config.CommandCompletion {
		return a.runCompletion(out)
	}

	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	switch a.Config.Command {
	case config.CommandOps:
		return a.runOps(out)
	case config.CommandRepl:
		return a.runREPL(out)
	case config.CommandCheck:
		return a.runCheck(ctx, out)
	default:
		return a.runEval(out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Shell, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

func (a *Application) runOps(out io.Writer) int {
	ops := a.Registry.Operations()
	if a.Config.JSON {
		type opJSON struct {
			Name  string `json:"name"`
			Usage string `json:"usage"`
			Doc   string `json:"doc"`
		}
		list := make([]opJSON, len(ops))
		for i, op := range ops {
			list[i] = opJSON{op.Name, op.Usage, op.Doc}
		}
		if err := cli.DisplayJSON(out, list); err != nil {
			return a.fail(err)
		}
		return apperrors.ExitSuccess
	}
	cli.DisplayOps(out, ops)
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	opts, err := a.calcOptions()
	if err != nil {
		return a.fail(err)
	}
	repl := cli.NewREPL(a.Registry, opts)
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.SetObserver(a.Metrics.ObserveEval)
	repl.Start()
	return apperrors.ExitSuccess
}

// runEval evaluates a single operation.
func (a *Application) runEval(out io.Writer) int {
	opts, err := a.calcOptions()
	if err != nil {
		return a.fail(err)
	}
	start := time.Now()
	res, err := a.Registry.Eval(a.Config.Op, a.Config.Args, opts)
	a.Metrics.ObserveEval(a.Config.Op, time.Since(start), err)
	if err != nil {
		return a.fail(err)
	}
	if err := cli.DisplayResultWithConfig(out, res, a.outputConfig()); err != nil {
		return a.fail(err)
	}
	return apperrors.ExitSuccess
}

func (a *Application) calcOptions() (calc.Options, error) {
	mode, err := a.Config.RoundingMode()
	if err != nil {
		return calc.Options{}, apperrors.ValidationError{Field: "rounding", Message: err.Error()}
	}
	return calc.Options{Base: a.Config.Base, Rounding: mode}, nil
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: a.Config.Output,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		JSON:       a.Config.JSON,
	}
}

// fail prints err and maps it to an exit code.
func (a *Application) fail(err error) int {
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitCode(err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
