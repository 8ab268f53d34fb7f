// Package config defines the limbcalc configuration, parsed from
// command-line flags with environment variable overrides.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/rounding"
)

// EnvPrefix prefixes every environment variable read by limbcalc.
const EnvPrefix = "LIMBCALC_"

// Commands understood by limbcalc.
const (
	CommandEval       = "eval"
	CommandCheck      = "check"
	CommandOps        = "ops"
	CommandRepl       = "repl"
	CommandCompletion = "completion"
)

var commands = []string{CommandEval, CommandCheck, CommandOps, CommandRepl, CommandCompletion}

// Shells accepted by the completion command.
var Shells = []string{"bash", "zsh", "fish"}

// Defaults applied before environment and flag overrides.
const (
	DefaultBase     = 10
	DefaultRounding = "nearest"
	DefaultSamples  = 2000
	DefaultMaxBits  = 512
	DefaultSeed     = 1
	DefaultTimeout  = 5 * time.Minute
	// MaxMaxBits bounds the operand size of the self-check.
	MaxMaxBits = 1 << 20
)

// AppConfig aggregates the configuration of a limbcalc run.
type AppConfig struct {
	// Command is one of the Command* constants.
	Command string
	// Shell is the target of CommandCompletion.
	Shell string
	// Op is the operation evaluated by CommandEval.
	Op string
	// Args are the operands of Op, as written on the command line.
	Args []string
	// Base is the radix of numeric operands and results (2..36).
	Base int
	// Rounding names the rounding mode used by rounding operations.
	Rounding string
	// Samples is the number of random samples per self-check property.
	Samples int
	// MaxBits bounds the size of random self-check operands.
	MaxBits uint64
	// Workers is the self-check concurrency; 0 selects it from the CPU count.
	Workers int
	// Seed seeds the self-check generators. 0 draws a seed from the clock.
	Seed int64
	// Timeout bounds the whole run.
	Timeout time.Duration
	Verbose bool
	Quiet   bool
	// JSON switches eval and check output to JSON.
	JSON    bool
	NoColor bool
	// TUI shows a live dashboard during a check.
	TUI bool
	// MetricsAddr, when set, serves Prometheus metrics during a check.
	MetricsAddr string
	// Output, when set, receives the check report as JSON.
	Output string
}

// RoundingMode returns the parsed Rounding field.
func (c AppConfig) RoundingMode() (rounding.Mode, error) {
	return rounding.Parse(c.Rounding)
}

// ParseConfig parses args into an AppConfig. Flags take priority over
// LIMBCALC_* environment variables, which take priority over defaults.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Where usage and flag errors are written.
//   - availableOps: The operation names accepted by the eval command.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h, or a ConfigError/ValidationError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() { printUsage(fs, programName, availableOps) }

	config := AppConfig{}
	fs.IntVar(&config.Base, "base", DefaultBase, "Radix of operands and results (2-36).")
	fs.StringVar(&config.Rounding, "rounding", DefaultRounding, "Rounding mode: "+strings.Join(modeNames(), ", ")+".")
	fs.StringVar(&config.Rounding, "r", DefaultRounding, "Shorthand for -rounding.")
	fs.IntVar(&config.Samples, "samples", DefaultSamples, "Random samples per self-check property.")
	fs.Uint64Var(&config.MaxBits, "max-bits", DefaultMaxBits, "Maximum bit length of self-check operands.")
	fs.IntVar(&config.Workers, "workers", 0, "Self-check workers (0 = adaptive).")
	fs.Int64Var(&config.Seed, "seed", DefaultSeed, "Self-check seed (0 = from the clock).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum run time (e.g. 30s, 2m).")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Log progress and per-check details.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print results only.")
	fs.BoolVar(&config.JSON, "json", false, "Emit JSON output.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.TUI, "tui", false, "Show a live dashboard during a check.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during a check.")
	fs.StringVar(&config.Output, "o", "", "Shorthand for -output.")
	fs.StringVar(&config.Output, "output", "", "Write the check report as JSON to this file.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if fs.NArg() == 0 {
		fs.Usage()
	}
	err := parseCommand(&config, fs.Args())
	if err == nil {
		err = config.Validate(availableOps)
	}
	if err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// parseCommand fills the command fields of config from the positional
// arguments left after flag parsing.
func parseCommand(config *AppConfig, rest []string) error {
	if len(rest) == 0 {
		return apperrors.NewConfigError("missing command (expected one of %s)", strings.Join(commands, ", "))
	}
	config.Command = rest[0]
	switch {
	case config.Command == CommandEval:
		if len(rest) < 2 {
			return apperrors.NewConfigError("eval requires an operation name")
		}
		config.Op = rest[1]
		config.Args = rest[2:]
	case config.Command == CommandCompletion:
		if len(rest) != 2 {
			return apperrors.NewConfigError("completion requires a shell (%s)", strings.Join(Shells, ", "))
		}
		config.Shell = rest[1]
	case len(rest) > 1:
		return apperrors.NewConfigError("unexpected arguments after %q: %v", config.Command, rest[1:])
	}
	return nil
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableOps: The operation names accepted by the eval command.
//
// Returns:
//   - error: A ValidationError describing the first invalid field, or nil.
func (c AppConfig) Validate(availableOps []string) error {
	switch c.Command {
	case CommandEval:
		if !slices.Contains(availableOps, c.Op) {
			return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", c.Op)}
		}
	case CommandCompletion:
		if !slices.Contains(Shells, c.Shell) {
			return apperrors.ValidationError{Field: "shell", Message: fmt.Sprintf("unsupported shell %q", c.Shell)}
		}
	case CommandCheck, CommandOps, CommandRepl:
	default:
		return apperrors.ValidationError{Field: "command", Message: fmt.Sprintf("unknown command %q", c.Command)}
	}
	if c.Base < 2 || c.Base > 36 {
		return apperrors.ValidationError{Field: "base", Message: "must be between 2 and 36"}
	}
	if _, err := c.RoundingMode(); err != nil {
		return apperrors.ValidationError{Field: "rounding", Message: err.Error()}
	}
	if c.Samples <= 0 {
		return apperrors.ValidationError{Field: "samples", Message: "must be greater than zero"}
	}
	if c.MaxBits == 0 || c.MaxBits > MaxMaxBits {
		return apperrors.ValidationError{Field: "max-bits", Message: fmt.Sprintf("must be between 1 and %d", MaxMaxBits)}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must not be negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Quiet && c.Verbose {
		return apperrors.ValidationError{Field: "quiet", Message: "cannot be combined with -verbose"}
	}
	if c.TUI && (c.Quiet || c.JSON) {
		return apperrors.ValidationError{Field: "tui", Message: "cannot be combined with -quiet or -json"}
	}
	return nil
}

func modeNames() []string {
	var names []string
	for _, m := range rounding.Modes() {
		names = append(names, strings.ToLower(m.String()))
	}
	return names
}

func printUsage(fs *flag.FlagSet, programName string, availableOps []string) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <command> [arguments]\n\n", programName)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintf(out, "  %-10s evaluate an operation: %s eval <op> <operands...>\n", CommandEval, programName)
	fmt.Fprintf(out, "  %-10s run the randomized self-check against math/big\n", CommandCheck)
	fmt.Fprintf(out, "  %-10s list the available operations\n", CommandOps)
	fmt.Fprintf(out, "  %-10s evaluate operations interactively\n", CommandRepl)
	fmt.Fprintf(out, "  %-10s print a shell completion script (%s)\n\n", CommandCompletion, strings.Join(Shells, ", "))
	if len(availableOps) > 0 {
		fmt.Fprintf(out, "Operations: %s\n\n", strings.Join(availableOps, ", "))
	}
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nEvery flag can also be set through a %s* environment variable.\n", EnvPrefix)
}
