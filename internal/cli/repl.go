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

	"github.com/agbru/limbcalc/internal/calc"
	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/rounding"
	"github.com/agbru/limbcalc/internal/ui"
)

// EvalObserver is told about every evaluation, e.g. to feed metrics.
type EvalObserver func(op string, d time.Duration, err error)

// REPL is an interactive session evaluating registry operations.
type REPL struct {
	registry *calc.Registry
	opts     calc.Options
	observe  EvalObserver
	timing   bool
	in       io.Reader
	out      io.Writer
}

// NewREPL creates a session over registry starting with opts.
func NewREPL(registry *calc.Registry, opts calc.Options) *REPL {
	return &REPL{
		registry: registry,
		opts:     opts,
		observe:  func(string, time.Duration, error) {},
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// SetObserver installs a callback invoked after each evaluation.
func (r *REPL) SetObserver(o EvalObserver) { r.observe = o }

// Start reads commands until "exit" or end of input.
func (r *REPL) Start() {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "%s\n", t.Title.Render("limbcalc interactive mode"))
	fmt.Fprintln(r.out, "Type help for commands, exit to quit.")

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, t.Success.Render("limb> "))
		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%s %v\n", t.Failure.Render("Read error:"), err)
			return
		}
		if line := strings.TrimSpace(input); line != "" && !r.processCommand(line) {
			return
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printHelp() {
	t := ui.GetCurrentTheme()
	fmt.Fprintln(r.out, t.Title.Render("Available commands:"))
	for _, c := range [][2]string{
		{"<op> <operands...>", "evaluate an operation, e.g. divround 7 2"},
		{"ops", "list the operations"},
		{"base <2-36>", "set the radix of operands and results"},
		{"rounding <mode>", "set the rounding mode"},
		{"time", "toggle evaluation timing"},
		{"status", "show the current settings"},
		{"help", "show this help"},
		{"exit", "leave interactive mode"},
	} {
		fmt.Fprintf(r.out, "  %-20s %s\n", c[0], t.Dim.Render(c[1]))
	}
}

// processCommand executes one line. It returns false when the session
// should end.
func (r *REPL) processCommand(line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "exit", "quit", "q":
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	case "help", "h", "?":
		r.printHelp()
	case "ops", "list", "ls":
		DisplayOps(r.out, r.registry.Operations())
	case "base":
		r.cmdBase(args)
	case "rounding", "r":
		r.cmdRounding(args)
	case "time":
		r.timing = !r.timing
		fmt.Fprintf(r.out, "Timing %s.\n", map[bool]string{true: "on", false: "off"}[r.timing])
	case "status", "st":
		fmt.Fprintf(r.out, "base %d, rounding %v, timing %t\n", r.opts.Base, r.opts.Rounding, r.timing)
	default:
		r.evaluate(cmd, args)
	}
	return true
}

func (r *REPL) cmdBase(args []string) {
	t := ui.GetCurrentTheme()
	if len(args) != 1 {
		fmt.Fprintln(r.out, t.Failure.Render("Usage: base <2-36>"))
		return
	}
	b, err := strconv.Atoi(args[0])
	if err != nil || b < 2 || b > 36 {
		fmt.Fprintf(r.out, "%s %q\n", t.Failure.Render("Invalid base:"), args[0])
		return
	}
	r.opts.Base = b
	fmt.Fprintf(r.out, "Base set to %d.\n", b)
}

func (r *REPL) cmdRounding(args []string) {
	t := ui.GetCurrentTheme()
	if len(args) != 1 {
		fmt.Fprintln(r.out, t.Failure.Render("Usage: rounding <down|up|floor|ceiling|nearest|exact>"))
		return
	}
	m, err := rounding.Parse(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", t.Failure.Render("Error:"), err)
		return
	}
	r.opts.Rounding = m
	fmt.Fprintf(r.out, "Rounding set to %v.\n", m)
}

func (r *REPL) evaluate(op string, args []string) {
	t := ui.GetCurrentTheme()
	if _, ok := r.registry.Get(op); !ok {
		fmt.Fprintf(r.out, "%s %s\n", t.Failure.Render("Unknown command:"), op)
		fmt.Fprintln(r.out, "Type help to see available commands.")
		return
	}
	start := time.Now()
	res, err := r.registry.Eval(op, args, r.opts)
	d := time.Since(start)
	r.observe(op, d, err)
	if err != nil {
		fmt.Fprintf(r.out, "%s %v\n", t.Failure.Render("Error:"), err)
		return
	}
	DisplayResult(r.out, res)
	if r.timing {
		fmt.Fprintf(r.out, "%s\n", t.Dim.Render("("+format.FormatExecutionDuration(d)+")"))
	}
}
