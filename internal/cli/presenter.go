package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/limbcalc/internal/calc"
	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/selfcheck"
	"github.com/agbru/limbcalc/internal/sysmon"
	"github.com/agbru/limbcalc/internal/ui"
)

// RunSummary is everything reported after a self-check run.
type RunSummary struct {
	Report selfcheck.Report `json:"report"`
	// Features describes the CPU features behind the limb kernels.
	Features  string        `json:"cpu_features"`
	System    sysmon.Stats  `json:"system"`
	HeapAlloc uint64        `json:"heap_alloc_bytes"`
	GCCycles  uint32        `json:"gc_cycles"`
	GCPause   time.Duration `json:"gc_pause_ns"`
}

// DisplayResult writes the values of an evaluated operation, one per line.
func DisplayResult(out io.Writer, res calc.Result) {
	t := ui.GetCurrentTheme()
	width := 0
	for _, v := range res.Values {
		width = max(width, len(v.Name))
	}
	for _, v := range res.Values {
		fmt.Fprintf(out, "%s%s = %s\n", t.Label.Render(v.Name), padRight("", width-len(v.Name)), t.Value.Render(v.Text))
	}
}

// DisplayJSON writes v as indented JSON.
func DisplayJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DisplayOps lists the available operations with their operands.
func DisplayOps(out io.Writer, ops []calc.Operation) {
	t := ui.GetCurrentTheme()
	width := 0
	for _, op := range ops {
		width = max(width, len(op.Name)+1+len(op.Usage))
	}
	for _, op := range ops {
		sig := op.Name + " " + op.Usage
		fmt.Fprintf(out, "  %s%s  %s\n", t.Label.Render(sig), padRight("", width-len(sig)), t.Dim.Render(op.Doc))
	}
}

// PresentReport writes the self-check summary table followed by the global
// status. Verbose output adds the first counterexample of failed checks and
// the run statistics.
func PresentReport(out io.Writer, s RunSummary, verbose bool) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s\n", t.Title.Render("Self-check summary"))

	nameLen, durLen := len("Check"), len("Duration")
	for _, res := range s.Report.Results {
		nameLen = max(nameLen, len(res.Name))
		durLen = max(durLen, len(displayDuration(res.Duration)))
	}
	fmt.Fprintf(out, "%s%s   %s%s   %s%s   %s\n",
		t.Header.Render("Check"), padRight("", nameLen-len("Check")),
		t.Header.Render("Samples"), padRight("", 1),
		t.Header.Render("Duration"), padRight("", durLen-len("Duration")),
		t.Header.Render("Status"))
	for _, res := range s.Report.Results {
		d := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s   %8d   %s%s   %s\n",
			t.Label.Render(res.Name), padRight("", nameLen-len(res.Name)),
			res.Samples,
			t.Dim.Render(d), padRight("", durLen-len(d)),
			ui.Status(res.Passed()))
		if verbose && !res.Passed() {
			fmt.Fprintf(out, "    %d failures; %s\n", res.Failures, res.FirstFailure)
		}
	}

	failed := s.Report.Failed()
	if len(failed) == 0 {
		fmt.Fprintf(out, "\nGlobal Status: %s. %d checks passed in %s (seed %d).\n",
			t.Success.Render("Success"), len(s.Report.Results),
			format.FormatExecutionDuration(s.Report.Duration), s.Report.Seed)
	} else {
		names := make([]string, len(failed))
		for i, f := range failed {
			names[i] = f.Name
		}
		fmt.Fprintf(out, "\nGlobal Status: %s. Failed: %s (seed %d).\n",
			t.Failure.Render("Failure"), strings.Join(names, ", "), s.Report.Seed)
	}
	if verbose {
		DisplayRunStats(out, s)
	}
}

// DisplayRunStats shows the CPU, memory and GC figures of a run.
func DisplayRunStats(out io.Writer, s RunSummary) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s\n", t.Title.Render("Run statistics"))
	fmt.Fprintf(out, "  CPU features:  %s\n", s.Features)
	fmt.Fprintf(out, "  System:        %s\n", s.System)
	fmt.Fprintf(out, "  Heap in use:   %s\n", format.FormatBytes(s.HeapAlloc))
	fmt.Fprintf(out, "  GC cycles:     %d\n", s.GCCycles)
	fmt.Fprintf(out, "  GC pause:      %s\n", format.FormatExecutionDuration(s.GCPause))
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}
