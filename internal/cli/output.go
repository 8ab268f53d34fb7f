// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* and Present* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [PresentReport].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agbru/limbcalc/internal/calc"
	"github.com/agbru/limbcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile receives the check report as JSON (empty for none).
	OutputFile string
	// Quiet prints bare values only.
	Quiet bool
	// Verbose adds failure details and run statistics.
	Verbose bool
	// JSON switches stdout output to JSON.
	JSON bool
}

// WriteReportToFile writes a run summary as JSON, creating parent
// directories as needed.
func WriteReportToFile(s RunSummary, path string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := DisplayJSON(file, s); err != nil {
		file.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return file.Close()
}

// FormatQuietResult joins the values of res with spaces, for scripts.
func FormatQuietResult(res calc.Result) string {
	texts := make([]string, len(res.Values))
	for i, v := range res.Values {
		texts[i] = v.Text
	}
	return strings.Join(texts, " ")
}

// DisplayQuietResult writes FormatQuietResult(res) on one line.
func DisplayQuietResult(out io.Writer, res calc.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResultWithConfig writes res in the mode selected by cfg.
func DisplayResultWithConfig(out io.Writer, res calc.Result, cfg OutputConfig) error {
	switch {
	case cfg.JSON:
		return DisplayJSON(out, res)
	case cfg.Quiet:
		DisplayQuietResult(out, res)
	default:
		DisplayResult(out, res)
	}
	return nil
}

// DisplayReportWithConfig writes a run summary in the mode selected by cfg
// and saves it to cfg.OutputFile when set.
func DisplayReportWithConfig(out io.Writer, s RunSummary, cfg OutputConfig) error {
	switch {
	case cfg.JSON:
		if err := DisplayJSON(out, s); err != nil {
			return err
		}
	case cfg.Quiet:
		for _, f := range s.Report.Failed() {
			fmt.Fprintf(out, "FAIL %s: %s\n", f.Name, f.FirstFailure)
		}
	default:
		PresentReport(out, s, cfg.Verbose)
	}
	if cfg.OutputFile == "" {
		return nil
	}
	if err := WriteReportToFile(s, cfg.OutputFile); err != nil {
		return err
	}
	if !cfg.Quiet && !cfg.JSON {
		t := ui.GetCurrentTheme()
		fmt.Fprintf(out, "\n%s %s\n", t.Success.Render("Report saved to:"), cfg.OutputFile)
	}
	return nil
}
