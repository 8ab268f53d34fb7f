package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/limbcalc/internal/calc"
)

func TestWriteReportToFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("nested path", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "dir", "report.json")
		if err := WriteReportToFile(sampleSummary(0), path); err != nil {
			t.Fatalf("WriteReportToFile: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		var s RunSummary
		if err := json.Unmarshal(content, &s); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(s.Report.Results) != 2 || s.Report.Results[0].Name != "add-sub" {
			t.Errorf("decoded %+v", s.Report)
		}
	})
	t.Run("empty path", func(t *testing.T) {
		if err := WriteReportToFile(sampleSummary(0), ""); err != nil {
			t.Errorf("empty path: %v", err)
		}
	})
	t.Run("unwritable path", func(t *testing.T) {
		blocker := filepath.Join(dir, "file")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteReportToFile(sampleSummary(0), filepath.Join(blocker, "report.json")); err == nil {
			t.Error("expected an error below a regular file")
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	noColor(t)
	res := calc.Result{Op: "divround", Values: []calc.Value{{Name: "quotient", Text: "4"}, {Name: "ordering", Text: "Greater"}}}
	tests := []struct {
		name string
		cfg  OutputConfig
		want string
	}{
		{"quiet", OutputConfig{Quiet: true}, "4 Greater\n"},
		{"text", OutputConfig{}, "quotient = 4\nordering = Greater\n"},
		{"json", OutputConfig{JSON: true}, `"op": "divround"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := DisplayResultWithConfig(&buf, res, tt.cfg); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q lacks %q", buf.String(), tt.want)
			}
		})
	}
}

func TestDisplayReportWithConfig(t *testing.T) {
	noColor(t)
	path := filepath.Join(t.TempDir(), "r.json")

	var buf bytes.Buffer
	if err := DisplayReportWithConfig(&buf, sampleSummary(1), OutputConfig{Quiet: true, OutputFile: path}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "FAIL div-round: sample 4: 7 / 2 rounded Nearest\n" {
		t.Errorf("quiet output = %q", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("report file not written: %v", err)
	}

	buf.Reset()
	if err := DisplayReportWithConfig(&buf, sampleSummary(0), OutputConfig{OutputFile: path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Report saved to: "+path) {
		t.Errorf("output lacks save notice:\n%s", buf.String())
	}
}
