package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
)

// entries decodes the JSON lines written by a ZerologAdapter.
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, e)
	}
	return out
}

func TestNewLogger_TagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "selfcheck")
	logger.Info("self-check started", Int("checks", 21), Uint64("seed", 1<<63))

	es := entries(t, &buf)
	if len(es) != 1 {
		t.Fatalf("got %d entries, want 1", len(es))
	}
	e := es[0]
	if e["component"] != "selfcheck" || e["level"] != "info" || e["message"] != "self-check started" {
		t.Errorf("entry = %v", e)
	}
	if e["checks"] != float64(21) {
		t.Errorf("checks = %v, want 21", e["checks"])
	}
	if _, ok := e["time"]; !ok {
		t.Error("entry has no timestamp")
	}
	// 2^63 does not survive a float64 round trip exactly, so look at the text.
	if !strings.Contains(buf.String(), `"seed":9223372036854775808`) {
		t.Errorf("seed not written as an unsigned integer: %s", buf.String())
	}
}

func TestZerologAdapter_CheckFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("check passed", String("check", "div-round"), Int("samples", 2000), String("duration", "12ms"))
	logger.Error("check failed", errors.New("sample 3: 7 / 2 = 3, want 4"),
		String("check", "div-round"), Int("failures", 1))
	logger.Debug("limb kernels", String("features", "bmi2,adx"), Int("limb_bits", 64), Float64("load", 0.5))

	es := entries(t, &buf)
	if len(es) != 3 {
		t.Fatalf("got %d entries, want 3", len(es))
	}
	if es[0]["level"] != "debug" || es[0]["check"] != "div-round" || es[0]["samples"] != float64(2000) {
		t.Errorf("passed entry = %v", es[0])
	}
	if es[1]["level"] != "error" || es[1]["error"] != "sample 3: 7 / 2 = 3, want 4" || es[1]["failures"] != float64(1) {
		t.Errorf("failed entry = %v", es[1])
	}
	if es[2]["features"] != "bmi2,adx" || es[2]["limb_bits"] != float64(64) || es[2]["load"] != 0.5 {
		t.Errorf("kernel entry = %v", es[2])
	}
}

func TestZerologAdapter_InfoLevelDropsDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))
	logger.Debug("check passed", String("check", "mul"))
	logger.Error("metrics endpoint stopped", errors.New("listener closed"))

	es := entries(t, &buf)
	if len(es) != 1 || es[0]["message"] != "metrics endpoint stopped" {
		t.Errorf("entries = %v, want only the error", es)
	}
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))
	logger.Info("fields",
		Field{Key: "workers", Value: int64(8)},
		Field{Key: "tui", Value: true},
		Err(errors.New("boom")),
		Field{Key: "modes", Value: []string{"floor", "nearest"}},
	)
	e := entries(t, &buf)[0]
	if e["workers"] != float64(8) || e["tui"] != true || e["error"] != "boom" {
		t.Errorf("entry = %v", e)
	}
	if modes, ok := e["modes"].([]any); !ok || len(modes) != 2 {
		t.Errorf("modes = %v", e["modes"])
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))
	logger.Printf("serving metrics on %s", "127.0.0.1:9090")
	logger.Println("seed", 42)

	es := entries(t, &buf)
	if len(es) != 2 || es[0]["message"] != "serving metrics on 127.0.0.1:9090" || es[1]["message"] != "seed 42" {
		t.Errorf("entries = %v", es)
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(log.New(&buf, "", 0))

	logger.Debug("check passed", String("check", "gcd"))
	logger.Info("self-check started")
	logger.Error("check failed", errors.New("bad root"), String("check", "root"), Int("failures", 2))
	logger.Printf("seed %d", 7)
	logger.Println("done")

	want := []string{
		"[DEBUG] check passed check=gcd",
		"[INFO] self-check started",
		"[ERROR] check failed: bad root check=root failures=2",
		"seed 7",
		"done",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
}
