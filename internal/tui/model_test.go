package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/selfcheck"
	"github.com/agbru/limbcalc/internal/sysmon"
)

var testNames = []string{"add-sub", "mul", "div-round"}

func sized(t *testing.T) Model {
	t.Helper()
	var m tea.Model = NewModel(testNames, 9, "v1.0.0")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(Model)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_ViewBeforeResize(t *testing.T) {
	if got := NewModel(testNames, 1, "dev").View(); got != "Initializing..." {
		t.Errorf("View = %q", got)
	}
}

func TestModel_Progress(t *testing.T) {
	m := sized(t)
	view := m.View()
	for _, want := range []string{"limbcalc self-check v1.0.0", "seed 9", "CHECKS 0/3", "add-sub", "RUN", "RUNNING", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("initial view lacks %q:\n%s", want, view)
		}
	}

	m, _ = update(m, RunStartMsg{Checks: 3})
	m, _ = update(m, CheckDoneMsg{Result: selfcheck.CheckResult{Name: "add-sub", Samples: 50, Duration: time.Millisecond}})
	m, _ = update(m, CheckDoneMsg{Result: selfcheck.CheckResult{Name: "mul", Samples: 50, Failures: 2}})
	view = m.View()
	for _, want := range []string{"CHECKS 2/3", "PASS", "FAIL"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
	if m.checks.Failed() != 1 {
		t.Errorf("Failed = %d, want 1", m.checks.Failed())
	}

	m, _ = update(m, RunCompleteMsg{Err: errors.New("mul failed")})
	if !m.done || !strings.Contains(m.View(), "FAILED (1)") {
		t.Errorf("completed view:\n%s", m.View())
	}
	if _, cmd := update(m, TickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once the run is done")
	}
}

func TestModel_Passed(t *testing.T) {
	m := sized(t)
	for _, name := range testNames {
		m, _ = update(m, CheckDoneMsg{Result: selfcheck.CheckResult{Name: name, Samples: 1}})
	}
	m, _ = update(m, RunCompleteMsg{})
	if view := m.View(); !strings.Contains(view, "PASSED") || strings.Contains(view, "RUN ") {
		t.Errorf("view:\n%s", view)
	}
}

func TestModel_ContextCancelledQuits(t *testing.T) {
	m := sized(t)
	m, cmd := update(m, ContextCancelledMsg{Err: context.DeadlineExceeded})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "STOPPED") {
		t.Errorf("view:\n%s", m.View())
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := sized(t)
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModel_Scroll(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = "check-" + string(rune('a'+i%26))
	}
	var tm tea.Model = NewModel(names, 1, "dev")
	tm, _ = tm.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m := tm.(Model)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.checks.offset != 1 {
		t.Errorf("offset after down = %d, want 1", m.checks.offset)
	}
	for range 10 {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	if limit := len(names) - m.checks.visibleRows(); m.checks.offset != limit {
		t.Errorf("offset = %d, want clamped to %d", m.checks.offset, limit)
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	for range 10 {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if m.checks.offset != 0 {
		t.Errorf("offset = %d, want 0", m.checks.offset)
	}
}

func TestModel_ResourceSamples(t *testing.T) {
	m := sized(t)
	m, _ = update(m, MemStatsMsg{MemorySnapshot: metrics.MemorySnapshot{HeapAlloc: 3 << 20, HeapSys: 8 << 20, NumGC: 4}, NumGoroutine: 7})
	m, _ = update(m, SysStatsMsg{Stats: sysmon.Stats{CPUPercent: 50, MemPercent: 25}})
	view := m.View()
	for _, want := range []string{"Heap:", "3.0 MiB", "GC:", "Goroutines:", "CPU", "50.0%", "MEM"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestReporter_NilProgram(t *testing.T) {
	rep := &Reporter{ref: &programRef{}}
	rep.Start(2)
	rep.CheckDone(selfcheck.CheckResult{Name: "x"})
	rep.Finish(selfcheck.Report{})
}
