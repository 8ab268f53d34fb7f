package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/briandowns/spinner"

	"github.com/agbru/limbcalc/internal/selfcheck"
)

// MockSpinner for testing
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() { m.started = true }

func (m *MockSpinner) Stop() { m.stopped = true }

func (m *MockSpinner) UpdateSuffix(suffix string) { m.suffix = suffix }

func useMockSpinner(t *testing.T) *MockSpinner {
	t.Helper()
	mock := &MockSpinner{}
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return mock }
	t.Cleanup(func() { newSpinner = orig })
	return mock
}

func TestProgressReporter(t *testing.T) {
	mock := useMockSpinner(t)
	var buf bytes.Buffer
	p := NewProgressReporter(&buf)

	p.Start(3)
	if !mock.started {
		t.Fatal("spinner not started")
	}
	if mock.suffix != " checks 0/3" {
		t.Errorf("initial suffix = %q", mock.suffix)
	}

	p.CheckDone(selfcheck.CheckResult{Name: "add-sub", Samples: 10})
	if mock.suffix != " checks 1/3 (add-sub)" {
		t.Errorf("suffix = %q", mock.suffix)
	}
	p.CheckDone(selfcheck.CheckResult{Name: "mul", Samples: 10, Failures: 2})
	if !strings.Contains(mock.suffix, "2/3, 1 failed (mul)") {
		t.Errorf("suffix = %q", mock.suffix)
	}

	p.Finish(selfcheck.Report{})
	if !mock.stopped {
		t.Error("spinner not stopped")
	}
	// A second Finish must not touch the stopped spinner.
	mock.stopped = false
	p.Finish(selfcheck.Report{})
	if mock.stopped {
		t.Error("Finish stopped the spinner twice")
	}
}

func TestProgressReporter_CheckDoneBeforeStart(t *testing.T) {
	useMockSpinner(t)
	p := NewProgressReporter(&bytes.Buffer{})
	p.CheckDone(selfcheck.CheckResult{Name: "x"})
	p.Finish(selfcheck.Report{})
}
