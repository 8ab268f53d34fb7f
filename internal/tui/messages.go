package tui

import (
	"time"

	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/selfcheck"
	"github.com/agbru/limbcalc/internal/sysmon"
)

// RunStartMsg is sent when the runner starts.
type RunStartMsg struct {
	Checks int
}

// CheckDoneMsg carries the result of one check.
type CheckDoneMsg struct {
	Result selfcheck.CheckResult
}

// RunCompleteMsg is sent when the runner returns.
type RunCompleteMsg struct {
	Report selfcheck.Report
	Err    error
}

// ContextCancelledMsg is sent when the run context ends, on timeout or
// signal.
type ContextCancelledMsg struct {
	Err error
}

// TickMsg drives the periodic resource sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory snapshot.
type MemStatsMsg struct {
	metrics.MemorySnapshot
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	sysmon.Stats
}
