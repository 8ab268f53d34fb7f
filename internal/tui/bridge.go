package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/limbcalc/internal/selfcheck"
)

// programRef is a shared reference to the tea.Program. bubbletea copies the
// model on every Update, so the runner goroutine needs a pointer that
// survives the copies.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the program. It is a no-op before SetProgram and
// returns immediately once the program has exited.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Reporter forwards self-check progress to the dashboard.
type Reporter struct {
	ref *programRef
}

var _ selfcheck.Reporter = (*Reporter)(nil)

// Start announces a run of n checks.
func (r *Reporter) Start(n int) { r.ref.Send(RunStartMsg{Checks: n}) }

// CheckDone forwards one finished check.
func (r *Reporter) CheckDone(res selfcheck.CheckResult) { r.ref.Send(CheckDoneMsg{Result: res}) }

// Finish is a no-op: Run reports the final outcome with RunCompleteMsg,
// which also carries the run error.
func (r *Reporter) Finish(selfcheck.Report) {}
