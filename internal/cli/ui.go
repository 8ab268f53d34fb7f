package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/limbcalc/internal/selfcheck"
)

// ProgressRefreshRate is the spinner frame interval.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so the reporter can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressReporter shows a spinner with the number of finished checks while
// a self-check runs.
type ProgressReporter struct {
	out     io.Writer
	mu      sync.Mutex
	spinner Spinner
	total   int
	done    int
	failed  int
}

var _ selfcheck.Reporter = (*ProgressReporter)(nil)

// NewProgressReporter returns a reporter drawing on out.
func NewProgressReporter(out io.Writer) *ProgressReporter {
	return &ProgressReporter{out: out}
}

// Start begins the animation for a run of n checks.
func (p *ProgressReporter) Start(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total, p.done, p.failed = n, 0, 0
	p.spinner = newSpinner(spinner.WithWriter(p.out))
	p.spinner.UpdateSuffix(p.suffix(""))
	p.spinner.Start()
}

// CheckDone advances the counter shown next to the spinner.
func (p *ProgressReporter) CheckDone(res selfcheck.CheckResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if !res.Passed() {
		p.failed++
	}
	if p.spinner != nil {
		p.spinner.UpdateSuffix(p.suffix(res.Name))
	}
}

// Finish stops the spinner.
func (p *ProgressReporter) Finish(selfcheck.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}

func (p *ProgressReporter) suffix(last string) string {
	s := fmt.Sprintf(" checks %d/%d", p.done, p.total)
	if p.failed > 0 {
		s += fmt.Sprintf(", %d failed", p.failed)
	}
	if last != "" {
		s += " (" + last + ")"
	}
	return s
}
