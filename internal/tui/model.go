package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/limbcalc/internal/metrics"
	"github.com/agbru/limbcalc/internal/selfcheck"
	"github.com/agbru/limbcalc/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight       = 1
	footerHeight       = 1
	metricsPanelHeight = 5
	minBodyHeight      = 6
	tickInterval       = 500 * time.Millisecond
)

// RunFunc executes a self-check, reporting progress to rep.
type RunFunc func(ctx context.Context, rep selfcheck.Reporter) (selfcheck.Report, error)

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the height left for the checks table.
func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight-metricsPanelHeight, minBodyHeight)
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	checks  ChecksModel
	metrics MetricsModel
	keymap  KeyMap

	LayoutManager

	collector *metrics.MemoryCollector
	done      bool
	err       error
}

// NewModel creates a dashboard for a run of the named checks.
func NewModel(names []string, seed uint64, version string) Model {
	return Model{
		header:    NewHeaderModel(version, seed),
		checks:    NewChecksModel(names),
		metrics:   NewMetricsModel(),
		keymap:    DefaultKeyMap(),
		collector: metrics.NewMemoryCollector(),
	}
}

// Init starts resource sampling.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case RunStartMsg:
		return m, nil

	case CheckDoneMsg:
		m.checks.AddResult(msg.Result)
		return m, nil

	case RunCompleteMsg:
		m.finish(msg.Err)
		return m, nil

	case ContextCancelledMsg:
		m.finish(msg.Err)
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(m.sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) finish(err error) {
	if m.done {
		return
	}
	m.done = true
	m.err = err
	m.header.SetDone()
	m.checks.SetDone()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		m.checks.Scroll(-1)
	case key.Matches(msg, m.keymap.Down):
		m.checks.Scroll(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.checks.Scroll(-m.checks.visibleRows())
	case key.Matches(msg, m.keymap.PageDown):
		m.checks.Scroll(m.checks.visibleRows())
	}
	return m, nil
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.checks.SetSize(m.width, m.bodyHeight())
	m.metrics.SetSize(m.width, metricsPanelHeight)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(), m.checks.View(), m.metrics.View(), m.footerView())
}

func (m Model) footerView() string {
	var status string
	switch {
	case !m.done:
		status = runningStyle.Render("RUNNING")
	case m.checks.Failed() > 0:
		status = failStyle.Render(fmt.Sprintf("FAILED (%d)", m.checks.Failed()))
	case m.err != nil:
		status = failStyle.Render("STOPPED")
	default:
		status = passStyle.Render("PASSED")
	}
	parts := []string{" " + status}
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, footerKeyStyle.Render(b.Help().Key)+" "+dimStyle.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}

// tickCmd schedules the next resource sample.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) sampleMemStatsCmd() tea.Cmd {
	collector := m.collector
	return func() tea.Msg {
		return MemStatsMsg{MemorySnapshot: collector.Snapshot(), NumGoroutine: runtime.NumGoroutine()}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg { return SysStatsMsg{Stats: sysmon.Sample()} }
}

// Run shows the dashboard while run executes, and returns run's outcome once
// the user quits. Quitting early cancels the run. An expired or canceled ctx
// closes the dashboard.
func Run(ctx context.Context, names []string, seed uint64, version string, run RunFunc) (selfcheck.Report, error) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ref := &programRef{}
	p := tea.NewProgram(NewModel(names, seed, version), tea.WithAltScreen())
	ref.SetProgram(p)

	type outcome struct {
		report selfcheck.Report
		err    error
	}
	result := make(chan outcome, 1)
	go func() {
		report, err := run(ctx, &Reporter{ref: ref})
		ref.Send(RunCompleteMsg{Report: report, Err: err})
		result <- outcome{report, err}
	}()
	go func() {
		<-ctx.Done()
		ref.Send(ContextCancelledMsg{Err: ctx.Err()})
	}()

	_, progErr := p.Run()
	cancel()
	out := <-result
	if progErr != nil && !errors.Is(progErr, tea.ErrProgramKilled) {
		return out.report, fmt.Errorf("dashboard: %w", progErr)
	}
	return out.report, out.err
}
