package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/selfcheck"
)

// ChecksModel is the table of properties with their state.
type ChecksModel struct {
	names   []string
	results []selfcheck.CheckResult
	running bool
	offset  int
	width   int
	height  int
}

// NewChecksModel lists names as pending.
func NewChecksModel(names []string) ChecksModel {
	return ChecksModel{names: names, running: true}
}

// SetSize updates dimensions.
func (c *ChecksModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.clampOffset()
}

// AddResult marks the next check as finished.
func (c *ChecksModel) AddResult(res selfcheck.CheckResult) {
	c.results = append(c.results, res)
	// Follow the run while the newest row would scroll out of view.
	if last := len(c.results); last >= c.offset+c.visibleRows() {
		c.offset = last - c.visibleRows() + 1
		c.clampOffset()
	}
}

// SetDone stops showing the next check as running.
func (c *ChecksModel) SetDone() { c.running = false }

// Failed returns the number of failed checks so far.
func (c ChecksModel) Failed() int {
	n := 0
	for _, r := range c.results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

// Scroll moves the visible window by delta rows.
func (c *ChecksModel) Scroll(delta int) {
	c.offset += delta
	c.clampOffset()
}

func (c ChecksModel) visibleRows() int {
	// Border, title and column header take four lines.
	return max(c.height-4, 1)
}

func (c *ChecksModel) clampOffset() {
	c.offset = max(min(c.offset, len(c.names)-c.visibleRows()), 0)
}

// Column widths shared by the header and the rows.
const (
	colWidthName     = 16
	colWidthSamples  = 9
	colWidthFailures = 9
	colWidthDuration = 11
)

// View renders the table.
func (c ChecksModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("CHECKS %d/%d", len(c.results), len(c.names))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(c.row("Check", "Samples", "Failures", "Duration", "Status")))

	end := min(c.offset+c.visibleRows(), len(c.names))
	for i := c.offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(c.renderRow(i))
	}
	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(max(c.height-2, 0)).
		Render(b.String())
}

func (c ChecksModel) renderRow(i int) string {
	name := c.names[i]
	switch {
	case i < len(c.results):
		res := c.results[i]
		status := passStyle.Render("PASS")
		if !res.Passed() {
			status = failStyle.Render("FAIL")
		}
		return c.row(name, fmt.Sprint(res.Samples), fmt.Sprint(res.Failures),
			format.FormatExecutionDuration(res.Duration), status)
	case i == len(c.results) && c.running:
		return c.row(name, "", "", "", runningStyle.Render("RUN"))
	default:
		return c.row(name, "", "", "", dimStyle.Render("..."))
	}
}

func (c ChecksModel) row(name, samples, failures, duration, status string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		" ",
		lipgloss.NewStyle().Width(colWidthName).Render(name),
		lipgloss.NewStyle().Width(colWidthSamples).Align(lipgloss.Right).Render(samples),
		lipgloss.NewStyle().Width(colWidthFailures).Align(lipgloss.Right).Render(failures),
		lipgloss.NewStyle().Width(colWidthDuration).Align(lipgloss.Right).Render(duration),
		"  ",
		status,
	)
}
