package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/limbcalc/internal/format"
)

// historySize is the number of resource samples kept for the sparklines.
const historySize = 60

// MetricsModel displays the memory of the process and the system load.
type MetricsModel struct {
	heapAlloc    uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	cpu          *History
	mem          *History
	width        int
	height       int
}

// NewMetricsModel creates an empty metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{cpu: NewHistory(historySize), mem: NewHistory(historySize)}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats records a runtime memory snapshot.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.heapAlloc = msg.HeapAlloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats appends a system sample to the sparklines.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpu.Push(msg.CPUPercent)
	m.mem.Push(msg.MemPercent)
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder
	fmt.Fprintf(&rows, " %s %s%s%s %s%s%s %s",
		metricLabelStyle.Render("Heap:"),
		metricValueStyle.Render(format.FormatBytes(m.heapAlloc)+" / "+format.FormatBytes(m.heapSys)),
		dimStyle.Render(" | "),
		metricLabelStyle.Render("GC:"),
		metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6)),
		dimStyle.Render(" | "),
		metricLabelStyle.Render("Goroutines:"),
		metricValueStyle.Render(fmt.Sprint(m.numGoroutine)))

	// Sparklines fill the panel width after the label and the percentage.
	width := max(m.width-2-18, 1)
	for _, line := range []struct {
		label string
		hist  *History
		style func(...string) string
	}{
		{"CPU", m.cpu, cpuSparklineStyle.Render},
		{"MEM", m.mem, memSparklineStyle.Render},
	} {
		values := line.hist.Values()
		if len(values) > width {
			values = values[len(values)-width:]
		}
		fmt.Fprintf(&rows, "\n %s %s %s",
			metricLabelStyle.Render(line.label),
			metricValueStyle.Render(fmt.Sprintf("%5.1f%%", line.hist.Last())),
			line.style(Sparkline(values, 100)))
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}
