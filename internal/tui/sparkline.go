package tui

// sparklineChars maps levels 0..7 to Unicode block elements.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History keeps the most recent samples of a gauge, oldest first.
type History struct {
	data  []float64
	head  int
	count int
}

// NewHistory returns a History holding up to capacity samples.
func NewHistory(capacity int) *History {
	return &History{data: make([]float64, max(capacity, 1))}
}

// Push records v, dropping the oldest sample when full.
func (h *History) Push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Len returns the number of samples held.
func (h *History) Len() int { return h.count }

// Last returns the newest sample, or 0 when empty.
func (h *History) Last() float64 {
	if h.count == 0 {
		return 0
	}
	return h.data[(h.head+len(h.data)-1)%len(h.data)]
}

// Values returns the samples in chronological order.
func (h *History) Values() []float64 {
	out := make([]float64, h.count)
	start := h.head - h.count + len(h.data)
	for i := range out {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// Reset drops every sample.
func (h *History) Reset() { h.head, h.count = 0, 0 }

// Sparkline renders values on an eight-level bar scale from 0 to limit.
// A non-positive limit scales to the largest value instead.
func Sparkline(values []float64, limit float64) string {
	if len(values) == 0 {
		return ""
	}
	if limit <= 0 {
		for _, v := range values {
			limit = max(limit, v)
		}
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		level := 0
		if limit > 0 && v > 0 {
			level = min(int(v/limit*7), 7)
		}
		runes[i] = sparklineChars[level]
	}
	return string(runes)
}
