package tui

import (
	"slices"
	"testing"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)
	if h.Last() != 0 || h.Len() != 0 || len(h.Values()) != 0 {
		t.Fatal("new history should be empty")
	}
	h.Push(1)
	h.Push(2)
	if got := h.Values(); !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("Values = %v", got)
	}
	h.Push(3)
	h.Push(4) // drops 1
	if got := h.Values(); !slices.Equal(got, []float64{2, 3, 4}) {
		t.Errorf("Values after overflow = %v", got)
	}
	if h.Last() != 4 || h.Len() != 3 {
		t.Errorf("Last = %v, Len = %d", h.Last(), h.Len())
	}
	h.Reset()
	if h.Len() != 0 || h.Last() != 0 {
		t.Error("Reset left samples behind")
	}
}

func TestHistory_ZeroCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(5)
	h.Push(6)
	if got := h.Values(); !slices.Equal(got, []float64{6}) {
		t.Errorf("Values = %v, want [6]", got)
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		limit  float64
		want   string
	}{
		{"empty", nil, 100, ""},
		{"zeros", []float64{0, 0}, 100, "▁▁"},
		{"full", []float64{100, 100}, 100, "██"},
		{"clamped", []float64{-5, 150}, 100, "▁█"},
		{"gradient", []float64{0, 50, 100}, 100, "▁▄█"},
		{"auto scale", []float64{1, 2, 4}, 0, "▂▄█"},
		{"auto scale zeros", []float64{0, 0}, 0, "▁▁"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values, tt.limit); got != tt.want {
				t.Errorf("Sparkline(%v, %v) = %q, want %q", tt.values, tt.limit, got, tt.want)
			}
		})
	}
}
