package main

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	s := summarize([]float64{50, 10, 40, 20, 30})

	if s.Count != 5 {
		t.Errorf("Count = %d, expected 5", s.Count)
	}
	if s.Mean != 30 {
		t.Errorf("Mean = %v, expected 30", s.Mean)
	}
	if want := math.Sqrt(250); math.Abs(s.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, expected %v", s.StdDev, want)
	}
	if s.Median != 30 {
		t.Errorf("Median = %v, expected 30", s.Median)
	}
	if s.P90 != 50 {
		t.Errorf("P90 = %v, expected 50", s.P90)
	}
	if s.Max != 50 {
		t.Errorf("Max = %v, expected 50", s.Max)
	}
}

func TestSummarizeSmallSamples(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		count  int
		max    float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{42}, 1, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarize(tt.scores)
			if s.Count != tt.count || s.Max != tt.max {
				t.Errorf("summarize = %+v", s)
			}
			if !math.IsNaN(s.StdDev) {
				t.Errorf("StdDev = %v, expected NaN", s.StdDev)
			}
		})
	}
}

func TestSummarizeLeavesInputUnsorted(t *testing.T) {
	in := []float64{3, 1, 2}
	summarize(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input reordered: %v", in)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{9.9, "0:09"},
		{61, "1:01"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.secs); got != tt.want {
			t.Errorf("formatClock(%v) = %q, expected %q", tt.secs, got, tt.want)
		}
	}
}

func TestModeOf(t *testing.T) {
	if got := modeOf("sunskim_heat"); got != "heat" {
		t.Errorf("modeOf(sunskim_heat) = %q, expected heat", got)
	}
	if got := modeOf("sunskim"); got != "shield" {
		t.Errorf("modeOf(sunskim) = %q, expected shield", got)
	}
}
