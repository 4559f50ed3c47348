/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package widgets provides reusable TUI visualization components.
package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks are Unicode block elements for 8 levels of height.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// gapRune marks a NaN point: a data gap, rendered as whitespace rather
// than the block for zero.
const gapRune = ' '

// Sparkline renders a downsampled series as a Unicode bar chart, one
// column per point already in Data — callers are expected to have
// downsampled to Width points beforehand (e.g. via downsample.LTTB), so
// Sparkline itself only re-buckets as a display-time fallback.
type Sparkline struct {
	Data           []float64
	Width          int
	HighlightIndex int // Index to highlight (e.g. the playback cursor)
	Color          lipgloss.Color
	HighlightColor lipgloss.Color
}

// NewSparkline creates a sparkline with default styling. color is
// typically a channel's assigned palette color.
func NewSparkline(data []float64, width int, color lipgloss.Color) Sparkline {
	return Sparkline{
		Data:           data,
		Width:          width,
		HighlightIndex: -1,
		Color:          color,
		HighlightColor: lipgloss.Color("196"),
	}
}

// WithHighlight sets the index to highlight.
func (s Sparkline) WithHighlight(idx int) Sparkline {
	s.HighlightIndex = idx
	return s
}

// Render produces the sparkline string. NaN values in Data render as a
// blank column rather than the block for 0, so a gap in a channel's
// coverage stays visually distinct from a genuine low reading.
func (s Sparkline) Render() string {
	if len(s.Data) == 0 {
		return ""
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, v := range s.Data {
		if math.IsNaN(v) {
			continue
		}
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.IsInf(minVal, 1) {
		return strings.Repeat(string(gapRune), len(s.Data))
	}

	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1
	}

	samples := s.sampleData()

	var b strings.Builder
	normalStyle := lipgloss.NewStyle().Foreground(s.Color)
	highlightStyle := lipgloss.NewStyle().Foreground(s.HighlightColor).Bold(true)

	for i, val := range samples {
		if math.IsNaN(val) {
			b.WriteRune(gapRune)
			continue
		}

		normalized := (val - minVal) / valRange
		blockIdx := int(normalized * 7)
		if blockIdx > 7 {
			blockIdx = 7
		}
		if blockIdx < 0 {
			blockIdx = 0
		}
		char := string(sparkBlocks[blockIdx])

		isHighlight := s.HighlightIndex >= 0 && s.mapSampleToData(i, len(samples)) == s.HighlightIndex
		if isHighlight {
			b.WriteString(highlightStyle.Render(char))
		} else {
			b.WriteString(normalStyle.Render(char))
		}
	}

	return b.String()
}

// sampleData reduces data points to fit within width by nearest-index
// selection, a display-time fallback for when Data arrives wider than
// Width; the normal path is for the caller to already have downsampled
// to Width via downsample.LTTB.
func (s Sparkline) sampleData() []float64 {
	if len(s.Data) <= s.Width || s.Width <= 0 {
		return s.Data
	}

	result := make([]float64, s.Width)
	ratio := float64(len(s.Data)) / float64(s.Width)
	for i := 0; i < s.Width; i++ {
		idx := int(float64(i) * ratio)
		if idx >= len(s.Data) {
			idx = len(s.Data) - 1
		}
		result[i] = s.Data[idx]
	}
	return result
}

// mapSampleToData maps a sample index back to original data index.
func (s Sparkline) mapSampleToData(sampleIdx, sampleCount int) int {
	if sampleCount >= len(s.Data) {
		return sampleIdx
	}
	ratio := float64(len(s.Data)) / float64(sampleCount)
	return int(float64(sampleIdx) * ratio)
}
