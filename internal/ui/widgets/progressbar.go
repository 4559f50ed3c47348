/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a horizontal fill bar for a 0-100 load-progress
// value, such as ingest.Status.Progress (a [0,1] fraction) scaled by 100.
type ProgressBar struct {
	Value       float64 // Current value, 0-100
	MaxValue    float64 // Maximum value, default 100
	Width       int
	FilledColor lipgloss.Color
	EmptyColor  lipgloss.Color
}

// NewProgressBar creates a progress bar with default styling.
func NewProgressBar(value float64, width int) ProgressBar {
	return ProgressBar{
		Value:       value,
		MaxValue:    100,
		Width:       width,
		FilledColor: lipgloss.Color("62"),  // Blue
		EmptyColor:  lipgloss.Color("240"), // Dark gray
	}
}

// WithMax sets the maximum value.
func (p ProgressBar) WithMax(max float64) ProgressBar {
	p.MaxValue = max
	return p
}

// Render produces the progress bar string. Once the fill is complete the
// color switches from blue to green, signaling "done" rather than a
// severity warning.
func (p ProgressBar) Render() string {
	if p.Width <= 0 || p.MaxValue <= 0 {
		return ""
	}

	ratio := p.Value / p.MaxValue
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	filledColor := p.FilledColor
	if ratio >= 0.999 {
		filledColor = lipgloss.Color("42") // Green - complete
	}

	filledStyle := lipgloss.NewStyle().Foreground(filledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(p.EmptyColor)

	filledWidth := int(ratio * float64(p.Width))

	var b strings.Builder
	for i := 0; i < p.Width; i++ {
		if i < filledWidth {
			b.WriteString(filledStyle.Render("█"))
		} else {
			b.WriteString(emptyStyle.Render("░"))
		}
	}
	return b.String()
}
