/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package widgets

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderEmptyDataReturnsEmptyString(t *testing.T) {
	s := NewSparkline(nil, 10, lipgloss.Color("62"))
	if got := s.Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRenderAllNaNProducesAllGaps(t *testing.T) {
	data := []float64{math.NaN(), math.NaN(), math.NaN()}
	s := NewSparkline(data, 3, lipgloss.Color("62"))
	got := s.Render()
	if strings.Count(got, string(gapRune)) != 3 {
		t.Errorf("Render() = %q, want 3 gap runes", got)
	}
}

func TestRenderSkipsNaNInMinMaxComputation(t *testing.T) {
	data := []float64{0, math.NaN(), 100}
	s := NewSparkline(data, 3, lipgloss.Color("62"))
	got := []rune(s.Render())
	if len(got) != 3 {
		t.Fatalf("Render() rune count = %d, want 3", len(got))
	}
	if got[1] != gapRune {
		t.Errorf("middle rune = %q, want gap", got[1])
	}
}
