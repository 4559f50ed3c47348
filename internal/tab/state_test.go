/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package tab

import (
	"testing"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
)

func testLog(t *testing.T, seconds float64, n int) *logmodel.Log {
	t.Helper()
	time := make([]float64, n)
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		time[i] = seconds * float64(i) / float64(n-1)
		samples[i] = float64(i)
	}
	return logmodel.New(time, []logmodel.ChannelSpec{
		{RawName: "RPM", DisplayName: "RPM", Kind: logmodel.KindRPM, Samples: samples},
	}, logmodel.FormatHaltech, logmodel.Metadata{})
}

func TestNewTabInitialViewportShortLog(t *testing.T) {
	log := testLog(t, 10, 100)
	tb := New("/tmp/a.csv", log)
	snap := tb.Snapshot()
	if snap.Viewport.Min != 0 || snap.Viewport.Max != 10 {
		t.Errorf("viewport = %+v, want full range [0,10]", snap.Viewport)
	}
}

func TestNewTabInitialViewportLongLogClampsToSixtySeconds(t *testing.T) {
	log := testLog(t, 600, 1000)
	tb := New("/tmp/a.csv", log)
	snap := tb.Snapshot()
	if snap.Viewport.Min != 0 || snap.Viewport.Max != 60 {
		t.Errorf("viewport = %+v, want [0,60]", snap.Viewport)
	}
}

func TestSelectAssignsDistinctColors(t *testing.T) {
	log := testLog(t, 10, 10)
	tb := New("/tmp/a.csv", log)
	for i := 0; i < 3; i++ {
		if err := tb.Select(i); err != nil {
			t.Fatalf("Select(%d): %v", i, err)
		}
	}
	snap := tb.Snapshot()
	seen := map[int]bool{}
	for _, s := range snap.Selected {
		if seen[s.ColorIndex] {
			t.Errorf("duplicate color index %d", s.ColorIndex)
		}
		seen[s.ColorIndex] = true
	}
}

func TestSelectAlreadySelected(t *testing.T) {
	log := testLog(t, 10, 10)
	tb := New("/tmp/a.csv", log)
	if err := tb.Select(1); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := tb.Select(1); err != ErrAlreadySelected {
		t.Errorf("err = %v, want ErrAlreadySelected", err)
	}
}

func TestSelectFull(t *testing.T) {
	log := testLog(t, 10, 10)
	tb := New("/tmp/a.csv", log)
	for i := 0; i < MaxSelection; i++ {
		if err := tb.Select(i); err != nil {
			t.Fatalf("Select(%d): %v", i, err)
		}
	}
	if err := tb.Select(999); err != ErrSelectionFull {
		t.Errorf("err = %v, want ErrSelectionFull", err)
	}
}

func TestDeselectFreesColorIndex(t *testing.T) {
	log := testLog(t, 10, 10)
	tb := New("/tmp/a.csv", log)
	tb.Select(0)
	tb.Select(1)
	tb.Deselect(0)

	if err := tb.Select(2); err != nil {
		t.Fatalf("Select after deselect: %v", err)
	}
	snap := tb.Snapshot()
	var color2 int = -1
	for _, s := range snap.Selected {
		if s.ChannelID == 2 {
			color2 = s.ColorIndex
		}
	}
	if color2 != 0 {
		t.Errorf("new selection color = %d, want 0 (freed by deselect)", color2)
	}
}

func TestSetCursorClampsToRange(t *testing.T) {
	log := testLog(t, 10, 100)
	tb := New("/tmp/a.csv", log)
	tb.SetCursor(-5)
	if got := tb.Snapshot().CursorTime; got != 0 {
		t.Errorf("cursor = %v, want clamped to 0", got)
	}
	tb.SetCursor(1000)
	if got := tb.Snapshot().CursorTime; got != 10 {
		t.Errorf("cursor = %v, want clamped to 10", got)
	}
}

func TestSetViewportSwapsReversedBounds(t *testing.T) {
	log := testLog(t, 10, 100)
	tb := New("/tmp/a.csv", log)
	tb.SetViewport(5, 2)
	snap := tb.Snapshot()
	if snap.Viewport.Min != 2 || snap.Viewport.Max != 5 {
		t.Errorf("viewport = %+v, want [2,5]", snap.Viewport)
	}
}

func TestResetViewportRestoresFullRange(t *testing.T) {
	log := testLog(t, 600, 1000)
	tb := New("/tmp/a.csv", log)
	tb.ResetViewport()
	snap := tb.Snapshot()
	if snap.Viewport.Min != 0 || snap.Viewport.Max != 600 {
		t.Errorf("viewport = %+v, want full range [0,600]", snap.Viewport)
	}
}
