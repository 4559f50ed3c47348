/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package playback

import (
	"math"
	"testing"
	"time"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/tab"
)

func testTab(t *testing.T, seconds float64, n int) *tab.Tab {
	t.Helper()
	timeVec := make([]float64, n)
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		timeVec[i] = seconds * float64(i) / float64(n-1)
		samples[i] = float64(i)
	}
	log := logmodel.New(timeVec, []logmodel.ChannelSpec{
		{RawName: "RPM", DisplayName: "RPM", Kind: logmodel.KindRPM, Samples: samples},
	}, logmodel.FormatHaltech, logmodel.Metadata{})
	return tab.New("/tmp/a.csv", log)
}

// TestAdvanceMatchesSpeedTimesElapsed implements the cursor-advance testable
// property: cursor_after - cursor_before == speed * wall_elapsed, within a
// small tolerance.
func TestAdvanceMatchesSpeedTimesElapsed(t *testing.T) {
	tb := testTab(t, 100, 1000)
	SetSpeed(tb, 2, time.Unix(0, 0))
	before := time.Unix(0, 0)
	Play(tb, before)

	after := before.Add(3 * time.Second)
	cursor := Advance(tb, after)

	want := 0.0 + 3*2
	if math.Abs(cursor-want) > 1e-6 {
		t.Errorf("cursor = %v, want %v", cursor, want)
	}
}

func TestAdvanceClampsAtLogEndAndStops(t *testing.T) {
	tb := testTab(t, 10, 100)
	SetSpeed(tb, 8, time.Unix(0, 0))
	Play(tb, time.Unix(0, 0))

	cursor := Advance(tb, time.Unix(0, 0).Add(10*time.Second))
	if cursor != 10 {
		t.Errorf("cursor = %v, want clamped to 10", cursor)
	}
	if tb.Snapshot().Playback.State != tab.Stopped {
		t.Errorf("state = %v, want Stopped after reaching log end", tb.Snapshot().Playback.State)
	}
}

func TestPauseThenPlayResumesFromPausedCursor(t *testing.T) {
	tb := testTab(t, 100, 1000)
	Play(tb, time.Unix(0, 0))
	Advance(tb, time.Unix(0, 0).Add(5*time.Second))
	Pause(tb, time.Unix(0, 0).Add(5*time.Second))

	pausedCursor := tb.Snapshot().CursorTime
	// Time passing while paused must not move the cursor.
	if got := Advance(tb, time.Unix(0, 0).Add(20*time.Second)); got != pausedCursor {
		t.Errorf("cursor moved while paused: %v vs %v", got, pausedCursor)
	}

	Play(tb, time.Unix(0, 0).Add(20*time.Second))
	resumed := Advance(tb, time.Unix(0, 0).Add(21*time.Second))
	if math.Abs(resumed-(pausedCursor+1)) > 1e-6 {
		t.Errorf("resumed cursor = %v, want %v", resumed, pausedCursor+1)
	}
}

func TestStopResetsCursorToLogStart(t *testing.T) {
	tb := testTab(t, 100, 1000)
	Play(tb, time.Unix(0, 0))
	Advance(tb, time.Unix(0, 0).Add(10*time.Second))
	Stop(tb)

	if got := tb.Snapshot().CursorTime; got != 0 {
		t.Errorf("cursor after Stop = %v, want 0", got)
	}
	if tb.Snapshot().Playback.State != tab.Stopped {
		t.Error("expected Stopped state after Stop")
	}
}

func TestSetSpeedRejectsUnlistedMultiplier(t *testing.T) {
	tb := testTab(t, 100, 1000)
	if err := SetSpeed(tb, 3, time.Unix(0, 0)); err != ErrInvalidSpeed {
		t.Errorf("err = %v, want ErrInvalidSpeed", err)
	}
}

func TestRecenterViewportClampsAtBoundaries(t *testing.T) {
	tb := testTab(t, 1000, 2000)
	tb.SetViewport(0, 60)
	tb.SetCursor(999)
	RecenterViewport(tb)

	snap := tb.Snapshot()
	if snap.Viewport.Max != 1000 {
		t.Errorf("viewport max = %v, want clamped to 1000", snap.Viewport.Max)
	}
}
