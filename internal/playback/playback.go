/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package playback advances a Tab's cursor according to wall-clock time and
// a speed multiplier, independent of the render loop's own frame rate.
package playback

import (
	"errors"
	"time"

	"github.com/SomethingNew71/UltraLog/internal/tab"
)

// ErrInvalidSpeed is returned by SetSpeed when speed is not one of
// tab.Speeds.
var ErrInvalidSpeed = errors.New("playback: speed must be one of the fixed multipliers")

// Play transitions a Tab into Playing, anchoring the current cursor and
// wall-clock time so Advance can compute cursor_time relative to them.
func Play(t *tab.Tab, now time.Time) {
	snap := t.Snapshot()
	t.SetPlayback(tab.Playback{
		State:        tab.Playing,
		Speed:        snap.Playback.Speed,
		AnchorWall:   now,
		AnchorCursor: snap.CursorTime,
	})
}

// Pause preserves the current cursor as the new anchor and transitions to
// Paused, so a later Play resumes from exactly where playback left off.
func Pause(t *tab.Tab, now time.Time) {
	snap := t.Snapshot()
	cursor := Advance(t, now)
	t.SetPlayback(tab.Playback{
		State:        tab.Paused,
		Speed:        snap.Playback.Speed,
		AnchorWall:   now,
		AnchorCursor: cursor,
	})
}

// Stop resets the cursor to the Log's start time and transitions to
// Stopped.
func Stop(t *tab.Tab) {
	snap := t.Snapshot()
	start, _, err := snap.Log.TimeRange()
	if err != nil {
		start = 0
	}
	t.SetPlayback(tab.Playback{
		State:        tab.Stopped,
		Speed:        snap.Playback.Speed,
		AnchorCursor: start,
	})
	t.SetCursor(start)
}

// SetSpeed changes the speed multiplier, re-anchoring at now so the
// cursor's position is preserved across the change. speed must be one of
// tab.Speeds.
func SetSpeed(t *tab.Tab, speed float64, now time.Time) error {
	valid := false
	for _, s := range tab.Speeds {
		if s == speed {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidSpeed
	}

	cursor := Advance(t, now)
	snap := t.Snapshot()
	state := snap.Playback.State
	anchorWall := now
	if state != tab.Playing {
		anchorWall = snap.Playback.AnchorWall
	}
	t.SetPlayback(tab.Playback{
		State:        state,
		Speed:        speed,
		AnchorWall:   anchorWall,
		AnchorCursor: cursor,
	})
	t.SetCursor(cursor)
	return nil
}

// Advance computes the cursor position at wall-clock time now, publishing
// it to the Tab and returning it. While Stopped or Paused, it simply
// returns the current cursor without recomputing. While Playing, it
// computes anchor_cursor + (now - anchor_wall) * speed; if that reaches or
// passes the Log's last timestamp, playback transitions to Stopped and the
// cursor clamps to the end. If cursor tracking is enabled the caller should
// follow with a viewport recentering call; Advance itself only moves the
// cursor.
func Advance(t *tab.Tab, now time.Time) float64 {
	snap := t.Snapshot()
	if snap.Playback.State != tab.Playing {
		return snap.CursorTime
	}

	elapsed := now.Sub(snap.Playback.AnchorWall).Seconds()
	cursor := snap.Playback.AnchorCursor + elapsed*snap.Playback.Speed

	_, end, err := snap.Log.TimeRange()
	if err == nil && cursor >= end {
		t.SetPlayback(tab.Playback{
			State:        tab.Stopped,
			Speed:        snap.Playback.Speed,
			AnchorCursor: end,
		})
		t.SetCursor(end)
		return end
	}

	t.SetCursor(cursor)
	return cursor
}

// RecenterViewport translates the Tab's viewport so cursor sits at its
// center, clamped so the viewport never extends past the Log's boundaries.
// Called by the renderer only when cursor tracking is enabled.
func RecenterViewport(t *tab.Tab) {
	snap := t.Snapshot()
	start, end, err := snap.Log.TimeRange()
	if err != nil {
		return
	}
	half := (snap.Viewport.Max - snap.Viewport.Min) / 2
	min := snap.CursorTime - half
	max := snap.CursorTime + half
	if min < start {
		shift := start - min
		min += shift
		max += shift
	}
	if max > end {
		shift := max - end
		min -= shift
		max -= shift
	}
	if min < start {
		min = start
	}
	t.SetViewport(min, max)
}
