/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package tab holds per-document view state: which channels are selected,
// the playback cursor, and the current viewport. A Tab owns exactly one
// Log and is never shared across threads — all mutations originate on the
// UI thread — but exposes a Snapshot method so a renderer always sees a
// consistent view even if called concurrently with a mutation.
package tab

import (
	"errors"
	"sync"
	"time"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/palette"
)

// PlaybackState is the Tab's transport state.
type PlaybackState int

const (
	Stopped PlaybackState = iota
	Playing
	Paused
)

// Speeds are the only playback multipliers a Tab may be set to.
var Speeds = []float64{0.25, 0.5, 1, 2, 4, 8}

// MaxSelection bounds how many channels a Tab may have selected at once,
// matching the number of distinct colors in a palette.
const MaxSelection = palette.Size

// ErrSelectionFull is returned by Select when the Tab already has
// MaxSelection channels selected.
var ErrSelectionFull = errors.New("tab: selection is full")

// ErrAlreadySelected is returned by Select when channelID is already
// selected.
var ErrAlreadySelected = errors.New("tab: channel already selected")

// Selection pairs a selected channel with the palette index used to draw
// it.
type Selection struct {
	ChannelID  int
	ColorIndex int
}

// Viewport is a visible time window, time_min < time_max.
type Viewport struct {
	Min, Max float64
}

// Playback is the transport state needed to compute the cursor on demand;
// see package playback for the advance computation itself.
type Playback struct {
	State       PlaybackState
	Speed       float64
	AnchorWall  time.Time
	AnchorCursor float64
}

// Snapshot is a consistent, caller-owned copy of a Tab's state, safe to
// read without further synchronization.
type Snapshot struct {
	SourcePath string
	Log        *logmodel.Log
	Selected   []Selection
	CursorTime float64
	Viewport   Viewport
	Playback   Playback
	Palette    palette.Name
}

// Tab is one open document.
type Tab struct {
	mu sync.RWMutex

	sourcePath string
	log        *logmodel.Log
	selected   []Selection
	cursorTime float64
	viewport   Viewport
	playback   Playback
	pal        palette.Name
}

// New creates a Tab over log, sourced from sourcePath (already
// canonicalized by the caller). The initial viewport is the first 60
// seconds of the log, or the full range if the log is shorter than that;
// the cursor starts at time[0].
func New(sourcePath string, log *logmodel.Log) *Tab {
	t := &Tab{
		sourcePath: sourcePath,
		log:        log,
		playback:   Playback{State: Stopped, Speed: 1},
	}
	start, end, err := log.TimeRange()
	if err != nil {
		return t
	}
	t.cursorTime = start
	t.playback.AnchorCursor = start
	viewEnd := start + 60
	if viewEnd > end {
		viewEnd = end
	}
	t.viewport = Viewport{Min: start, Max: viewEnd}
	return t
}

// SourcePath returns the canonicalized path this Tab was opened from, used
// for duplicate-open detection.
func (t *Tab) SourcePath() string { return t.sourcePath }

// Log returns the Tab's owned Log.
func (t *Tab) Log() *logmodel.Log { return t.log }

// Select adds channelID to the selection, assigning it a color greedily
// from the lowest unused palette index. Fails with ErrSelectionFull if the
// selection is already at MaxSelection, or ErrAlreadySelected if channelID
// is already selected.
func (t *Tab) Select(channelID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.selected) >= MaxSelection {
		return ErrSelectionFull
	}
	for _, s := range t.selected {
		if s.ChannelID == channelID {
			return ErrAlreadySelected
		}
	}

	used := make(map[int]bool, len(t.selected))
	for _, s := range t.selected {
		used[s.ColorIndex] = true
	}
	colorIdx := -1
	for i := 0; i < palette.Size; i++ {
		if !used[i] {
			colorIdx = i
			break
		}
	}
	if colorIdx == -1 {
		// Every index is in use; reuse the oldest remaining selection's
		// color index rather than leaving the new selection uncolored.
		colorIdx = t.selected[0].ColorIndex
	}

	t.selected = append(t.selected, Selection{ChannelID: channelID, ColorIndex: colorIdx})
	return nil
}

// Deselect removes channelID from the selection, if present.
func (t *Tab) Deselect(channelID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, s := range t.selected {
		if s.ChannelID == channelID {
			t.selected = append(t.selected[:i], t.selected[i+1:]...)
			return
		}
	}
}

// SetCursor sets the cursor time, clamped into the Log's time range.
func (t *Tab) SetCursor(cursor float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursorTime = t.clampToRangeLocked(cursor)
}

func (t *Tab) clampToRangeLocked(v float64) float64 {
	start, end, err := t.log.TimeRange()
	if err != nil {
		return v
	}
	if v < start {
		return start
	}
	if v > end {
		return end
	}
	return v
}

// SetViewport sets the visible time window, clamped into the Log's time
// range; min is forced below max if the caller passes them reversed.
func (t *Tab) SetViewport(min, max float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if min > max {
		min, max = max, min
	}
	t.viewport = Viewport{Min: t.clampToRangeLocked(min), Max: t.clampToRangeLocked(max)}
}

// ResetViewport expands the viewport to the Log's full time range.
func (t *Tab) ResetViewport() {
	t.mu.Lock()
	defer t.mu.Unlock()
	start, end, err := t.log.TimeRange()
	if err != nil {
		return
	}
	t.viewport = Viewport{Min: start, Max: end}
}

// SetPalette switches the active color palette. Existing selections keep
// their ColorIndex; only the table that index is interpreted against
// changes.
func (t *Tab) SetPalette(name palette.Name) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pal = name
}

// SetPlayback replaces the playback state wholesale; used by the playback
// engine to publish a new anchor atomically.
func (t *Tab) SetPlayback(p Playback) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playback = p
}

// Snapshot returns a consistent, independent copy of the Tab's state.
func (t *Tab) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	selected := make([]Selection, len(t.selected))
	copy(selected, t.selected)
	return Snapshot{
		SourcePath: t.sourcePath,
		Log:        t.log,
		Selected:   selected,
		CursorTime: t.cursorTime,
		Viewport:   t.viewport,
		Playback:   t.playback,
		Palette:    t.pal,
	}
}
