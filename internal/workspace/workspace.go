/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package workspace owns the set of open Tabs and the ingest Scheduler
// that fills them, and is the PathOwner the Scheduler consults to detect
// a file that is already open.
package workspace

import (
	"sync"

	"github.com/SomethingNew71/UltraLog/internal/ingest"
	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/normalize"
	"github.com/SomethingNew71/UltraLog/internal/tab"
)

// Workspace is the top-level, single-process owner of every open Tab.
type Workspace struct {
	scheduler *ingest.Scheduler

	mu     sync.Mutex
	tabs   []*tab.Tab
	active int
}

// New creates an empty Workspace whose ingest Scheduler renames channels
// through rules as each log finishes parsing.
func New(rules normalize.Table, poolSize int) *Workspace {
	w := &Workspace{active: -1}
	w.scheduler = ingest.NewScheduler(w, poolSize, func(raw string) string {
		return normalize.Normalize(raw, rules)
	})
	return w
}

// TabIDForPath implements ingest.PathOwner.
func (w *Workspace) TabIDForPath(canonicalPath string) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, t := range w.tabs {
		if t.SourcePath() == canonicalPath {
			return i, true
		}
	}
	return 0, false
}

// Submit begins loading path, returning a ticket to poll.
func (w *Workspace) Submit(path string) (ingest.TicketID, error) {
	return w.scheduler.Submit(path)
}

// Poll returns the current status of ticket.
func (w *Workspace) Poll(ticket ingest.TicketID) (ingest.Status, error) {
	return w.scheduler.Poll(ticket)
}

// Cancel requests that an in-flight ticket stop.
func (w *Workspace) Cancel(ticket ingest.TicketID) error {
	return w.scheduler.Cancel(ticket)
}

// AddTab creates a Tab over log, opened from sourcePath, appends it, and
// makes it the active tab. Returns the new tab's index.
func (w *Workspace) AddTab(sourcePath string, log *logmodel.Log) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tabs = append(w.tabs, tab.New(sourcePath, log))
	w.active = len(w.tabs) - 1
	return w.active
}

// Tabs returns a snapshot slice of every open Tab, in open order.
func (w *Workspace) Tabs() []*tab.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*tab.Tab, len(w.tabs))
	copy(out, w.tabs)
	return out
}

// ActiveIndex returns the index of the active tab, or -1 if none are open.
func (w *Workspace) ActiveIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// Active returns the active Tab, or nil if none are open.
func (w *Workspace) Active() *tab.Tab {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active < 0 || w.active >= len(w.tabs) {
		return nil
	}
	return w.tabs[w.active]
}

// SetActive selects the tab at index i, clamped into range.
func (w *Workspace) SetActive(i int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.tabs) == 0 {
		w.active = -1
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(w.tabs) {
		i = len(w.tabs) - 1
	}
	w.active = i
}

// CloseActive removes the active tab. Closing never touches the file on
// disk; it only drops the in-memory Log and view state.
func (w *Workspace) CloseActive() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active < 0 || w.active >= len(w.tabs) {
		return
	}
	w.tabs = append(w.tabs[:w.active], w.tabs[w.active+1:]...)
	if w.active >= len(w.tabs) {
		w.active = len(w.tabs) - 1
	}
}
