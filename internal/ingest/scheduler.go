/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package ingest decouples file loading and parsing from the UI thread: a
// caller submits a path and polls a ticket for progress, a finished Log, or
// a failure, instead of blocking or receiving a cross-thread callback.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/SomethingNew71/UltraLog/internal/detect"
	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/parsers/ecumaster"
	"github.com/SomethingNew71/UltraLog/internal/parsers/haltech"
	"github.com/SomethingNew71/UltraLog/internal/parsers/mlg"
)

// TicketID identifies one submitted ingest request.
type TicketID int64

// State is a ticket's lifecycle stage.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
	StateCanceled
)

// Status is a poll-time snapshot of a ticket.
type Status struct {
	State    State
	Progress float64 // in [0,1], meaningful only while State == StateLoading
	Path     string  // canonicalized source path
	Log      *logmodel.Log
	Err      error
}

// DuplicatePath is returned by Submit when path (after canonicalization)
// already belongs to an open Tab.
type DuplicatePath struct {
	ExistingTabID int
}

func (e *DuplicatePath) Error() string {
	return fmt.Sprintf("ingest: path already open as tab %d", e.ExistingTabID)
}

// ErrUnknownTicket is returned by Poll and Cancel for a ticket id the
// Scheduler never issued.
var ErrUnknownTicket = errors.New("ingest: unknown ticket")

// chunkSize bounds how much of a file a worker reads before checking for
// cancellation, and is the unit progress is reported in.
const chunkSize = 256 * 1024

// PathOwner resolves a canonicalized path to an already-open Tab id, used
// to detect duplicate submissions. Implemented by the Tab registry.
type PathOwner interface {
	TabIDForPath(canonicalPath string) (tabID int, ok bool)
}

type ticket struct {
	mu       sync.Mutex
	path     string
	status   Status
	cancel   context.CancelFunc
	canceled bool
}

// Scheduler runs ingest workers on a bounded pool and tracks every ticket
// it issues, in-flight and completed, for its whole lifetime; tickets are
// never removed.
type Scheduler struct {
	owner   PathOwner
	workers chan struct{} // counting semaphore
	rename  func(rawName string) string

	mu         sync.Mutex
	nextID     int64
	tickets    map[TicketID]*ticket
	pathToTick map[string]TicketID
}

// NewScheduler creates a Scheduler whose worker pool size is
// min(4, runtime.NumCPU()) unless poolSize > 0 overrides it. rename, if
// non-nil, is applied to every channel's display name once a parse
// succeeds, before the ticket is marked Ready; pass nil to leave parsers'
// seeded display names untouched.
func NewScheduler(owner PathOwner, poolSize int, rename func(rawName string) string) *Scheduler {
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
		if poolSize > 4 {
			poolSize = 4
		}
		if poolSize < 1 {
			poolSize = 1
		}
	}
	return &Scheduler{
		owner:      owner,
		workers:    make(chan struct{}, poolSize),
		rename:     rename,
		tickets:    make(map[TicketID]*ticket),
		pathToTick: make(map[string]TicketID),
	}
}

// Submit canonicalizes path and begins an asynchronous parse. If path is
// already open in a Tab, it returns a *DuplicatePath error referencing that
// Tab instead of a ticket. If the same path already has an in-flight
// ticket, that existing ticket is returned rather than starting a second
// parse of the same file.
func (s *Scheduler) Submit(path string) (TicketID, error) {
	canonical, err := canonicalize(path)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	if tabID, ok := s.owner.TabIDForPath(canonical); ok {
		s.mu.Unlock()
		return 0, &DuplicatePath{ExistingTabID: tabID}
	}
	if id, ok := s.pathToTick[canonical]; ok {
		prev := s.tickets[id]
		prev.mu.Lock()
		inFlight := prev.status.State == StateLoading
		prev.mu.Unlock()
		if inFlight {
			s.mu.Unlock()
			return id, nil
		}
	}

	s.nextID++
	id := TicketID(s.nextID)
	ctx, cancel := context.WithCancel(context.Background())
	t := &ticket{
		path:   canonical,
		status: Status{State: StateLoading, Progress: 0, Path: canonical},
		cancel: cancel,
	}
	s.tickets[id] = t
	s.pathToTick[canonical] = id
	s.mu.Unlock()

	go s.run(ctx, id, t)
	return id, nil
}

// Poll returns the current status of ticket.
func (s *Scheduler) Poll(ticket TicketID) (Status, error) {
	s.mu.Lock()
	t, ok := s.tickets[ticket]
	s.mu.Unlock()
	if !ok {
		return Status{}, ErrUnknownTicket
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, nil
}

// Cancel requests that ticket stop at its next yield point. It is
// idempotent: canceling an already-finished or already-canceled ticket is a
// no-op.
func (s *Scheduler) Cancel(ticket TicketID) error {
	s.mu.Lock()
	t, ok := s.tickets[ticket]
	s.mu.Unlock()
	if !ok {
		return ErrUnknownTicket
	}

	t.mu.Lock()
	if t.status.State != StateLoading {
		t.mu.Unlock()
		return nil
	}
	t.canceled = true
	t.mu.Unlock()

	t.cancel()
	return nil
}

func (s *Scheduler) run(ctx context.Context, id TicketID, t *ticket) {
	s.workers <- struct{}{}
	defer func() { <-s.workers }()

	result := parseWithCancellation(ctx, t.path, func(p float64) {
		t.mu.Lock()
		if t.status.State == StateLoading {
			t.status.Progress = p
		}
		t.mu.Unlock()
	})

	if result.log != nil && s.rename != nil {
		result.log.Renormalize(s.rename)
	}

	t.mu.Lock()
	switch {
	case t.canceled:
		t.status = Status{State: StateCanceled, Path: t.path}
	case result.err != nil:
		t.status = Status{State: StateFailed, Path: t.path, Err: result.err}
	default:
		t.status = Status{State: StateReady, Path: t.path, Log: result.log, Progress: 1}
	}
	t.mu.Unlock()
}

type parseResult struct {
	log *logmodel.Log
	err error
}

// parseWithCancellation reads path in chunks, reporting progress after
// each, then dispatches to the format-specific parser once the whole file
// is buffered (detection and the CSV/binary parsers all need random access
// to the full byte slice). Cancellation is checked between I/O chunks and
// again before the parse phase begins.
func parseWithCancellation(ctx context.Context, path string, onProgress func(float64)) parseResult {
	f, err := os.Open(path)
	if err != nil {
		return parseResult{err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return parseResult{err: err}
	}
	size := info.Size()
	if size == 0 {
		onProgress(1)
		return parseResult{err: errors.New("ingest: empty file")}
	}

	buf := make([]byte, 0, size)
	chunk := make([]byte, chunkSize)
	var read int64
	for {
		select {
		case <-ctx.Done():
			return parseResult{err: ctx.Err()}
		default:
		}
		n, readErr := f.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			read += int64(n)
			onProgress(float64(read) / float64(size))
		}
		if readErr != nil {
			break
		}
	}

	select {
	case <-ctx.Done():
		return parseResult{err: ctx.Err()}
	default:
	}

	log, err := parseBuffer(buf)
	return parseResult{log: log, err: err}
}

func parseBuffer(data []byte) (*logmodel.Log, error) {
	format, err := detect.Detect(data)
	if err != nil {
		return nil, err
	}
	switch format {
	case logmodel.FormatHaltech:
		return haltech.Parse(data)
	case logmodel.FormatECUMaster:
		return ecumaster.Parse(data)
	case logmodel.FormatMLG:
		return mlg.Parse(data)
	default:
		return nil, detect.ErrUnrecognizedFormat
	}
}

// canonicalize resolves path to an absolute, symlink-free form so that two
// different spellings of the same file (relative vs. absolute, symlinked
// vs. real) collide as the same Tab identity.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// The file may not exist yet relative to symlink resolution
		// quirks on some platforms; fall back to the absolute, cleaned
		// path rather than failing the submission outright.
		return filepath.Clean(abs), nil
	}
	return resolved, nil
}
