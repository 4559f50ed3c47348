/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package logmodel is the in-memory representation of a parsed ECU log.
//
// A Log is immutable after construction: a Parser builds one, a Tab owns
// it, and it is discarded (never mutated) when its owning Tab closes.
package logmodel

import (
	"errors"
	"sort"
	"sync/atomic"
)

// Format tags the wire format a Log was parsed from.
type Format int

const (
	FormatUnknown Format = iota
	FormatHaltech
	FormatECUMaster
	FormatMLG
)

func (f Format) String() string {
	switch f {
	case FormatHaltech:
		return "Haltech"
	case FormatECUMaster:
		return "ECUMaster"
	case FormatMLG:
		return "MegaLogViewer"
	default:
		return "Unknown"
	}
}

// Metadata carries optional, advisory header information a parser found.
type Metadata struct {
	FirmwareVersion  string
	SamplingRateHint float64 // Hz, 0 if not declared.
	CaptureTimestamp string  // opaque, parser-supplied.
}

// Log is a fully-parsed, immutable log file.
type Log struct {
	id       int
	time     []float64
	channels []*Channel
	format   Format
	meta     Metadata
}

// nextLogID hands out process-wide unique Log identifiers. It must be
// concurrency-safe: multiple ingest workers may construct Logs at once.
var nextLogID int64

// New constructs a Log from a time base and channels, assigning stable
// channel ids and computing per-channel bounds. It is a programmer error
// (not a parse error) if any channel's sample count does not equal
// len(time); New panics in that case, since it would mean a parser bug,
// not a malformed input file.
func New(time []float64, channels []ChannelSpec, format Format, meta Metadata) *Log {
	l := &Log{
		id:     int(atomic.AddInt64(&nextLogID, 1) - 1),
		time:   time,
		format: format,
		meta:   meta,
	}
	l.channels = make([]*Channel, len(channels))
	for i, spec := range channels {
		if len(spec.Samples) != len(time) {
			panic("logmodel: channel sample length does not match time base length")
		}
		l.channels[i] = &Channel{
			id:          i,
			rawName:     spec.RawName,
			displayName: spec.DisplayName,
			kind:        spec.Kind,
			sourceUnit:  spec.SourceUnit,
			samples:     spec.Samples,
			declaredMin: spec.DeclaredMin,
			declaredMax: spec.DeclaredMax,
		}
		l.channels[i].computeBounds()
	}
	return l
}

// ID returns the log's process-unique identifier, used as part of
// DownsampleKey identity.
func (l *Log) ID() int { return l.id }

// Format returns the wire format this log was parsed from.
func (l *Log) Format() Format { return l.format }

// Metadata returns the log's optional header metadata.
func (l *Log) Metadata() Metadata { return l.meta }

// Time returns the immutable time vector, seconds since log start.
func (l *Log) Time() []float64 { return l.time }

// Channels returns all channels, in parse order.
func (l *Log) Channels() []*Channel { return l.channels }

// Channel looks up a channel by id. Returns nil if id is out of range.
func (l *Log) Channel(id int) *Channel {
	if id < 0 || id >= len(l.channels) {
		return nil
	}
	return l.channels[id]
}

// ErrEmptyLog is returned by TimeRange when a log has no samples.
var ErrEmptyLog = errors.New("logmodel: log has no samples")

// TimeRange returns [time[0], time[last]].
func (l *Log) TimeRange() (float64, float64, error) {
	if len(l.time) == 0 {
		return 0, 0, ErrEmptyLog
	}
	return l.time[0], l.time[len(l.time)-1], nil
}

// LookupIndex returns the largest index i such that time[i] <= t, or -1 if
// t < time[0]. This is the hot path for cursor tracking and must be
// O(log n); it never scans linearly.
func (l *Log) LookupIndex(t float64) int {
	if len(l.time) == 0 || t < l.time[0] {
		return -1
	}
	// sort.Search finds the first index for which the predicate is true;
	// we want the last index with time[i] <= t, i.e. one before the first
	// index with time[i] > t.
	i := sort.Search(len(l.time), func(i int) bool { return l.time[i] > t })
	return i - 1
}

// Renormalize overwrites every channel's display name by applying rename
// to its raw name. It is called exactly once by the ingest layer right
// after a parse succeeds, before the Log is handed to a Tab; nothing
// else mutates a Log after construction.
func (l *Log) Renormalize(rename func(rawName string) string) {
	for _, c := range l.channels {
		c.setDisplayName(rename(c.rawName))
	}
}

// ChannelSpec is the data a Parser hands to New for one channel, before
// stable ids are assigned.
type ChannelSpec struct {
	RawName     string
	DisplayName string
	Kind        Kind
	SourceUnit  string
	Samples     []float64
	DeclaredMin *float64 // advisory only, never used for Min()/Max().
	DeclaredMax *float64
}
