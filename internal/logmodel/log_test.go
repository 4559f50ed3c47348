/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package logmodel

import (
	"math"
	"testing"
)

func sampleLog(t *testing.T) *Log {
	t.Helper()
	time := []float64{0, 1, 2, 3, 4}
	channels := []ChannelSpec{
		{RawName: "RPM", DisplayName: "RPM", Kind: KindRPM, SourceUnit: "rpm",
			Samples: []float64{1000, 2000, math.NaN(), 4000, 5000}},
	}
	return New(time, channels, FormatHaltech, Metadata{})
}

func TestLogInvariantLengthsMatch(t *testing.T) {
	l := sampleLog(t)
	for _, ch := range l.Channels() {
		if len(ch.Samples()) != len(l.Time()) {
			t.Fatalf("channel %s has %d samples, time base has %d", ch.DisplayName(), len(ch.Samples()), len(l.Time()))
		}
	}
}

func TestChannelBoundsIgnoreNaN(t *testing.T) {
	l := sampleLog(t)
	ch := l.Channels()[0]
	if ch.Min() != 1000 || ch.Max() != 5000 {
		t.Fatalf("Min/Max = %v/%v, want 1000/5000", ch.Min(), ch.Max())
	}
}

func TestLookupIndex(t *testing.T) {
	l := New([]float64{0, 1, 2, 3, 4}, nil, FormatHaltech, Metadata{})
	cases := []struct {
		t    float64
		want int
	}{
		{-1, -1},
		{0, 0},
		{0.5, 0},
		{2, 2},
		{2.9, 2},
		{4, 4},
		{10, 4},
	}
	for _, c := range cases {
		if got := l.LookupIndex(c.t); got != c.want {
			t.Errorf("LookupIndex(%v) = %d, want %d", c.t, got, c.want)
		}
	}
}

func TestLookupIndexEmptyLog(t *testing.T) {
	l := New(nil, nil, FormatUnknown, Metadata{})
	if got := l.LookupIndex(0); got != -1 {
		t.Errorf("LookupIndex on empty log = %d, want -1", got)
	}
	if _, _, err := l.TimeRange(); err != ErrEmptyLog {
		t.Errorf("TimeRange on empty log = %v, want ErrEmptyLog", err)
	}
}

func TestNewPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on channel/time length mismatch")
		}
	}()
	New([]float64{0, 1, 2}, []ChannelSpec{{Samples: []float64{1, 2}}}, FormatUnknown, Metadata{})
}

func TestLogIDsAreUnique(t *testing.T) {
	a := sampleLog(t)
	b := sampleLog(t)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct log ids, got %d == %d", a.ID(), b.ID())
	}
}
