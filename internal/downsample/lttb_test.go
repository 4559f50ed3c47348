/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package downsample

import (
	"math"
	"testing"
)

func sineWithSpike(n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) * 0.01
		v := math.Sin(t)
		if i == n/2 {
			v = 50 // an obvious spike a naive stride-based decimation could skip
		}
		pts[i] = Point{T: t, V: v}
	}
	return pts
}

func TestLTTBReducesToAtMostBucketCount(t *testing.T) {
	src := sineWithSpike(10000)
	out := LTTB(src, 200)
	if len(out) > 200 {
		t.Fatalf("len(out) = %d, want <= 200", len(out))
	}
	if len(out) < 2 {
		t.Fatalf("len(out) = %d, want >= 2", len(out))
	}
}

func TestLTTBPreservesFirstAndLastPoint(t *testing.T) {
	src := sineWithSpike(10000)
	out := LTTB(src, 200)
	if out[0] != src[0] {
		t.Errorf("first point = %v, want %v", out[0], src[0])
	}
	if out[len(out)-1] != src[len(src)-1] {
		t.Errorf("last point = %v, want %v", out[len(out)-1], src[len(src)-1])
	}
}

func TestLTTBRetainsSpike(t *testing.T) {
	src := sineWithSpike(10000)
	out := LTTB(src, 200)
	found := false
	for _, p := range out {
		if p.V == 50 {
			found = true
			break
		}
	}
	if !found {
		t.Error("spike value 50 was not retained in downsampled output")
	}
}

func TestLTTBBucketCountAtLeastSourceLengthReturnsSource(t *testing.T) {
	src := []Point{{0, 1}, {1, 2}, {2, 3}}
	out := LTTB(src, 10)
	if len(out) != len(src) {
		t.Fatalf("len(out) = %d, want %d (source returned as-is)", len(out), len(src))
	}
	for i := range src {
		if out[i] != src[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], src[i])
		}
	}
}

func TestLTTBSkipsNaNCandidates(t *testing.T) {
	src := []Point{
		{0, 0}, {1, math.NaN()}, {2, math.NaN()}, {3, 1}, {4, 2}, {5, 3}, {6, 4},
	}
	out := LTTB(src, 4)
	for _, p := range out {
		if math.IsNaN(p.V) {
			t.Errorf("LTTB emitted a NaN point on its own: %v", p)
		}
	}
}

func TestSliceViewportEmptyOutsideRange(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	values := []float64{10, 20, 30, 40, 50}
	if got := SliceViewport(times, values, 10, 20); got != nil {
		t.Errorf("SliceViewport out of range = %v, want nil", got)
	}
}

func TestSliceViewportInclusiveBounds(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	values := []float64{10, 20, 30, 40, 50}
	got := SliceViewport(times, values, 1, 3)
	want := []Point{{1, 20}, {2, 30}, {3, 40}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
