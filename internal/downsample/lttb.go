/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package downsample reduces a (channel, viewport) pair to a bounded number
// of visually-representative points via Largest-Triangle-Three-Buckets, and
// memoizes results in a process-wide, size-bounded cache.
package downsample

import (
	"math"
	"sort"
)

// Point is one (t, v) sample.
type Point struct {
	T float64
	V float64
}

// Series is an ordered sequence of downsampled points.
type Series []Point

// LTTB reduces src to at most bucketCount representative points using the
// Largest-Triangle-Three-Buckets algorithm. If bucketCount >= len(src), src
// is returned unchanged. NaN values are excluded from bucket averages and
// triangle-area computation, but never emitted on their own: a run of NaNs
// simply produces no candidate points in a bucket, leaving a gap for the
// renderer to interpret as a discontinuity.
func LTTB(src []Point, bucketCount int) Series {
	n := len(src)
	if bucketCount < 2 || n <= bucketCount {
		out := make(Series, n)
		copy(out, src)
		return out
	}

	out := make(Series, 0, bucketCount)
	out = append(out, src[0])

	// n-2 points are partitioned into bucketCount-2 equal-count buckets;
	// bucket boundaries follow the source index range [1, n-1).
	bucketSize := float64(n-2) / float64(bucketCount-2)

	a := src[0]
	for i := 0; i < bucketCount-2; i++ {
		bucketStart := int(math.Floor(float64(i)*bucketSize)) + 1
		bucketEnd := int(math.Floor(float64(i+1)*bucketSize)) + 1
		if bucketEnd > n-1 {
			bucketEnd = n - 1
		}

		nextStart := bucketEnd
		nextEnd := int(math.Floor(float64(i+2)*bucketSize)) + 1
		if nextEnd > n {
			nextEnd = n
		}
		avgT, avgV := bucketAverage(src[nextStart:nextEnd])

		bestIdx := -1
		bestArea := -1.0
		for j := bucketStart; j < bucketEnd; j++ {
			p := src[j]
			if math.IsNaN(p.V) {
				continue
			}
			area := math.Abs((a.T-avgT)*(p.V-a.V)-(a.T-p.T)*(avgV-a.V)) / 2
			if area > bestArea {
				bestArea = area
				bestIdx = j
			}
		}
		if bestIdx == -1 {
			// No candidate was chosen: either every candidate in this bucket
			// was NaN, or the next bucket is all NaN so its average (and
			// every area) is NaN. Emit nothing, leave a gap, and keep A
			// unchanged for the next bucket's comparisons.
			continue
		}
		a = src[bestIdx]
		out = append(out, a)
	}

	out = append(out, src[n-1])
	return out
}

// bucketAverage computes the mean (t, v) of a bucket, skipping NaN values.
// An all-NaN or empty bucket returns NaN for both, which safely makes every
// candidate triangle area NaN and thus never selected by area > bestArea.
func bucketAverage(bucket []Point) (t, v float64) {
	var sumT, sumV float64
	var count int
	for _, p := range bucket {
		if math.IsNaN(p.V) {
			continue
		}
		sumT += p.T
		sumV += p.V
		count++
	}
	if count == 0 {
		return math.NaN(), math.NaN()
	}
	return sumT / float64(count), sumV / float64(count)
}

// SliceViewport restricts a (t, v) series to the closed interval
// [min, max] via binary search over the (assumed sorted) time values,
// returning the sub-slice without copying.
func SliceViewport(times, values []float64, min, max float64) []Point {
	lo := sort.Search(len(times), func(i int) bool { return times[i] >= min })
	hi := sort.Search(len(times), func(i int) bool { return times[i] > max })
	if lo >= hi {
		return nil
	}
	out := make([]Point, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = Point{T: times[i], V: values[i]}
	}
	return out
}
