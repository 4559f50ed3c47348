/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package downsample

import (
	"container/list"
	"math"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies one memoized downsample request. It stores the bit
// patterns of the viewport bounds rather than the floats themselves, so the
// key captures identity, not numeric equivalence: two bounds give the same
// key only when their bits are identical (0.0 and -0.0 compare equal by ==
// but are distinct keys).
type Key struct {
	LogID       int
	ChannelID   int
	ViewportMin uint64
	ViewportMax uint64
	BucketCount int
}

// NewKey builds a Key from a viewport's float bounds. NaN bounds are
// rejected by the caller before this is invoked.
func NewKey(logID, channelID int, viewportMin, viewportMax float64, bucketCount int) Key {
	return Key{
		LogID:       logID,
		ChannelID:   channelID,
		ViewportMin: math.Float64bits(viewportMin),
		ViewportMax: math.Float64bits(viewportMax),
		BucketCount: bucketCount,
	}
}

// DefaultSampleBudget is the default total point budget across all cache
// entries, per the target rendering workload of a handful of open logs
// with a handful of selected channels each.
const DefaultSampleBudget = 5_000_000

type entry struct {
	key    Key
	series Series
}

// Cache is a process-wide, size-bounded mapping from Key to Series, with
// LRU eviction and at-most-one-concurrent-computation-per-key semantics.
// Reads may proceed concurrently; a miss triggers exactly one call to the
// compute function even under concurrent duplicate requests, and waiters
// that stop waiting (context cancellation upstream) do not cancel the
// underlying computation while any other waiter remains — this falls out
// of singleflight.Group's own semantics, which never cancels an in-flight
// call on partial waiter departure.
type Cache struct {
	mu     sync.Mutex
	budget int
	used   int
	lru    *list.List // most-recently-used at the front
	index  map[Key]*list.Element
	group  singleflight.Group
}

// NewCache creates a Cache with the given total sample-count budget. A
// budget <= 0 uses DefaultSampleBudget.
func NewCache(budget int) *Cache {
	if budget <= 0 {
		budget = DefaultSampleBudget
	}
	return &Cache{
		budget: budget,
		lru:    list.New(),
		index:  make(map[Key]*list.Element),
	}
}

// Get returns the cached Series for key, computing it via compute on a
// miss. Concurrent Get calls for the same key share one call to compute.
func (c *Cache) Get(key Key, compute func() Series) Series {
	if s, ok := c.lookup(key); ok {
		return s
	}

	// singleflight.Group keys are strings; Key is a small fixed-shape
	// struct so its Go value (via %v-independent fmt) is a stable,
	// collision-free key across the process.
	shared, _, _ := c.group.Do(keyString(key), func() (interface{}, error) {
		if s, ok := c.lookup(key); ok {
			return s, nil
		}
		s := compute()
		c.insert(key, s)
		return s, nil
	})
	return shared.(Series)
}

func (c *Cache) lookup(key Key) (Series, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(el)
	return el.Value.(*entry).series, true
}

func (c *Cache) insert(key Key, series Series) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.index[key]; ok {
		c.used -= len(el.Value.(*entry).series)
		c.lru.Remove(el)
		delete(c.index, key)
	}
	el := c.lru.PushFront(&entry{key: key, series: series})
	c.index[key] = el
	c.used += len(series)

	for c.used > c.budget && c.lru.Len() > 0 {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		e := oldest.Value.(*entry)
		delete(c.index, e.key)
		c.used -= len(e.series)
	}
}

func keyString(k Key) string {
	buf := make([]byte, 0, 40)
	buf = appendUint(buf, uint64(k.LogID))
	buf = append(buf, ':')
	buf = appendUint(buf, uint64(k.ChannelID))
	buf = append(buf, ':')
	buf = appendUint(buf, k.ViewportMin)
	buf = append(buf, ':')
	buf = appendUint(buf, k.ViewportMax)
	buf = append(buf, ':')
	buf = appendUint(buf, uint64(k.BucketCount))
	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(buf, tmp[i:]...)
}
