/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package logmodel

import "math"

// Kind is a channel's quantity kind, mirroring units.QuantityKind without
// importing the units package: logmodel is a leaf package, units is
// display-only and consumed by higher layers, so a Channel only tags what
// it measures and knows nothing of unit conversion.
type Kind int

const (
	KindUnknown Kind = iota
	KindTemperature
	KindPressure
	KindSpeed
	KindDistance
	KindFuelEconomy
	KindVolume
	KindFlowRate
	KindAcceleration
	KindRPM
	KindAngle
	KindRatio
	KindVoltage
	KindDuration
	KindPercent
	KindDimensionless
)

// Channel is one measured signal within a Log.
type Channel struct {
	id          int
	rawName     string
	displayName string
	kind        Kind
	sourceUnit  string
	samples     []float64
	min, max    float64
	declaredMin *float64
	declaredMax *float64
}

// ID returns the channel's Log-unique identifier.
func (c *Channel) ID() int { return c.id }

// RawName returns the name as parsed from the source file.
func (c *Channel) RawName() string { return c.rawName }

// DisplayName returns the post-normalization display name.
func (c *Channel) DisplayName() string { return c.displayName }

// setDisplayName overwrites the display name, used by Log.Renormalize once
// after ingest, before the owning Tab ever observes the channel.
func (c *Channel) setDisplayName(s string) { c.displayName = s }

// Kind returns the channel's quantity kind.
func (c *Channel) Kind() Kind { return c.kind }

// SourceUnit returns the unit the raw samples are expressed in.
func (c *Channel) SourceUnit() string { return c.sourceUnit }

// Samples returns the raw sample vector, in the source unit. Its length
// always equals the owning Log's time vector length.
func (c *Channel) Samples() []float64 { return c.samples }

// Min returns the minimum of the finite samples, computed at construction
// time, never from a parser's declared header value.
func (c *Channel) Min() float64 { return c.min }

// Max returns the maximum of the finite samples.
func (c *Channel) Max() float64 { return c.max }

// DeclaredMin/DeclaredMax return a parser's advisory header-declared
// bounds, if any were present, purely for diagnostic display. They never
// participate in Min()/Max().
func (c *Channel) DeclaredMin() *float64 { return c.declaredMin }
func (c *Channel) DeclaredMax() *float64 { return c.declaredMax }

// computeBounds computes min/max from the finite subset of samples.
// declaredMin/declaredMax (if the parser supplied any) are left untouched:
// they are advisory metadata only and never feed Min()/Max().
func (c *Channel) computeBounds() {
	lo, hi := math.Inf(1), math.Inf(-1)
	seen := false
	for _, v := range c.samples {
		if math.IsNaN(v) {
			continue
		}
		seen = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !seen {
		lo, hi = 0, 0
	}
	c.min, c.max = lo, hi
}
