/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package config

import (
	"github.com/SomethingNew71/UltraLog/internal/palette"
	"github.com/SomethingNew71/UltraLog/internal/units"
)

// UnitPreferences selects the display unit for each quantity kind a
// renderer may let the user override.
type UnitPreferences struct {
	Temperature  units.Unit
	Pressure     units.Unit
	Speed        units.Unit
	Distance     units.Unit
	FuelEconomy  units.Unit
	Volume       units.Unit
	FlowRate     units.Unit
	Acceleration units.Unit
}

// Preferences is opaque to the core: a renderer populates it from whatever
// settings surface it has (a config file, a menu, environment variables)
// and passes it down; nothing in internal/tab, internal/playback, or
// internal/ingest reads it directly.
type Preferences struct {
	Colorblind           bool
	CursorTracking       bool
	NormalizationEnabled bool
	Units                UnitPreferences
}

// DefaultPreferences returns the preferences a fresh install starts with:
// standard palette, cursor tracking and normalization both on, and every
// unit preference at its pivot (SI) unit.
func DefaultPreferences() Preferences {
	return Preferences{
		Colorblind:           false,
		CursorTracking:       true,
		NormalizationEnabled: true,
		Units: UnitPreferences{
			Temperature:  units.Kelvin,
			Pressure:     units.KPa,
			Speed:        units.KmH,
			Distance:     units.Km,
			FuelEconomy:  units.LPer100Km,
			Volume:       units.Liters,
			FlowRate:     units.PivotUnit(units.FlowRate),
			Acceleration: units.PivotUnit(units.Acceleration),
		},
	}
}

// Palette returns the palette.Name implied by Colorblind.
func (p Preferences) Palette() palette.Name {
	if p.Colorblind {
		return palette.Colorblind
	}
	return palette.Standard
}
