/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package units

import "strings"

// symbolsByKind lists the recognized raw-unit spellings for each kind,
// used to resolve a parser's header-declared unit string to one of the
// Units the user may display it in.
var symbolsByKind = map[QuantityKind]map[string]Unit{
	Temperature: {
		"k": Kelvin, "kelvin": Kelvin,
		"c": Celsius, "celsius": Celsius, "°c": Celsius, "degc": Celsius,
		"f": Fahrenheit, "fahrenheit": Fahrenheit, "°f": Fahrenheit, "degf": Fahrenheit,
	},
	Pressure: {
		"kpa": KPa, "psi": PSI, "bar": Bar,
	},
	Speed: {
		"kmh": KmH, "km/h": KmH, "kph": KmH,
		"mph": Mph,
	},
	Distance: {
		"km": Km,
		"mi": Miles, "miles": Miles,
	},
	FuelEconomy: {
		"l/100km": LPer100Km, "l-per-100km": LPer100Km,
		"mpg": MPG,
	},
	Volume: {
		"l": Liters, "liters": Liters, "litres": Liters,
		"gal": Gallons, "gallons": Gallons,
	},
	FlowRate: {
		"l/min": LPerMin, "lpm": LPerMin,
		"gpm": GPM,
	},
	Acceleration: {
		"mps2": MPS2, "m/s2": MPS2, "m/s²": MPS2,
		"g": G,
	},
}

// PivotUnit returns the neutral unit each kind's conversions pass
// through — the default display unit when a parser's raw unit string
// does not match a recognized spelling.
func PivotUnit(k QuantityKind) Unit {
	switch k {
	case Temperature:
		return Kelvin
	case Pressure:
		return KPa
	case Speed:
		return KmH
	case Distance:
		return Km
	case FuelEconomy:
		return LPer100Km
	case Volume:
		return Liters
	case FlowRate:
		return LPerMin
	case Acceleration:
		return MPS2
	default:
		return Identity
	}
}

// ResolveUnit maps a parser-supplied raw unit string to one of the
// recognized Units for kind, case- and whitespace-insensitively. An
// unrecognized string resolves to kind's pivot unit rather than failing,
// so display always produces something rather than erroring on an
// unfamiliar header string.
func ResolveUnit(k QuantityKind, raw string) Unit {
	table, ok := symbolsByKind[k]
	if !ok {
		return Identity
	}
	if u, ok := table[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return u
	}
	return PivotUnit(k)
}
