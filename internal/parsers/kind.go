/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package parsers

import (
	"strings"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
)

// unitKind maps a lower-cased unit string to the quantity kind it implies.
// Shared by the Haltech and ECUMaster parsers: a channel whose unit string
// matches this table inherits that kind, otherwise its kind is unknown.
var unitKind = map[string]logmodel.Kind{
	"k": logmodel.KindTemperature, "kelvin": logmodel.KindTemperature,
	"c": logmodel.KindTemperature, "°c": logmodel.KindTemperature, "celsius": logmodel.KindTemperature,
	"f": logmodel.KindTemperature, "°f": logmodel.KindTemperature, "fahrenheit": logmodel.KindTemperature,

	"kpa": logmodel.KindPressure, "psi": logmodel.KindPressure, "bar": logmodel.KindPressure,

	"kmh": logmodel.KindSpeed, "km/h": logmodel.KindSpeed, "mph": logmodel.KindSpeed,

	"km": logmodel.KindDistance, "mi": logmodel.KindDistance, "miles": logmodel.KindDistance,

	"l/100km": logmodel.KindFuelEconomy, "mpg": logmodel.KindFuelEconomy,

	"l": logmodel.KindVolume, "gal": logmodel.KindVolume, "gallons": logmodel.KindVolume,

	"l/min": logmodel.KindFlowRate, "gpm": logmodel.KindFlowRate,

	"mps2": logmodel.KindAcceleration, "m/s2": logmodel.KindAcceleration, "m/s²": logmodel.KindAcceleration,
	"g": logmodel.KindAcceleration,

	"rpm": logmodel.KindRPM,

	"deg": logmodel.KindAngle, "degrees": logmodel.KindAngle, "°": logmodel.KindAngle,

	"ratio": logmodel.KindRatio, "lambda": logmodel.KindRatio, "afr": logmodel.KindRatio,

	"v": logmodel.KindVoltage, "volts": logmodel.KindVoltage,

	"s": logmodel.KindDuration, "sec": logmodel.KindDuration, "ms": logmodel.KindDuration,

	"%": logmodel.KindPercent,
}

// KindFromUnit returns the quantity kind implied by a unit string, or
// KindUnknown if the unit does not match the known table.
func KindFromUnit(unit string) logmodel.Kind {
	key := strings.ToLower(strings.TrimSpace(unit))
	if k, ok := unitKind[key]; ok {
		return k
	}
	return logmodel.KindUnknown
}
