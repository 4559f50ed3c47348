/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package units converts and formats ECU log sample values for display.
//
// Conversion is display-time only: sample vectors stored in a Channel stay
// in the parser's source unit forever, and re-selecting a target unit never
// re-parses or mutates stored data.
package units

import (
	"math"
	"strconv"
)

// QuantityKind classifies what a channel measures.
type QuantityKind int

const (
	Unknown QuantityKind = iota
	Temperature
	Pressure
	Speed
	Distance
	FuelEconomy
	Volume
	FlowRate
	Acceleration
	RPM
	Angle
	Ratio
	Voltage
	Duration
	Percent
	Dimensionless
)

// Unit identifies one concrete unit option within a quantity kind.
type Unit int

const (
	// Temperature
	Kelvin Unit = iota
	Celsius
	Fahrenheit
	// Pressure
	KPa
	PSI
	Bar
	// Speed
	KmH
	Mph
	// Distance
	Km
	Miles
	// Fuel economy
	LPer100Km
	MPG
	// Volume
	Liters
	Gallons
	// Flow rate
	LPerMin
	GPM
	// Acceleration
	MPS2
	G
	// Fallback: value passed through unchanged.
	Identity
)

// unitKind maps every Unit to the QuantityKind it belongs to.
var unitKind = map[Unit]QuantityKind{
	Kelvin: Temperature, Celsius: Temperature, Fahrenheit: Temperature,
	KPa: Pressure, PSI: Pressure, Bar: Pressure,
	KmH: Speed, Mph: Speed,
	Km: Distance, Miles: Distance,
	LPer100Km: FuelEconomy, MPG: FuelEconomy,
	Liters: Volume, Gallons: Volume,
	LPerMin: FlowRate, GPM: FlowRate,
	MPS2: Acceleration, G: Acceleration,
	Identity: Dimensionless,
}

// KindOf returns the quantity kind a unit belongs to.
func KindOf(u Unit) QuantityKind {
	if k, ok := unitKind[u]; ok {
		return k
	}
	return Unknown
}

// Symbol returns the conventional short label for a unit.
func Symbol(u Unit) string {
	switch u {
	case Kelvin:
		return "K"
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case KPa:
		return "kPa"
	case PSI:
		return "psi"
	case Bar:
		return "bar"
	case KmH:
		return "km/h"
	case Mph:
		return "mph"
	case Km:
		return "km"
	case Miles:
		return "mi"
	case LPer100Km:
		return "L/100km"
	case MPG:
		return "mpg"
	case Liters:
		return "L"
	case Gallons:
		return "gal"
	case LPerMin:
		return "L/min"
	case GPM:
		return "gpm"
	case MPS2:
		return "m/s²"
	case G:
		return "g"
	default:
		return ""
	}
}

// toKelvin/fromKelvin etc. convert between a unit and its kind's neutral
// (pivot) unit. The pivot for each kind is the first unit declared above:
// Kelvin, kPa, km/h, km, L/100km, liters, L/min, m/s².
func toPivot(u Unit, v float64) float64 {
	switch u {
	case Kelvin, KPa, KmH, Km, LPer100Km, Liters, LPerMin, MPS2:
		return v
	case Celsius:
		return v + 273.15
	case Fahrenheit:
		return (v-32)*5/9 + 273.15
	case PSI:
		return v * 6.894757
	case Bar:
		return v * 100
	case Mph:
		return v * 1.609344
	case Miles:
		return v * 1.609344
	case MPG:
		return reciprocal(v)
	case Gallons:
		return v * 3.785411784
	case GPM:
		return v * 3.785411784
	case G:
		return v * 9.80665
	default:
		return v
	}
}

func fromPivot(u Unit, v float64) float64 {
	switch u {
	case Kelvin, KPa, KmH, Km, LPer100Km, Liters, LPerMin, MPS2:
		return v
	case Celsius:
		return v - 273.15
	case Fahrenheit:
		return (v-273.15)*9/5 + 32
	case PSI:
		return v / 6.894757
	case Bar:
		return v / 100
	case Mph:
		return v / 1.609344
	case Miles:
		return v / 1.609344
	case MPG:
		return reciprocal(v)
	case Gallons:
		return v / 3.785411784
	case GPM:
		return v / 3.785411784
	case G:
		return v / 9.80665
	default:
		return v
	}
}

// reciprocal implements the L/100km <-> MPG relationship: mpg = 235.214583 / (L/100km).
// A zero operand yields +Inf; the same formula is its own inverse.
func reciprocal(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}
	return 235.214583 / x
}

// Convert converts value from one unit to another within the same quantity
// kind. Converting across kinds is a programmer error and returns the
// value unconverted.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if KindOf(from) != KindOf(to) {
		return value
	}
	return fromPivot(to, toPivot(from, value))
}

// Format renders value in the given unit with fixed precision, rendering
// non-finite results (as produced by reciprocal fuel-economy conversion
// with a zero operand) as an em dash.
func Format(value float64, u Unit, precision int) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "—"
	}
	s := strconv.FormatFloat(value, 'f', precision, 64)
	if sym := Symbol(u); sym != "" {
		return s + " " + sym
	}
	return s
}
