/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package units

import "testing"

func TestResolveUnitRecognizedSpellings(t *testing.T) {
	cases := []struct {
		kind QuantityKind
		raw  string
		want Unit
	}{
		{Temperature, "C", Celsius},
		{Temperature, " degF ", Fahrenheit},
		{Pressure, "kPa", KPa},
		{Speed, "MPH", Mph},
		{FuelEconomy, "mpg", MPG},
	}
	for _, c := range cases {
		if got := ResolveUnit(c.kind, c.raw); got != c.want {
			t.Errorf("ResolveUnit(%v, %q) = %v, want %v", c.kind, c.raw, got, c.want)
		}
	}
}

func TestResolveUnitUnrecognizedFallsBackToPivot(t *testing.T) {
	if got := ResolveUnit(Pressure, "furlongs"); got != PivotUnit(Pressure) {
		t.Errorf("ResolveUnit unrecognized = %v, want pivot %v", got, PivotUnit(Pressure))
	}
}

func TestResolveUnitUnknownKindReturnsIdentity(t *testing.T) {
	if got := ResolveUnit(Unknown, "whatever"); got != Identity {
		t.Errorf("ResolveUnit(Unknown, ...) = %v, want Identity", got)
	}
}

func TestPivotUnitEveryRecognizedKind(t *testing.T) {
	kinds := []QuantityKind{Temperature, Pressure, Speed, Distance, FuelEconomy, Volume, FlowRate, Acceleration}
	for _, k := range kinds {
		if PivotUnit(k) == Identity {
			t.Errorf("PivotUnit(%v) = Identity, want a concrete pivot", k)
		}
	}
}
