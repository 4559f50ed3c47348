/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package units

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestConvertTemperature(t *testing.T) {
	cases := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{0, Celsius, Fahrenheit, 32},
		{100, Celsius, Fahrenheit, 212},
		{0, Celsius, Kelvin, 273.15},
		{32, Fahrenheit, Celsius, 0},
	}
	for _, c := range cases {
		got := Convert(c.v, c.from, c.to)
		if !almostEqual(got, c.want, 1e-9) {
			t.Errorf("Convert(%v, %v, %v) = %v, want %v", c.v, c.from, c.to, got, c.want)
		}
	}
}

func TestConvertPressureAndSpeed(t *testing.T) {
	if got := Convert(1, PSI, KPa); !almostEqual(got, 6.894757, 1e-9) {
		t.Errorf("1 psi -> kPa = %v, want 6.894757", got)
	}
	if got := Convert(1, Mph, KmH); !almostEqual(got, 1.609344, 1e-9) {
		t.Errorf("1 mph -> km/h = %v, want 1.609344", got)
	}
}

func TestConvertFuelEconomyReciprocal(t *testing.T) {
	got := Convert(100, LPer100Km, MPG)
	want := 235.214583 / 100
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("100 L/100km -> mpg = %v, want %v", got, want)
	}

	// The reciprocal relationship is its own inverse: converting back
	// through the pivot recovers the original value within a few ULP.
	back := Convert(got, MPG, LPer100Km)
	ulp := math.Nextafter(100, 200) - 100
	if !almostEqual(back, 100, 4*ulp) {
		t.Errorf("round trip through MPG = %v, want ~100", back)
	}
}

func TestConvertFuelEconomyZeroYieldsInf(t *testing.T) {
	got := Convert(0, LPer100Km, MPG)
	if !math.IsInf(got, 1) {
		t.Errorf("Convert(0, LPer100Km, MPG) = %v, want +Inf", got)
	}
}

func TestConvertMismatchedKindIsNoop(t *testing.T) {
	got := Convert(50, Celsius, KPa)
	if got != 50 {
		t.Errorf("cross-kind convert = %v, want unconverted 50", got)
	}
}

func TestFormatRendersInfAsEmDash(t *testing.T) {
	if got := Format(math.Inf(1), MPG, 1); got != "—" {
		t.Errorf("Format(+Inf) = %q, want em dash", got)
	}
	if got := Format(math.NaN(), MPG, 1); got != "—" {
		t.Errorf("Format(NaN) = %q, want em dash", got)
	}
}

func TestFormatAppendsSymbol(t *testing.T) {
	if got := Format(88.5, KmH, 1); got != "88.5 km/h" {
		t.Errorf("Format(88.5, KmH) = %q, want %q", got, "88.5 km/h")
	}
}

func TestConvertIdentity(t *testing.T) {
	if got := Convert(42, Km, Km); got != 42 {
		t.Errorf("Convert(same unit) = %v, want 42", got)
	}
}
