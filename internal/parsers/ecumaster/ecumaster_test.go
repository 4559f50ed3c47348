/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package ecumaster

import (
	"testing"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
)

func TestECUMasterSemicolonDelimiter(t *testing.T) {
	data := "Engine.Rpm (rpm);Coolant.Temp (°C)\n1000;85\n2000;90\n"
	log, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(log.Channels()) != 2 {
		t.Fatalf("got %d channels, want 2", len(log.Channels()))
	}

	rpm, temp := log.Channels()[0], log.Channels()[1]
	if rpm.RawName() != "Engine.Rpm" || temp.RawName() != "Coolant.Temp" {
		t.Fatalf("names = %q, %q, want Engine.Rpm, Coolant.Temp", rpm.RawName(), temp.RawName())
	}
	if rpm.SourceUnit() != "rpm" || temp.SourceUnit() != "°C" {
		t.Fatalf("units = %q, %q, want rpm, °C", rpm.SourceUnit(), temp.SourceUnit())
	}
	if rpm.Kind() != logmodel.KindRPM || temp.Kind() != logmodel.KindTemperature {
		t.Fatalf("kinds = %v, %v", rpm.Kind(), temp.Kind())
	}
	if rpm.Samples()[0] != 1000 || rpm.Samples()[1] != 2000 {
		t.Errorf("rpm samples = %v, want [1000 2000]", rpm.Samples())
	}
	if temp.Samples()[0] != 85 || temp.Samples()[1] != 90 {
		t.Errorf("temp samples = %v, want [85 90]", temp.Samples())
	}
}

func TestECUMasterTabDelimiterWins(t *testing.T) {
	data := "A (x)\tB (y)\n1\t2\n"
	log, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(log.Channels()) != 2 {
		t.Fatalf("got %d channels, want 2", len(log.Channels()))
	}
}

func TestECUMasterLeafDisplayName(t *testing.T) {
	data := "Engine.Sensors.Rpm (rpm)\n1000\n"
	log, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ch := log.Channels()[0]
	if ch.RawName() != "Engine.Sensors.Rpm" {
		t.Errorf("RawName = %q, want Engine.Sensors.Rpm", ch.RawName())
	}
	if ch.DisplayName() != "Rpm" {
		t.Errorf("DisplayName (pre-normalization seed) = %q, want Rpm", ch.DisplayName())
	}
}

func TestECUMasterDecimalComma(t *testing.T) {
	data := "Engine.Rpm (rpm)\n1000,5\n"
	log, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := log.Channels()[0].Samples()[0]; got != 1000.5 {
		t.Errorf("decimal-comma sample = %v, want 1000.5", got)
	}
}

func TestECUMasterInconsistentRow(t *testing.T) {
	data := "A (x);B (y)\n1;2\n1;2;3\n"
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected InconsistentRow error")
	}
}
