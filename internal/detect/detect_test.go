/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package detect

import (
	"testing"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
)

func TestDetectMLG(t *testing.T) {
	data := append([]byte("MLVLG\x00"), make([]byte, 20)...)
	f, err := Detect(data)
	if err != nil || f != logmodel.FormatMLG {
		t.Fatalf("Detect(mlg) = %v, %v", f, err)
	}
}

func TestDetectHaltech(t *testing.T) {
	data := []byte("%DataLog%\nDataLogVersion : 1.1\nTime,RPM\n0,1000\n")
	f, err := Detect(data)
	if err != nil || f != logmodel.FormatHaltech {
		t.Fatalf("Detect(haltech) = %v, %v", f, err)
	}
}

func TestDetectECUMasterSemicolon(t *testing.T) {
	data := []byte("Engine.Rpm (rpm);Coolant.Temp (°C)\n1000;85\n2000;90\n")
	f, err := Detect(data)
	if err != nil || f != logmodel.FormatECUMaster {
		t.Fatalf("Detect(ecumaster;) = %v, %v", f, err)
	}
}

func TestDetectECUMasterTab(t *testing.T) {
	data := []byte("Engine.Rpm (rpm)\tCoolant.Temp (°C)\n1000\t85\n")
	f, err := Detect(data)
	if err != nil || f != logmodel.FormatECUMaster {
		t.Fatalf("Detect(ecumaster tab) = %v, %v", f, err)
	}
}

func TestDetectRejectsMismatchedColumnCount(t *testing.T) {
	data := []byte("a;b;c\nonly-one-field\n")
	_, err := Detect(data)
	if err != ErrUnrecognizedFormat {
		t.Fatalf("Detect(mismatched columns) = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestDetectUnrecognized(t *testing.T) {
	_, err := Detect([]byte("this is not a log file\nnope\n"))
	if err != ErrUnrecognizedFormat {
		t.Fatalf("Detect(garbage) = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestDetectDoesNotConsumeInput(t *testing.T) {
	data := []byte("%DataLog%\nDataLogVersion : 1.1\nTime,RPM\n0,1000\n")
	before := string(data)
	if _, err := Detect(data); err != nil {
		t.Fatal(err)
	}
	if string(data) != before {
		t.Fatal("Detect mutated its input")
	}
}
