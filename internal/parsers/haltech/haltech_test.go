/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package haltech

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
)

func TestHaltechBasicThousandRowLog(t *testing.T) {
	var b strings.Builder
	b.WriteString("%DataLog%\n")
	b.WriteString("Time,RPM,AFR\n")
	b.WriteString("s,rpm,ratio\n")
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&b, "%d,%d,%.1f\n", i, 1000+i*10, 14.7)
	}

	log, err := Parse([]byte(b.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(log.Channels()) != 2 {
		t.Fatalf("got %d channels, want 2", len(log.Channels()))
	}
	if log.Time()[0] != 0 || log.Time()[999] != 999 {
		t.Fatalf("time[0]=%v time[999]=%v, want 0/999", log.Time()[0], log.Time()[999])
	}

	var rpm, afr *logmodel.Channel
	for _, ch := range log.Channels() {
		switch ch.RawName() {
		case "RPM":
			rpm = ch
		case "AFR":
			afr = ch
		}
	}
	if rpm == nil || afr == nil {
		t.Fatal("missing RPM or AFR channel")
	}
	if rpm.Min() != 1000 || rpm.Max() != 10990 {
		t.Errorf("RPM min/max = %v/%v, want 1000/10990", rpm.Min(), rpm.Max())
	}
	if afr.Min() != 14.7 || afr.Max() != 14.7 {
		t.Errorf("AFR min/max = %v/%v, want 14.7/14.7", afr.Min(), afr.Max())
	}
	if rpm.Kind() != logmodel.KindRPM {
		t.Errorf("RPM kind = %v, want KindRPM", rpm.Kind())
	}
}

func TestHaltechMissingTimeColumn(t *testing.T) {
	data := "%DataLog%\nRPM,AFR\nrpm,ratio\n1000,14.7\n"
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected error for missing Time column")
	}
}

func TestHaltechInconsistentRow(t *testing.T) {
	data := "%DataLog%\nTime,RPM\ns,rpm\n0,1000\n1,2000,extra\n"
	_, err := Parse([]byte(data))
	if err == nil {
		t.Fatal("expected InconsistentRow error")
	}
}

func TestHaltechDeclaredMinMaxIsAdvisoryOnly(t *testing.T) {
	data := "%DataLog%\nTime,RPM,AFR\ns,rpm,ratio\n0,9999\n0,1000,14.7\n1,2000,14.7\n"
	log, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rpm := log.Channels()[0]
	if rpm.Min() != 1000 || rpm.Max() != 2000 {
		t.Errorf("computed min/max = %v/%v, want 1000/2000 (declared row must not affect Min/Max)", rpm.Min(), rpm.Max())
	}
	if rpm.DeclaredMin() == nil || *rpm.DeclaredMin() != 0 || rpm.DeclaredMax() == nil || *rpm.DeclaredMax() != 9999 {
		t.Errorf("DeclaredMin/Max = %v/%v, want 0/9999", rpm.DeclaredMin(), rpm.DeclaredMax())
	}
}
