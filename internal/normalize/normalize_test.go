/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package normalize

import "testing"

func TestBuiltinAliases(t *testing.T) {
	cases := map[string]string{
		"Act_AFR":     "AFR",
		"afr1":        "AFR",
		"Aft":         "AFR",
		"MAP":         "Manifold Pressure",
		"boost_press": "Manifold Pressure",
		"Eng_RPM":     "RPM",
	}
	table := DefaultTable()
	for raw, want := range cases {
		if got := Normalize(raw, table); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestUnmatchedNameIsIdentity(t *testing.T) {
	table := DefaultTable()
	if got := Normalize("Coolant_Temp", table); got != "Coolant_Temp" {
		t.Errorf("Normalize(unmatched) = %q, want identity", got)
	}
}

func TestCustomRulesTakePrecedence(t *testing.T) {
	base := DefaultTable()
	custom := base.WithCustomRules([]Rule{{Source: "MAP", Target: "Boost Pressure"}})

	if got := Normalize("MAP", custom); got != "Boost Pressure" {
		t.Errorf("custom rule did not win: got %q", got)
	}
	if got := Normalize("MAP", base); got != "Manifold Pressure" {
		t.Errorf("base table mutated by WithCustomRules: got %q", got)
	}
}

func TestCaseInsensitiveExactMatch(t *testing.T) {
	table := DefaultTable()
	if got := Normalize("aFr1", table); got != "AFR" {
		t.Errorf("Normalize case-insensitive = %q, want AFR", got)
	}
	// Substring containment must not match: only exact equality counts.
	if got := Normalize("AFR1_Bank2", table); got != "AFR1_Bank2" {
		t.Errorf("Normalize should not partially match, got %q", got)
	}
}
