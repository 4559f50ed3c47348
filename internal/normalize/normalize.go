/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package normalize canonicalizes parsed channel names into stable display
// names via an ordered rule table.
package normalize

import "strings"

// Rule maps one source pattern to a target display name. Matching is a
// case-insensitive exact match against the raw channel name.
type Rule struct {
	Source string
	Target string
}

// Table is an ordered, immutable snapshot of rules. The zero Table applies
// only the built-in defaults. Tables are read-mostly: callers that need to
// add rules build a new Table rather than mutating an existing one, so
// concurrent readers always see a consistent snapshot.
type Table struct {
	rules []Rule
}

// DefaultTable returns the built-in rule table: AFR, manifold pressure, and
// RPM aliases.
func DefaultTable() Table {
	return Table{rules: append([]Rule(nil), defaultRules...)}
}

// WithCustomRules returns a new Table with custom prepended ahead of t's
// existing rules, so custom rules take precedence over built-ins. t is left
// unmodified.
func (t Table) WithCustomRules(custom []Rule) Table {
	merged := make([]Rule, 0, len(custom)+len(t.rules))
	merged = append(merged, custom...)
	merged = append(merged, t.rules...)
	return Table{rules: merged}
}

// Normalize is a total, pure function from raw channel name to display
// name: the first rule whose Source case-insensitively exactly matches
// rawName wins; if none match, rawName is returned unchanged.
func Normalize(rawName string, rules Table) string {
	for _, r := range rules.rules {
		if strings.EqualFold(r.Source, rawName) {
			return r.Target
		}
	}
	return rawName
}

var defaultRules = []Rule{
	{Source: "Act_AFR", Target: "AFR"},
	{Source: "AFR1", Target: "AFR"},
	{Source: "Aft", Target: "AFR"},
	{Source: "MAP", Target: "Manifold Pressure"},
	{Source: "Boost_Press", Target: "Manifold Pressure"},
	{Source: "RPM1", Target: "RPM"},
	{Source: "Eng_RPM", Target: "RPM"},
	{Source: "EngineSpeed", Target: "RPM"},
}
