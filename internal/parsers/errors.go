/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package parsers holds the error types shared by the Haltech, ECUMaster
// and MLG parsers. Each concrete parser lives in its own subpackage.
package parsers

import "fmt"

// TruncatedFile indicates the input ended before a parser could finish
// reading a structurally-required section.
type TruncatedFile struct {
	Reason string
}

func (e *TruncatedFile) Error() string { return fmt.Sprintf("truncated file: %s", e.Reason) }

// InconsistentRow indicates a data row did not have the expected number of
// fields.
type InconsistentRow struct {
	Line     int
	Expected int
	Got      int
}

func (e *InconsistentRow) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Expected, e.Got)
}

// UnsupportedVersion indicates a binary format version this parser does
// not understand.
type UnsupportedVersion struct {
	Got int
}

func (e *UnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported format version: %d", e.Got)
}

// InvalidUTF8 indicates a byte sequence that could not be decoded as UTF-8
// at the given byte offset.
type InvalidUTF8 struct {
	Offset int
}

func (e *InvalidUTF8) Error() string {
	return fmt.Sprintf("invalid UTF-8 at offset %d", e.Offset)
}
