/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package detect classifies an input byte stream into one of the three
// supported ECU log formats without consuming or mutating it — parsers
// always re-read from the start of the same byte slice.
package detect

import (
	"bufio"
	"bytes"
	"errors"
	"strings"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
)

// ErrUnrecognizedFormat is returned when none of the detection rules match.
var ErrUnrecognizedFormat = errors.New("detect: unrecognized format")

// mlgMagic is the 6-byte MegaLogViewer binary magic.
var mlgMagic = []byte("MLVLG\x00")

// haltechMarker is the line that opens a Haltech CSV header block.
const haltechMarker = "%DataLog%"

// MaxSniffBytes bounds how much of the file detection is allowed to look at.
const MaxSniffBytes = 64 * 1024

// Detect classifies data (at most its first MaxSniffBytes) into one of the
// three known formats, evaluating rules in a fixed order (MLG magic,
// Haltech marker, ECUMaster delimiter agreement), or returns
// ErrUnrecognizedFormat.
func Detect(data []byte) (logmodel.Format, error) {
	head := data
	if len(head) > MaxSniffBytes {
		head = head[:MaxSniffBytes]
	}

	if len(head) >= len(mlgMagic) && bytes.Equal(head[:len(mlgMagic)], mlgMagic) {
		return logmodel.FormatMLG, nil
	}

	firstLine, secondLine, ok := firstTwoNonBlankLines(head)
	if !ok {
		return logmodel.FormatUnknown, ErrUnrecognizedFormat
	}

	if strings.HasPrefix(strings.TrimSpace(firstLine), haltechMarker) {
		return logmodel.FormatHaltech, nil
	}

	if delim, ok := ecuMasterDelimiter(firstLine); ok {
		if columnCount(firstLine, delim) == columnCount(secondLine, delim) {
			return logmodel.FormatECUMaster, nil
		}
	}

	return logmodel.FormatUnknown, ErrUnrecognizedFormat
}

// firstTwoNonBlankLines returns the first non-blank line (used for the
// Haltech marker check, which does not require a second line) and, if
// present, the following line (blank or not — ECUMaster's "second line"
// rule does not skip blanks the way finding the first non-blank line
// does).
func firstTwoNonBlankLines(data []byte) (first, second string, ok bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxSniffBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		first = line
		second = ""
		if scanner.Scan() {
			second = scanner.Text()
		}
		return first, second, true
	}
	return "", "", false
}

// ecuMasterDelimiter picks whichever of ';' or tab yields the greater
// column count on the given line.
func ecuMasterDelimiter(line string) (rune, bool) {
	semi := strings.Count(line, ";")
	tab := strings.Count(line, "\t")
	if semi == 0 && tab == 0 {
		return 0, false
	}
	if tab > semi {
		return '\t', true
	}
	return ';', true
}

func columnCount(line string, delim rune) int {
	return strings.Count(line, string(delim)) + 1
}
