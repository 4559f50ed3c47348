/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package haltech parses Haltech CSV ECU logs.
package haltech

import (
	"bufio"
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/parsers"
)

// Parse converts Haltech CSV bytes into a Log.
//
// Header block layout, in order: a file-type tag line, a channel-name
// row, a unit row, and optionally a min/max row; the header ends at the
// first blank line or the first line that parses purely as numeric
// fields. Because a two-field min/max row and an N-field data row are
// both "purely numeric", this parser distinguishes them by field count:
// a line with exactly 2 numeric fields right after the unit row is taken
// as a global declared min/max (advisory only, never affecting computed
// bounds); a line whose field count matches the channel count is the
// first data row.
func Parse(data []byte) (*logmodel.Log, error) {
	if !utf8.Valid(data) {
		return nil, &parsers.InvalidUTF8{Offset: firstInvalidUTF8Offset(data)}
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	nextLine := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			return scanner.Text(), true
		}
		return "", false
	}

	// File-type tag line (e.g. "%DataLog%"); detection already confirmed
	// this, the parser just consumes it.
	if _, ok := nextLine(); !ok {
		return nil, &parsers.TruncatedFile{Reason: "missing file-type tag line"}
	}

	nameLine, ok := nextLine()
	if !ok {
		return nil, &parsers.TruncatedFile{Reason: "missing channel-name row"}
	}
	names := splitCSVRow(nameLine)

	unitLine, ok := nextLine()
	if !ok {
		return nil, &parsers.TruncatedFile{Reason: "missing unit row"}
	}
	unitList := splitCSVRow(unitLine)

	timeCol := -1
	for i, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "time") {
			timeCol = i
			break
		}
	}
	if timeCol == -1 {
		return nil, &parsers.TruncatedFile{Reason: "missing Time column"}
	}

	var declaredMin, declaredMax *float64

	dataLine, haveFirstDataLine := nextLine()
	if haveFirstDataLine {
		if fields := splitCSVRow(dataLine); looksNumeric(fields) {
			if len(fields) == 2 && len(fields) != len(names) {
				// Optional global min/max row: consume it, it is advisory.
				if mn, err := parseFloat(fields[0]); err == nil {
					declaredMin = &mn
				}
				if mx, err := parseFloat(fields[1]); err == nil {
					declaredMax = &mx
				}
				dataLine, haveFirstDataLine = nextLine()
			}
		}
	}

	rowLineNo := lineNo
	channelCount := len(names)
	samples := make([][]float64, channelCount)
	for i := range samples {
		samples[i] = make([]float64, 0, 1024)
	}
	var timeVec []float64

	processRow := func(line string, atLine int) error {
		fields := splitCSVRow(line)
		if len(fields) != channelCount {
			return &parsers.InconsistentRow{Line: atLine, Expected: channelCount, Got: len(fields)}
		}
		for i, f := range fields {
			v, err := parseFloat(f)
			if err != nil {
				v = math.NaN()
			}
			if i == timeCol {
				timeVec = append(timeVec, v)
				continue
			}
			samples[i] = append(samples[i], v)
		}
		// Backfill the time column's own "sample" slice with nothing: the
		// time column has no Channel of its own, its values feed timeVec.
		return nil
	}

	if haveFirstDataLine {
		if strings.TrimSpace(dataLine) != "" {
			if err := processRow(dataLine, rowLineNo); err != nil {
				return nil, err
			}
		}
		for {
			line, ok := nextLine()
			if !ok {
				break
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := processRow(line, lineNo); err != nil {
				return nil, err
			}
		}
	}

	channels := make([]logmodel.ChannelSpec, 0, channelCount-1)
	for i, raw := range names {
		if i == timeCol {
			continue
		}
		unit := ""
		if i < len(unitList) {
			unit = strings.TrimSpace(unitList[i])
		}
		spec := logmodel.ChannelSpec{
			RawName:     strings.TrimSpace(raw),
			DisplayName: strings.TrimSpace(raw),
			Kind:        parsers.KindFromUnit(unit),
			SourceUnit:  unit,
			Samples:     samples[i],
			DeclaredMin: declaredMin,
			DeclaredMax: declaredMax,
		}
		channels = append(channels, spec)
	}

	return logmodel.New(timeVec, channels, logmodel.FormatHaltech, logmodel.Metadata{}), nil
}

func splitCSVRow(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func looksNumeric(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if _, err := parseFloat(f); err != nil {
			return false
		}
	}
	return true
}

// parseFloat accepts Haltech's plain decimal-point numeric fields.
func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func firstInvalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
