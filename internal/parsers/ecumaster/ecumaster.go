/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package ecumaster parses ECUMaster semicolon/tab-delimited CSV ECU logs.
package ecumaster

import (
	"bufio"
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/parsers"
)

var unitSuffix = regexp.MustCompile(`^(.*?)\s*\(([^()]*)\)\s*$`)

// Parse converts ECUMaster CSV bytes into a Log. The delimiter is
// whichever of ';' or tab yields the greater column count on the header
// line; channel names are dot-separated hierarchical paths, and units, if
// present, appear in parentheses at the end of the header cell.
func Parse(data []byte) (*logmodel.Log, error) {
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

	headerLine, ok := nextLine()
	if !ok {
		return nil, &parsers.TruncatedFile{Reason: "missing header row"}
	}

	delim := pickDelimiter(headerLine)
	headers := splitRow(headerLine, delim)
	channelCount := len(headers)

	type parsedHeader struct {
		path string
		unit string
	}
	parsedHeaders := make([]parsedHeader, channelCount)
	for i, h := range headers {
		path, unit := splitUnit(h)
		parsedHeaders[i] = parsedHeader{path: path, unit: unit}
	}

	timeCol := -1
	for i, h := range parsedHeaders {
		if strings.EqualFold(leaf(h.path), "time") {
			timeCol = i
			break
		}
	}

	samples := make([][]float64, channelCount)
	for i := range samples {
		samples[i] = make([]float64, 0, 1024)
	}
	var timeVec []float64
	var syntheticTime float64

	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitRow(line, delim)
		if len(fields) != channelCount {
			return nil, &parsers.InconsistentRow{Line: lineNo, Expected: channelCount, Got: len(fields)}
		}
		for i, f := range fields {
			v, err := parseDecimal(f)
			if err != nil {
				v = math.NaN()
			}
			if i == timeCol {
				timeVec = append(timeVec, v)
				continue
			}
			samples[i] = append(samples[i], v)
		}
		if timeCol == -1 {
			// No explicit time column: synthesize one row per sample at
			// unit spacing, so every Log still has a time base.
			timeVec = append(timeVec, syntheticTime)
			syntheticTime++
		}
	}

	channels := make([]logmodel.ChannelSpec, 0, channelCount)
	for i, h := range parsedHeaders {
		if i == timeCol {
			continue
		}
		channels = append(channels, logmodel.ChannelSpec{
			RawName:     h.path,
			DisplayName: leaf(h.path),
			Kind:        parsers.KindFromUnit(h.unit),
			SourceUnit:  h.unit,
			Samples:     samples[i],
		})
	}

	return logmodel.New(timeVec, channels, logmodel.FormatECUMaster, logmodel.Metadata{}), nil
}

// pickDelimiter chooses whichever of ';' or tab yields the greater column
// count on line.
func pickDelimiter(line string) byte {
	if strings.Count(line, "\t") > strings.Count(line, ";") {
		return '\t'
	}
	return ';'
}

func splitRow(line string, delim byte) []string {
	fields := strings.Split(line, string(delim))
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// splitUnit extracts the unit from a parenthesized suffix, e.g.
// "Engine.Rpm (rpm)" -> ("Engine.Rpm", "rpm"). Absence of a suffix yields
// an empty unit.
func splitUnit(header string) (path, unit string) {
	header = strings.TrimSpace(header)
	if m := unitSuffix.FindStringSubmatch(header); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return header, ""
}

// leaf returns the final dot-separated segment of a hierarchical path.
func leaf(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// parseDecimal accepts ECUMaster's decimal-comma numbers in addition to
// plain decimal-point numbers, translating the comma to a point.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}
