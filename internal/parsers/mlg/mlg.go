/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package mlg parses MegaLogViewer binary (.mlg) ECU logs.
package mlg

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/parsers"
)

var magic = []byte("MLVLG\x00")

const (
	headerSize          = 16
	fieldDescriptorSize = 55
	// versionTwoPrefixSize is the 8-byte epoch + 4-byte per-record
	// timestamp prepended to each record's payload in format version 2.
	versionTwoPrefixSize = 12
)

type fieldType byte

const (
	typeU08 fieldType = 0
	typeS08 fieldType = 1
	typeU16 fieldType = 2
	typeS16 fieldType = 3
	typeU32 fieldType = 4
	typeS32 fieldType = 5
	typeF32 fieldType = 6
)

func (t fieldType) size() int {
	switch t {
	case typeU08, typeS08:
		return 1
	case typeU16, typeS16:
		return 2
	default:
		return 4
	}
}

type fieldDescriptor struct {
	typ         fieldType
	name        string
	units       string
	scale       float32
	translate   float32
	byteOffset  int // offset within the L-byte record payload
}

// Parse converts MLG binary bytes into a Log. Field 0 is always the time
// field; in format version 2 each record additionally carries an 8-byte
// epoch (ignored) and a 4-byte per-record timestamp immediately before
// the field payload, and that timestamp — not field 0's decoded value —
// is used as the time base.
func Parse(data []byte) (*logmodel.Log, error) {
	if len(data) < headerSize {
		return nil, &parsers.TruncatedFile{Reason: "shorter than fixed header"}
	}
	if string(data[:6]) != string(magic) {
		return nil, &parsers.TruncatedFile{Reason: "missing MLVLG magic"}
	}

	version := int(binary.BigEndian.Uint16(data[6:8]))
	if version != 1 && version != 2 {
		return nil, &parsers.UnsupportedVersion{Got: version}
	}
	fieldCount := int(binary.BigEndian.Uint16(data[8:10]))
	recordCount := int(binary.BigEndian.Uint32(data[10:14]))
	recordLen := int(binary.BigEndian.Uint16(data[14:16]))

	descEnd := headerSize + fieldCount*fieldDescriptorSize
	if len(data) < descEnd {
		return nil, &parsers.TruncatedFile{Reason: "truncated field descriptor table"}
	}

	fields := make([]fieldDescriptor, fieldCount)
	offset := 0
	for i := 0; i < fieldCount; i++ {
		base := headerSize + i*fieldDescriptorSize
		typ := fieldType(data[base])
		name := trimNulls(data[base+1 : base+35])
		units := trimNulls(data[base+35 : base+45])
		scale := math.Float32frombits(binary.BigEndian.Uint32(data[base+45 : base+49]))
		translate := math.Float32frombits(binary.BigEndian.Uint32(data[base+49 : base+53]))
		fields[i] = fieldDescriptor{
			typ:        typ,
			name:       name,
			units:      units,
			scale:      scale,
			translate:  translate,
			byteOffset: offset,
		}
		offset += typ.size()
	}
	if offset > recordLen {
		return nil, &parsers.TruncatedFile{Reason: "field descriptors exceed declared record length"}
	}

	recordStride := recordLen
	if version == 2 {
		recordStride = recordLen + versionTwoPrefixSize
	}

	payloadStart := descEnd
	expected := payloadStart + recordCount*recordStride
	if len(data) < expected {
		return nil, &parsers.TruncatedFile{Reason: "truncated record payload"}
	}

	timeVec := make([]float64, recordCount)
	samples := make([][]float64, fieldCount)
	for i := range samples {
		samples[i] = make([]float64, recordCount)
	}

	for r := 0; r < recordCount; r++ {
		recStart := payloadStart + r*recordStride
		fieldsStart := recStart
		var recordTime float64
		haveVersionTwoTime := false
		if version == 2 {
			// 8-byte epoch, ignored for core purposes.
			tsBytes := data[recStart+8 : recStart+12]
			recordTime = float64(math.Float32frombits(binary.BigEndian.Uint32(tsBytes)))
			haveVersionTwoTime = true
			fieldsStart = recStart + versionTwoPrefixSize
		}

		for fi, fd := range fields {
			raw := decodeRaw(data, fieldsStart+fd.byteOffset, fd.typ)
			value := float64(raw)*float64(fd.scale) + float64(fd.translate)
			samples[fi][r] = value
			if fi == 0 {
				if haveVersionTwoTime {
					timeVec[r] = recordTime
				} else {
					timeVec[r] = value
				}
			}
		}
	}

	channels := make([]logmodel.ChannelSpec, 0, fieldCount-1)
	for i, fd := range fields {
		if i == 0 {
			continue
		}
		name := fd.name
		if name == "" {
			name = fd.units
		}
		channels = append(channels, logmodel.ChannelSpec{
			RawName:     name,
			DisplayName: name,
			Kind:        parsers.KindFromUnit(fd.units),
			SourceUnit:  fd.units,
			Samples:     samples[i],
		})
	}

	return logmodel.New(timeVec, channels, logmodel.FormatMLG, logmodel.Metadata{}), nil
}

func decodeRaw(data []byte, off int, typ fieldType) float64 {
	switch typ {
	case typeU08:
		return float64(data[off])
	case typeS08:
		return float64(int8(data[off]))
	case typeU16:
		return float64(binary.BigEndian.Uint16(data[off : off+2]))
	case typeS16:
		return float64(int16(binary.BigEndian.Uint16(data[off : off+2])))
	case typeU32:
		return float64(binary.BigEndian.Uint32(data[off : off+4]))
	case typeS32:
		return float64(int32(binary.BigEndian.Uint32(data[off : off+4])))
	case typeF32:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(data[off : off+4])))
	default:
		return 0
	}
}

func trimNulls(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
