// Package render formats parsed logs as plain ANSI text, for the
// command-line parser check rather than the interactive TUI.
package render

import (
	"fmt"

	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/units"
)

// Summary formats a parsed Log's header: source format, duration and time
// range, channel count, and any advisory metadata a parser found.
func Summary(log *logmodel.Log) string {
	var s string
	s += fmt.Sprintf(SectionHeaderFormat, Bold, "LOG", Reset)
	s += fmt.Sprintf("Format: %s%s%s\n", Cyan, log.Format(), Reset)

	start, end, err := log.TimeRange()
	if err != nil {
		s += fmt.Sprintf("%sempty log%s\n", Red, Reset)
		return s
	}
	s += fmt.Sprintf("Duration: %s%.2fs%s (%.2fs to %.2fs)\n", Yellow, end-start, Reset, start, end)
	s += fmt.Sprintf("Channels: %d\n", len(log.Channels()))

	meta := log.Metadata()
	if meta.FirmwareVersion != "" {
		s += fmt.Sprintf("Firmware: %s\n", meta.FirmwareVersion)
	}
	if meta.SamplingRateHint > 0 {
		s += fmt.Sprintf("Sampling rate hint: %.1f Hz\n", meta.SamplingRateHint)
	}
	if meta.CaptureTimestamp != "" {
		s += fmt.Sprintf("Captured: %s\n", meta.CaptureTimestamp)
	}
	return s
}

// ChannelTable formats one line per channel: display name, raw name, unit,
// and the observed min/max over the whole log.
func ChannelTable(log *logmodel.Log) string {
	var s string
	s += fmt.Sprintf(SectionHeaderFormat, Bold, "CHANNELS", Reset)

	for _, ch := range log.Channels() {
		kind := units.QuantityKind(ch.Kind())
		unit := units.ResolveUnit(kind, ch.SourceUnit())
		s += fmt.Sprintf("%s%*d%s  %-*s  %s%s%s  min %s  max %s\n",
			Dim, ChannelIDWidth, ch.ID(), Reset,
			ChannelNameWidth, ch.DisplayName(),
			Cyan, ch.RawName(), Reset,
			units.Format(ch.Min(), unit, 1),
			units.Format(ch.Max(), unit, 1),
		)
	}
	return s
}
