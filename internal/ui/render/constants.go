// Package render formats parsed logs as plain ANSI text, for the
// command-line parser check rather than the interactive TUI.
package render

// -----------------------------------------------------------------------------
// Display Limits
// -----------------------------------------------------------------------------

const (
	// ChannelNameWidth is the column width for a channel's display name.
	ChannelNameWidth = 24

	// ChannelIDWidth is the column width for a channel's numeric id.
	ChannelIDWidth = 4
)

// -----------------------------------------------------------------------------
// Format Strings
// -----------------------------------------------------------------------------

const (
	// SectionHeaderFormat is the format for section titles.
	SectionHeaderFormat = "%s=== %s ===%s\n"
)
