/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package palette provides the process-wide color tables used to assign a
// color to each selected channel. Palettes are read-only; switching the
// active palette never renumbers existing selections, since a selection
// stores only a color index, interpreted against whichever palette is
// active at render time.
package palette

// RGB is a single 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Name identifies one of the built-in palettes.
type Name int

const (
	Standard Name = iota
	Colorblind
)

// Size is the number of colors in every palette, and therefore the cap on
// a Tab's simultaneous channel selections.
const Size = 10

// standard is the default 10-color palette.
var standard = [Size]RGB{
	{113, 120, 78},  // olive green (primary)
	{191, 78, 48},   // rust orange (accent)
	{71, 108, 155},  // blue (info)
	{159, 166, 119}, // sage green (success)
	{253, 193, 73},  // amber (warning)
	{135, 30, 28},   // dark red (error)
	{246, 247, 235}, // cream
	{100, 149, 237}, // cornflower blue
	{255, 127, 80},  // coral
	{144, 238, 144}, // light green
}

// colorblind is Wong's colorblind-safe palette, distinguishable under
// deuteranopia, protanopia, and tritanopia.
var colorblind = [Size]RGB{
	{0, 114, 178},   // blue
	{230, 159, 0},   // orange
	{0, 158, 115},   // bluish green
	{204, 121, 167}, // reddish purple
	{86, 180, 233},  // sky blue
	{213, 94, 0},    // vermillion
	{240, 228, 66},  // yellow
	{0, 0, 0},       // black
	{136, 204, 238}, // light blue
	{153, 153, 153}, // gray
}

// Colors returns the color table for name. An unrecognized name returns the
// standard palette.
func Colors(name Name) [Size]RGB {
	if name == Colorblind {
		return colorblind
	}
	return standard
}

// At returns the color at index within name's table, wrapping index into
// [0, Size).
func At(name Name, index int) RGB {
	t := Colors(name)
	return t[((index%Size)+Size)%Size]
}
