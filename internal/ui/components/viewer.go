/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/SomethingNew71/UltraLog/internal/downsample"
	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/palette"
	"github.com/SomethingNew71/UltraLog/internal/tab"
	"github.com/SomethingNew71/UltraLog/internal/ui/styles"
	"github.com/SomethingNew71/UltraLog/internal/ui/widgets"
	"github.com/SomethingNew71/UltraLog/internal/units"
)

// -----------------------------------------------------------------------------
// Viewer Component
// -----------------------------------------------------------------------------

// Viewer renders the active Tab's selected channels as sparklines over the
// current viewport, plus a transport status line. Downsampling goes through
// a shared Cache so scrubbing the viewport doesn't recompute LTTB on every
// frame for a viewport that hasn't changed.
type Viewer struct {
	t       *tab.Tab
	cache   *downsample.Cache
	width   int
	height  int
	focused bool
}

// NewViewer creates a viewer backed by cache for downsample memoization.
func NewViewer(cache *downsample.Cache) Viewer {
	return Viewer{cache: cache}
}

// SetTab points the viewer at a Tab.
func (v *Viewer) SetTab(t *tab.Tab) {
	v.t = t
}

// SetSize updates the component dimensions.
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetFocused sets the focus state.
func (v *Viewer) SetFocused(focused bool) {
	v.focused = focused
}

// View renders the viewer. Its title is embedded into the panel border
// rather than written as a line of content, since it is the only panel
// whose content scrolls in both axes and a wasted header line is felt the
// most here.
func (v Viewer) View() string {
	var b strings.Builder

	if v.t == nil {
		b.WriteString(styles.DimItemStyle.Render("Open a log to view it"))
		return v.applyPanelStyle(b.String())
	}

	snap := v.t.Snapshot()
	if len(snap.Selected) == 0 {
		b.WriteString(styles.DimItemStyle.Render("Select channels in the list to plot them here"))
		b.WriteString("\n\n")
		b.WriteString(v.renderTransportLine(snap))
		return v.applyPanelStyle(b.String())
	}

	chartWidth := v.width - 6
	if chartWidth < 8 {
		chartWidth = 8
	}

	rowsBudget := v.height - 6
	rowsPerChannel := 2
	maxChannels := len(snap.Selected)
	if rowsPerChannel > 0 && rowsBudget > 0 {
		if fit := rowsBudget / rowsPerChannel; fit < maxChannels {
			maxChannels = fit
		}
	}
	if maxChannels < 1 {
		maxChannels = 1
	}

	for i, sel := range snap.Selected {
		if i >= maxChannels {
			break
		}
		ch := snap.Log.Channel(sel.ChannelID)
		if ch == nil {
			continue
		}
		b.WriteString(v.renderChannelRow(ch, sel, snap, chartWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderTransportLine(snap))

	return v.applyPanelStyle(b.String())
}

func (v Viewer) renderChannelRow(ch *logmodel.Channel, sel tab.Selection, snap tab.Snapshot, chartWidth int) string {
	rgb := palette.At(snap.Palette, sel.ColorIndex)
	color := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))

	kind := units.QuantityKind(ch.Kind())
	unit := units.ResolveUnit(kind, ch.SourceUnit())

	cursorIdx := snap.Log.LookupIndex(snap.CursorTime)
	current := "—"
	if cursorIdx >= 0 && cursorIdx < len(ch.Samples()) {
		current = units.Format(ch.Samples()[cursorIdx], unit, 1)
	}
	lo := units.Format(ch.Min(), unit, 1)
	hi := units.Format(ch.Max(), unit, 1)

	swatch := lipgloss.NewStyle().Foreground(color).Render("●")
	legend := fmt.Sprintf("%s %-16s %s", swatch, styles.ChannelNameStyle.Render(ch.DisplayName()), styles.ReadoutValueStyle.Render(current))
	legend += " " + styles.ReadoutSecondaryStyle.Render(fmt.Sprintf("min %s  max %s", lo, hi))

	points := downsample.SliceViewport(snap.Log.Time(), ch.Samples(), snap.Viewport.Min, snap.Viewport.Max)
	key := downsample.NewKey(snap.Log.ID(), ch.ID(), snap.Viewport.Min, snap.Viewport.Max, chartWidth)
	series := v.cache.Get(key, func() downsample.Series {
		return downsample.LTTB(points, chartWidth)
	})

	data := make([]float64, len(series))
	for i, p := range series {
		data[i] = p.V
	}

	spark := widgets.NewSparkline(data, chartWidth, color).
		WithHighlight(highlightIndex(series, snap.CursorTime)).
		Render()

	return legend + "\n" + spark
}

// highlightIndex returns the index of the first series point at or after
// the playback cursor (the last point if the cursor is past the end), or
// -1 if series is empty.
func highlightIndex(series downsample.Series, cursorTime float64) int {
	if len(series) == 0 {
		return -1
	}
	i := sort.Search(len(series), func(i int) bool { return series[i].T >= cursorTime })
	if i >= len(series) {
		return len(series) - 1
	}
	return i
}

func (v Viewer) renderTransportLine(snap tab.Snapshot) string {
	state := "stopped"
	switch snap.Playback.State {
	case tab.Playing:
		state = "playing"
	case tab.Paused:
		state = "paused"
	}
	line := fmt.Sprintf("%s  %.2fx  t=%.2fs  view [%.2fs, %.2fs]",
		state, snap.Playback.Speed, snap.CursorTime, snap.Viewport.Min, snap.Viewport.Max)
	return styles.DimItemStyle.Render(line)
}

func (v Viewer) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if v.focused {
		style = styles.ActivePanelStyle
	}

	title := "Viewer"
	if v.t != nil {
		title = filepath.Base(v.t.SourcePath())
	}
	border := styles.BuildTitledBorder(title, v.width, lipgloss.RoundedBorder())
	style = style.Border(border)
	if v.focused {
		style = style.BorderForeground(styles.ColorPrimary)
	} else {
		style = style.BorderForeground(styles.ColorSecondary)
	}

	return style.Width(v.width).Height(v.height).Render(content)
}
