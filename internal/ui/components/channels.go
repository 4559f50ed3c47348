/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/SomethingNew71/UltraLog/internal/logmodel"
	"github.com/SomethingNew71/UltraLog/internal/palette"
	"github.com/SomethingNew71/UltraLog/internal/tab"
	"github.com/SomethingNew71/UltraLog/internal/ui/styles"
	"github.com/SomethingNew71/UltraLog/internal/units"
)

// -----------------------------------------------------------------------------
// Channel List Component
// -----------------------------------------------------------------------------

// ChannelList browses the active Tab's channels and reports which one is
// highlighted; toggling a channel's selection is driven by the owning
// App so it can update the Tab directly and surface ErrSelectionFull.
type ChannelList struct {
	t       *tab.Tab
	cursor  int
	width   int
	height  int
	focused bool
}

// NewChannelList creates an empty channel list.
func NewChannelList() ChannelList {
	return ChannelList{}
}

// SetTab points the list at a Tab's Log and resets the cursor to the first
// channel.
func (c *ChannelList) SetTab(t *tab.Tab) {
	c.t = t
	c.cursor = 0
}

// SetSize updates the component dimensions.
func (c *ChannelList) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetFocused sets the focus state.
func (c *ChannelList) SetFocused(focused bool) {
	c.focused = focused
}

// SelectedChannelID returns the channel id under the cursor, or -1 if
// there is no active Tab or it has no channels.
func (c *ChannelList) SelectedChannelID() int {
	if c.t == nil {
		return -1
	}
	channels := c.t.Log().Channels()
	if c.cursor < 0 || c.cursor >= len(channels) {
		return -1
	}
	return channels[c.cursor].ID()
}

// Update handles cursor navigation within the list.
func (c *ChannelList) Update(msg tea.Msg) tea.Cmd {
	if c.t == nil {
		return nil
	}
	n := len(c.t.Log().Channels())
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keyUp):
			if c.cursor > 0 {
				c.cursor--
			}
		case key.Matches(km, keyDown):
			if c.cursor < n-1 {
				c.cursor++
			}
		}
	}
	return nil
}

// View renders the channel list.
func (c ChannelList) View() string {
	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle.Render("Channels"))
	b.WriteString("\n\n")

	if c.t == nil {
		b.WriteString(styles.DimItemStyle.Render("Open a log to see its channels"))
		return c.applyPanelStyle(b.String())
	}

	snap := c.t.Snapshot()
	channels := snap.Log.Channels()
	colorByChannel := make(map[int]int, len(snap.Selected))
	for _, s := range snap.Selected {
		colorByChannel[s.ChannelID] = s.ColorIndex
	}

	cursorIdx := snap.Log.LookupIndex(snap.CursorTime)

	visibleHeight := c.height - 4
	if visibleHeight < 1 {
		visibleHeight = 4
	}
	start := 0
	if c.cursor >= visibleHeight {
		start = c.cursor - visibleHeight + 1
	}
	end := min(start+visibleHeight, len(channels))

	for i := start; i < end; i++ {
		ch := channels[i]
		line := c.renderRow(ch, cursorIdx, colorByChannel, snap.Palette, i == c.cursor)
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return c.applyPanelStyle(b.String())
}

func (c ChannelList) renderRow(ch *logmodel.Channel, cursorIdx int, colorByChannel map[int]int, pal palette.Name, isCursor bool) string {
	box := "[ ]"
	swatch := " "
	if colorIdx, selected := colorByChannel[ch.ID()]; selected {
		box = "[x]"
		rgb := palette.At(pal, colorIdx)
		swatch = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))).
			Render("●")
	}

	// units.QuantityKind and logmodel.Kind are declared in the same
	// order (see logmodel.Kind's doc comment); the cast is exact.
	kind := units.QuantityKind(ch.Kind())
	unit := units.ResolveUnit(kind, ch.SourceUnit())
	value := "—"
	if cursorIdx >= 0 && cursorIdx < len(ch.Samples()) {
		value = units.Format(ch.Samples()[cursorIdx], unit, 1)
	}

	name := styles.ChannelNameStyle.Render(ch.DisplayName())
	val := styles.ReadoutValueStyle.Render(value)
	row := fmt.Sprintf("%s %s %-20s %s", box, swatch, name, val)

	if isCursor {
		return styles.SelectedItemStyle.Render(row)
	}
	return styles.NormalItemStyle.Render(row)
}

func (c ChannelList) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if c.focused {
		style = styles.ActivePanelStyle
	}
	return style.Width(c.width).Height(c.height).Render(content)
}
