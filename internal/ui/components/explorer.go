/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/SomethingNew71/UltraLog/internal/config"
	"github.com/SomethingNew71/UltraLog/internal/ui/styles"
)

// -----------------------------------------------------------------------------
// Key Bindings (local to avoid import cycle)
// -----------------------------------------------------------------------------

var (
	keyUp = key.NewBinding(
		key.WithKeys("up", "k"),
	)
	keyDown = key.NewBinding(
		key.WithKeys("down", "j"),
	)
)

// -----------------------------------------------------------------------------
// Explorer Component
// -----------------------------------------------------------------------------

// Explorer browses log files discovered on disk, offering them for
// opening into a new Tab.
type Explorer struct {
	files     []config.LogFile
	cursor    int
	width     int
	height    int
	focused   bool
	title     string
	emptyText string
}

// NewExplorer creates a new file explorer.
func NewExplorer() Explorer {
	return Explorer{
		title:     "Logs",
		emptyText: "No log files found",
	}
}

// SetFiles updates the file list.
func (e *Explorer) SetFiles(files []config.LogFile) {
	e.files = files
	if e.cursor >= len(files) {
		e.cursor = max(0, len(files)-1)
	}
}

// SetSize updates the component dimensions.
func (e *Explorer) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// SetFocused sets the focus state.
func (e *Explorer) SetFocused(focused bool) {
	e.focused = focused
}

// SelectedFile returns the currently highlighted file, or nil if the list
// is empty.
func (e *Explorer) SelectedFile() *config.LogFile {
	if e.cursor >= 0 && e.cursor < len(e.files) {
		return &e.files[e.cursor]
	}
	return nil
}

// Selected returns the currently highlighted file's path, or "".
func (e *Explorer) Selected() string {
	if f := e.SelectedFile(); f != nil {
		return f.Path
	}
	return ""
}

// FileCount returns total number of files.
func (e *Explorer) FileCount() int {
	return len(e.files)
}

// Update handles input for the explorer.
func (e *Explorer) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keyUp):
			if e.cursor > 0 {
				e.cursor--
			}
		case key.Matches(km, keyDown):
			if e.cursor < len(e.files)-1 {
				e.cursor++
			}
		}
	}
	return nil
}

// View renders the explorer.
func (e Explorer) View() string {
	var b strings.Builder

	titleText := fmt.Sprintf("%s (%d)", e.title, len(e.files))
	b.WriteString(styles.PanelTitleStyle.Render(titleText))
	b.WriteString("\n\n")

	if len(e.files) == 0 {
		b.WriteString(styles.DimItemStyle.Render(e.emptyText))
		return e.applyPanelStyle(b.String())
	}

	visibleHeight := e.height - 5
	if visibleHeight < 1 {
		visibleHeight = 5
	}

	start := 0
	if e.cursor >= visibleHeight {
		start = e.cursor - visibleHeight + 1
	}
	end := min(start+visibleHeight, len(e.files))

	for i := start; i < end; i++ {
		file := e.files[i]
		name := filepath.Base(file.Path)

		maxLen := e.width - 6
		if maxLen < 10 {
			maxLen = 10
		}
		if len(name) > maxLen {
			name = name[:maxLen-3] + "..."
		}

		var item string
		if i == e.cursor {
			item = styles.SelectedItemStyle.Render("▸ " + name)
		} else {
			item = styles.NormalItemStyle.Render("  " + name)
		}

		b.WriteString(item)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.DimItemStyle.Render(fmt.Sprintf(" [%d/%d]", e.cursor+1, len(e.files))))

	return e.applyPanelStyle(b.String())
}

func (e Explorer) applyPanelStyle(content string) string {
	style := styles.BasePanelStyle
	if e.focused {
		style = styles.ActivePanelStyle
	}
	return style.Width(e.width).Height(e.height).Render(content)
}

// -----------------------------------------------------------------------------
// Formatting Helpers
// -----------------------------------------------------------------------------

// FormatDateTime formats a time for detailed display.
func FormatDateTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < 24*time.Hour && t.Day() == now.Day() {
		return "Today at " + t.Format("15:04:05")
	} else if diff < 48*time.Hour && t.Day() == now.Add(-24*time.Hour).Day() {
		return "Yesterday at " + t.Format("15:04:05")
	}
	return t.Format("02 Jan 2006, 15:04:05")
}

// FormatFileSize formats bytes as human-readable size.
func FormatFileSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
