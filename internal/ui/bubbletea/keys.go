/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package bubbletea

import "github.com/charmbracelet/bubbles/key"

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// KeyMap defines all keyboard shortcuts for the application.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Enter  key.Binding
	Tab    key.Binding
	Escape key.Binding
	Select key.Binding // toggle a channel's selection

	// Application
	Quit   key.Binding
	Help   key.Binding
	Reload key.Binding

	// Transport
	PlayPause key.Binding
	Stop      key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Palette   key.Binding
	ResetView key.Binding

	// Tabs
	CloseTab key.Binding
	CloseAll key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan fwd"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select channel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "speed up"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "speed down"),
		),
		Palette: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle palette"),
		),
		ResetView: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "reset view"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "close all"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
	}
}

// ShortHelp returns abbreviated help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Select, k.PlayPause, k.Quit}
}

// FullHelp returns complete help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Tab, k.Select, k.Escape},
		{k.PlayPause, k.Stop, k.SpeedUp, k.SpeedDown},
		{k.Palette, k.ResetView, k.NextTab, k.PrevTab},
		{k.CloseTab, k.CloseAll, k.Reload, k.Quit},
	}
}
