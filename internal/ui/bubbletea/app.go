/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package bubbletea provides the main TUI application using Bubble Tea.
package bubbletea

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/SomethingNew71/UltraLog/internal/config"
	"github.com/SomethingNew71/UltraLog/internal/downsample"
	"github.com/SomethingNew71/UltraLog/internal/ingest"
	"github.com/SomethingNew71/UltraLog/internal/normalize"
	"github.com/SomethingNew71/UltraLog/internal/playback"
	"github.com/SomethingNew71/UltraLog/internal/tab"
	"github.com/SomethingNew71/UltraLog/internal/ui/components"
	"github.com/SomethingNew71/UltraLog/internal/ui/styles"
	"github.com/SomethingNew71/UltraLog/internal/ui/widgets"
	"github.com/SomethingNew71/UltraLog/internal/workspace"
)

// Panel identifiers
const (
	PanelExplorer = iota
	PanelChannels
	PanelViewer
	PanelCount
)

const pollInterval = 120 * time.Millisecond
const tickInterval = 100 * time.Millisecond

// -----------------------------------------------------------------------------
// Messages
// -----------------------------------------------------------------------------

type filesMsg struct {
	files []config.LogFile
	err   error
}

type ticketMsg struct {
	ticket ingest.TicketID
}

type statusMsg struct {
	ticket ingest.TicketID
	status ingest.Status
}

type switchTabMsg struct {
	index int
}

type tickMsg struct {
	at time.Time
}

type errMsg struct {
	err error
}

// -----------------------------------------------------------------------------
// App
// -----------------------------------------------------------------------------

// App is the main application model.
type App struct {
	ws    *workspace.Workspace
	cache *downsample.Cache
	prefs config.Preferences

	// Components
	explorer      components.Explorer
	channels      components.ChannelList
	viewer        components.Viewer
	confirmDialog components.ConfirmDialog

	// State
	activePanel  int
	loading      bool
	loadProgress float64
	statusMsg    string
	errMsg       string

	// Layout
	width         int
	height        int
	explorerRatio float64
	channelsRatio float64

	keys KeyMap
}

// NewApp creates a new application instance.
func NewApp() App {
	prefs := config.DefaultPreferences()

	rules, _ := config.LoadRules()
	if !prefs.NormalizationEnabled {
		rules = normalize.Table{}
	}
	ws := workspace.New(rules, 0)
	cache := downsample.NewCache(0)

	return App{
		ws:            ws,
		cache:         cache,
		prefs:         prefs,
		explorer:      components.NewExplorer(),
		channels:      components.NewChannelList(),
		viewer:        components.NewViewer(cache),
		confirmDialog: components.NewConfirmDialog(),
		activePanel:   PanelExplorer,
		keys:          DefaultKeyMap(),
		statusMsg:     "Discovering logs...",
		explorerRatio: 0.22,
		channelsRatio: 0.28,
	}
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return tea.Batch(refreshFilesCmd(), tickCmd())
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if a.confirmDialog.IsVisible() {
		if result, handled := a.confirmDialog.Update(msg); handled {
			if result.Confirmed {
				switch result.Action {
				case components.ConfirmCloseTab:
					a.ws.CloseActive()
					a.syncActiveTab()
					a.statusMsg = "Tab closed"
				case components.ConfirmCloseAll:
					for range a.ws.Tabs() {
						a.ws.CloseActive()
					}
					a.syncActiveTab()
					a.statusMsg = "All tabs closed"
				}
			} else {
				a.statusMsg = "Cancelled"
			}
			return a, nil
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.confirmDialog.SetSize(msg.Width, msg.Height)
		a.updateComponentSizes()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Tab):
			a.activePanel = (a.activePanel + 1) % PanelCount
			a.updateFocus()

		case key.Matches(msg, a.keys.Reload):
			a.loading = true
			a.loadProgress = 100
			a.statusMsg = "Refreshing log list..."
			cmds = append(cmds, refreshFilesCmd())

		case key.Matches(msg, a.keys.Enter):
			if a.activePanel == PanelExplorer {
				if f := a.explorer.SelectedFile(); f != nil {
					a.loading = true
					a.loadProgress = 0
					a.statusMsg = fmt.Sprintf("Opening %s...", filepath.Base(f.Path))
					cmds = append(cmds, openCmd(a.ws, f.Path))
				}
			}

		case key.Matches(msg, a.keys.Select):
			if a.activePanel == PanelChannels {
				a.toggleSelectedChannel()
			}

		case key.Matches(msg, a.keys.PlayPause):
			if t := a.ws.Active(); t != nil {
				now := time.Now()
				if t.Snapshot().Playback.State == tab.Playing {
					playback.Pause(t, now)
				} else {
					playback.Play(t, now)
				}
			}

		case key.Matches(msg, a.keys.Stop):
			if t := a.ws.Active(); t != nil {
				playback.Stop(t)
			}

		case key.Matches(msg, a.keys.SpeedUp):
			a.nudgeSpeed(1)

		case key.Matches(msg, a.keys.SpeedDown):
			a.nudgeSpeed(-1)

		case key.Matches(msg, a.keys.Palette):
			a.prefs.Colorblind = !a.prefs.Colorblind
			if t := a.ws.Active(); t != nil {
				t.SetPalette(a.prefs.Palette())
			}

		case key.Matches(msg, a.keys.ResetView):
			if t := a.ws.Active(); t != nil {
				t.ResetViewport()
			}

		case key.Matches(msg, a.keys.Left):
			a.panViewport(-0.2)

		case key.Matches(msg, a.keys.Right):
			a.panViewport(0.2)

		case key.Matches(msg, a.keys.CloseTab):
			if a.ws.Active() != nil {
				a.confirmDialog.Show(components.ConfirmCloseTab, "Close the active tab?", "")
			}

		case key.Matches(msg, a.keys.CloseAll):
			if n := len(a.ws.Tabs()); n > 0 {
				a.confirmDialog.Show(components.ConfirmCloseAll, fmt.Sprintf("Close all %d open tabs?", n), "")
			}

		case key.Matches(msg, a.keys.NextTab):
			a.ws.SetActive(a.ws.ActiveIndex() + 1)
			a.syncActiveTab()

		case key.Matches(msg, a.keys.PrevTab):
			a.ws.SetActive(a.ws.ActiveIndex() - 1)
			a.syncActiveTab()

		default:
			switch a.activePanel {
			case PanelExplorer:
				if cmd := a.explorer.Update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
			case PanelChannels:
				if cmd := a.channels.Update(msg); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}

	case filesMsg:
		a.loading = false
		if msg.err != nil {
			a.errMsg = msg.err.Error()
		} else {
			a.explorer.SetFiles(msg.files)
			a.statusMsg = fmt.Sprintf("Found %d log files", len(msg.files))
			a.errMsg = ""
		}

	case ticketMsg:
		cmds = append(cmds, pollCmd(a.ws, msg.ticket))

	case statusMsg:
		switch msg.status.State {
		case ingest.StateLoading:
			a.loadProgress = msg.status.Progress * 100
			a.statusMsg = fmt.Sprintf("Loading %s", filepath.Base(msg.status.Path))
			cmds = append(cmds, pollCmd(a.ws, msg.ticket))
		case ingest.StateReady:
			a.loading = false
			a.loadProgress = 0
			a.ws.AddTab(msg.status.Path, msg.status.Log)
			if t := a.ws.Active(); t != nil {
				t.SetPalette(a.prefs.Palette())
			}
			a.syncActiveTab()
			a.statusMsg = fmt.Sprintf("Opened %s", filepath.Base(msg.status.Path))
			a.errMsg = ""
		case ingest.StateFailed:
			a.loading = false
			a.loadProgress = 0
			a.errMsg = msg.status.Err.Error()
			a.statusMsg = fmt.Sprintf("Failed to open %s", filepath.Base(msg.status.Path))
		case ingest.StateCanceled:
			a.loading = false
			a.loadProgress = 0
			a.statusMsg = "Open canceled"
		}

	case switchTabMsg:
		a.loading = false
		a.ws.SetActive(msg.index)
		a.syncActiveTab()
		a.statusMsg = "Switched to already-open tab"

	case tickMsg:
		if t := a.ws.Active(); t != nil {
			playback.Advance(t, msg.at)
			if a.prefs.CursorTracking && t.Snapshot().Playback.State == tab.Playing {
				playback.RecenterViewport(t)
			}
		}
		cmds = append(cmds, tickCmd())

	case errMsg:
		a.loading = false
		a.errMsg = msg.err.Error()
	}

	return a, tea.Batch(cmds...)
}

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.explorer.View(),
		a.channels.View(),
		a.viewer.View(),
	)
	b.WriteString(panels)
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())

	if a.confirmDialog.IsVisible() {
		return a.confirmDialog.View()
	}

	return b.String()
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func (a *App) syncActiveTab() {
	t := a.ws.Active()
	a.channels.SetTab(t)
	a.viewer.SetTab(t)
}

func (a *App) toggleSelectedChannel() {
	t := a.ws.Active()
	if t == nil {
		return
	}
	id := a.channels.SelectedChannelID()
	if id < 0 {
		return
	}
	if err := t.Select(id); errors.Is(err, tab.ErrAlreadySelected) {
		t.Deselect(id)
	} else if errors.Is(err, tab.ErrSelectionFull) {
		a.statusMsg = fmt.Sprintf("Selection full: at most %d channels", tab.MaxSelection)
	}
}

func (a *App) nudgeSpeed(direction int) {
	t := a.ws.Active()
	if t == nil {
		return
	}
	cur := t.Snapshot().Playback.Speed
	idx := 0
	for i, s := range tab.Speeds {
		if s == cur {
			idx = i
			break
		}
	}
	idx += direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tab.Speeds) {
		idx = len(tab.Speeds) - 1
	}
	_ = playback.SetSpeed(t, tab.Speeds[idx], time.Now())
}

func (a *App) panViewport(fraction float64) {
	t := a.ws.Active()
	if t == nil {
		return
	}
	snap := t.Snapshot()
	shift := (snap.Viewport.Max - snap.Viewport.Min) * fraction
	t.SetViewport(snap.Viewport.Min+shift, snap.Viewport.Max+shift)
}

func (a *App) updateComponentSizes() {
	contentHeight := a.height - 4

	explorerWidth := int(float64(a.width) * a.explorerRatio)
	channelsWidth := int(float64(a.width) * a.channelsRatio)
	viewerWidth := a.width - explorerWidth - channelsWidth - 6

	a.explorer.SetSize(explorerWidth, contentHeight)
	a.channels.SetSize(channelsWidth, contentHeight)
	a.viewer.SetSize(viewerWidth, contentHeight)

	a.updateFocus()
}

func (a *App) updateFocus() {
	a.explorer.SetFocused(a.activePanel == PanelExplorer)
	a.channels.SetFocused(a.activePanel == PanelChannels)
	a.viewer.SetFocused(a.activePanel == PanelViewer)
}

func (a App) renderHeader() string {
	title := "⚡ UltraLog"
	if t := a.ws.Active(); t != nil {
		n := len(a.ws.Tabs())
		title += fmt.Sprintf("  —  %s  [tab %d/%d]", filepath.Base(t.SourcePath()), a.ws.ActiveIndex()+1, n)
	}
	return styles.PanelTitleStyle.Render(title)
}

func (a App) renderStatusBar() string {
	var left string
	if a.errMsg != "" {
		left = styles.ErrorStyle.Render(a.errMsg)
	} else if a.loading {
		bar := widgets.NewProgressBar(a.loadProgress, 16).Render()
		left = styles.LoadingStyle.Render(a.statusMsg) + " " + bar
	} else {
		left = styles.DimItemStyle.Render(a.statusMsg)
	}

	hints := []string{
		styles.HelpKeyStyle.Render("Tab") + styles.HelpDescStyle.Render(":panel"),
		styles.HelpKeyStyle.Render("↑↓") + styles.HelpDescStyle.Render(":nav"),
		styles.HelpKeyStyle.Render("Enter") + styles.HelpDescStyle.Render(":open"),
		styles.HelpKeyStyle.Render("space") + styles.HelpDescStyle.Render(":select"),
		styles.HelpKeyStyle.Render("p") + styles.HelpDescStyle.Render(":play"),
		styles.HelpKeyStyle.Render("+/-") + styles.HelpDescStyle.Render(":speed"),
		styles.HelpKeyStyle.Render("c") + styles.HelpDescStyle.Render(":palette"),
		styles.HelpKeyStyle.Render("x/X") + styles.HelpDescStyle.Render(":close"),
		styles.HelpKeyStyle.Render("q") + styles.HelpDescStyle.Render(":quit"),
	}
	right := strings.Join(hints, "  ")

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

func refreshFilesCmd() tea.Cmd {
	return func() tea.Msg {
		files, err := config.DiscoverLogFiles()
		return filesMsg{files: files, err: err}
	}
}

func openCmd(ws *workspace.Workspace, path string) tea.Cmd {
	return func() tea.Msg {
		ticket, err := ws.Submit(path)
		if err != nil {
			var dup *ingest.DuplicatePath
			if errors.As(err, &dup) {
				return switchTabMsg{index: dup.ExistingTabID}
			}
			return errMsg{err: err}
		}
		return ticketMsg{ticket: ticket}
	}
}

func pollCmd(ws *workspace.Workspace, ticket ingest.TicketID) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		status, err := ws.Poll(ticket)
		if err != nil {
			return errMsg{err: err}
		}
		return statusMsg{ticket: ticket, status: status}
	})
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}
