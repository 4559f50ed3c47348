// ultralog-view is a Terminal User Interface for browsing and plotting ECU
// logs.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/SomethingNew71/UltraLog/internal/config"
	"github.com/SomethingNew71/UltraLog/internal/ui/bubbletea"
)

func main() {
	if len(os.Args) >= 2 {
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			printUsage()
			os.Exit(0)
		}
	}

	p := tea.NewProgram(
		bubbletea.NewApp(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

// printUsage displays usage information.
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "UltraLog Viewer - a TUI for browsing and plotting ECU logs.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "The application automatically discovers log files from configured paths.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -h, --help     Show this help message")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Auto-discovery paths (searched in order):")
	for i, p := range config.GetLogPaths() {
		fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintf(os.Stderr, "  %s   Override the log search directory\n", config.EnvLogDir)
	fmt.Fprintf(os.Stderr, "  %s Override the channel-rename rules file path\n", config.EnvRulesFile)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keybindings:")
	fmt.Fprintln(os.Stderr, "  Tab          Switch between panels")
	fmt.Fprintln(os.Stderr, "  ↑/k ↓/j      Navigate within panel")
	fmt.Fprintln(os.Stderr, "  ←/h →/l      Pan the viewport")
	fmt.Fprintln(os.Stderr, "  Enter        Open selected log")
	fmt.Fprintln(os.Stderr, "  space        Select/deselect a channel")
	fmt.Fprintln(os.Stderr, "  p            Play/pause")
	fmt.Fprintln(os.Stderr, "  s            Stop")
	fmt.Fprintln(os.Stderr, "  +/-          Speed up/down")
	fmt.Fprintln(os.Stderr, "  c            Cycle palette")
	fmt.Fprintln(os.Stderr, "  z            Reset viewport")
	fmt.Fprintln(os.Stderr, "  [ / ]        Previous/next tab")
	fmt.Fprintln(os.Stderr, "  x / X        Close tab / close all tabs")
	fmt.Fprintln(os.Stderr, "  r            Refresh log list")
	fmt.Fprintln(os.Stderr, "  q            Quit")
}
