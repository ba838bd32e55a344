// cmd/crewcal/main.go
//
// This is the entry point for the crewcal planner.
//
// Flow:
// 1. Resolve the base directory (home by default, -dir to override)
// 2. Initialize the .crewcal folder structure
// 3. Launch the TUI

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crewcal/crewcal/internal/config"
	"github.com/crewcal/crewcal/internal/tui"
)

func main() {
	dirFlag := flag.String("dir", "", "base directory for planner data (defaults to your home directory)")
	flag.Parse()

	baseDir := *dirFlag
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving home directory: %v\n", err)
			os.Exit(1)
		}
		baseDir = home
	}

	if err := config.InitCrewcalDir(baseDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .crewcal directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting crewcal: %v\n", err)
		os.Exit(1)
	}

	// tea.NewProgram creates a new bubbletea application.
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits.
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
