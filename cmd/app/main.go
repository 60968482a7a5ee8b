package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/database"
	"github.com/akyairhashvil/lapwatch/internal/tui"
	"github.com/akyairhashvil/lapwatch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "lapwatch needs an interactive terminal.")
		os.Exit(1)
	}
	ctx := context.Background()

	// 1. Data directory and logging
	dataDir, err := util.EnsureDataDir(config.AppName)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	closeLog, err := setupLogging(dataDir, os.Getenv(config.DebugEnvVar))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// 2. History database. The stopwatch still works without it.
	var repo database.Repository
	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		util.LogError("open history", err)
		fmt.Fprintf(os.Stderr, "History unavailable: %v\n", err)
	} else {
		defer db.Close()
		repo = db
	}

	// 3. Start Program
	model := tui.NewModel(ctx, repo)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to a debug file when debug is set
// and discards it otherwise.
func setupLogging(dataDir, debug string) (func(), error) {
	if !debugEnabled(debug) {
		util.Discard()
		return func() {}, nil
	}
	f, err := tea.LogToFile(filepath.Join(dataDir, config.DebugLogFile), "debug")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func debugEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

