// chordtab - a terminal chord-to-word dictionary for chorded input devices.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chordtab-tui/internal/chord"
	"github.com/jeranaias/chordtab-tui/internal/cli"
	"github.com/jeranaias/chordtab-tui/internal/config"
	"github.com/jeranaias/chordtab-tui/internal/ui/browser"
	"github.com/jeranaias/chordtab-tui/internal/ui/styles"
	"github.com/jeranaias/chordtab-tui/internal/words"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdList:
		cli.HandleList(args)
	case cli.CmdAdd:
		cli.HandleAdd(args)
	case cli.CmdRemove:
		cli.HandleRemove(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runTUI loads everything the browser needs and runs the Bubble Tea program
// until the user quits.
func runTUI() {
	if !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, "chordtab: the browser needs a terminal; try \"chordtab list\"")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chordtab: %v\n", err)
		os.Exit(1)
	}

	dict, err := chord.LoadDictionary(cfg.Dictionary.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "chordtab: failed to load dictionary: %v\n", err)
			os.Exit(1)
		}
		// first run: start empty, the first save creates the file
		dict = chord.NewDictionary()
	}

	list, err := words.Load(cfg.Dictionary.WordList)
	if err != nil {
		// no frequency list: every word shows unranked
		list = words.New()
	}

	var watcher *browser.Watcher
	if cfg.Dictionary.Watch {
		watcher, err = browser.NewWatcher(cfg.Dictionary.Path, 200*time.Millisecond)
		if err != nil {
			// watching is best-effort; the browser works without it
			fmt.Fprintf(os.Stderr, "chordtab: watch disabled: %v\n", err)
			watcher = nil
		}
	}
	if watcher != nil {
		defer watcher.Close()
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	m := browser.New(theme, dict, list, cfg.Dictionary.Path, watcher)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "chordtab: %v\n", err)
		os.Exit(1)
	}
}
