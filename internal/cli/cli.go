// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the non-interactive command surface for chordtab.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/chordtab-tui/internal/chord"
	"github.com/jeranaias/chordtab-tui/internal/config"
	"github.com/jeranaias/chordtab-tui/internal/util"
	"github.com/jeranaias/chordtab-tui/internal/words"
)

// Version information (set at build time, synced from main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMAND ROUTING
// =============================================================================

// Command identifies which top-level command was requested.
type Command int

const (
	// CmdTUI launches the interactive browser (the default).
	CmdTUI Command = iota
	// CmdList prints the merged rank/word/chord table to stdout.
	CmdList
	// CmdAdd binds a chord to a word and saves.
	CmdAdd
	// CmdRemove deletes a chord binding and saves.
	CmdRemove
	// CmdVersion prints version information.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
)

// Parse inspects os.Args and returns the requested command plus its
// remaining arguments. Unknown commands fall through to help.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "tui", "browse":
		return CmdTUI, args[1:]
	case "list", "ls":
		return CmdList, args[1:]
	case "add", "bind":
		return CmdAdd, args[1:]
	case "remove", "rm", "unbind":
		return CmdRemove, args[1:]
	case "version", "-v", "--version":
		return CmdVersion, args[1:]
	case "help", "-h", "--help":
		return CmdHelp, args[1:]
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		return CmdHelp, nil
	}
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// openDictionary loads the configured dictionary, treating a missing file as
// an empty dictionary.
func openDictionary(cfg *config.Config) (*chord.Dictionary, error) {
	dict, err := chord.LoadDictionary(cfg.Dictionary.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return chord.NewDictionary(), nil
		}
		return nil, fmt.Errorf("failed to load dictionary %s: %w", cfg.Dictionary.Path, err)
	}
	return dict, nil
}

// openWordList loads the configured frequency list; a missing or unreadable
// list just means every word is unranked.
func openWordList(cfg *config.Config) *words.List {
	list, err := words.Load(cfg.Dictionary.WordList)
	if err != nil {
		return words.New()
	}
	return list
}

// fatal prints an error and exits non-zero.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "chordtab: %v\n", err)
	os.Exit(1)
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleList prints the rank/word/chord table. Supports --search <substr>.
func HandleList(args []string) {
	parser := NewArgParser(args)

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	dict, err := openDictionary(cfg)
	if err != nil {
		fatal(err)
	}
	list := openWordList(cfg)
	list.MergeDictionary(dict)

	rows := list.Rows(parser.Flag("search"))
	fmt.Printf("%s %s %s\n",
		util.PadWidth("RANK", 6), util.PadWidth("WORD", 24), "CHORD")
	for _, row := range rows {
		fmt.Printf("%s %s %s\n",
			util.PadWidth(row.Rank, 6), util.PadWidth(row.Word, 24), row.Chord)
	}
}

// HandleAdd binds a chord to a word: chordtab add <chord> <word...>
func HandleAdd(args []string) {
	parser := NewArgParser(args)
	positional := parser.Positional()
	if len(positional) < 2 {
		fatal(fmt.Errorf("usage: chordtab add <chord> <word>"))
	}

	ch, err := chord.Parse(positional[0])
	if err != nil {
		fatal(err)
	}
	if ch.IsEmpty() {
		fatal(fmt.Errorf("chord must not be empty"))
	}
	word := strings.Join(positional[1:], " ")

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	dict, err := openDictionary(cfg)
	if err != nil {
		fatal(err)
	}

	prev, rebound := dict.Insert(ch, word)
	if err := dict.Save(cfg.Dictionary.Path); err != nil {
		fatal(err)
	}

	if rebound {
		fmt.Printf("rebound %s to %q (was %q)\n", ch.String(), word, prev)
	} else {
		fmt.Printf("bound %s to %q\n", ch.String(), word)
	}
}

// HandleRemove deletes a binding: chordtab remove <chord>
func HandleRemove(args []string) {
	parser := NewArgParser(args)
	positional := parser.Positional()
	if len(positional) != 1 {
		fatal(fmt.Errorf("usage: chordtab remove <chord>"))
	}

	ch, err := chord.Parse(positional[0])
	if err != nil {
		fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	dict, err := openDictionary(cfg)
	if err != nil {
		fatal(err)
	}

	word, ok := dict.Remove(ch)
	if !ok {
		fmt.Printf("no binding for %s\n", ch.String())
		return
	}
	if err := dict.Save(cfg.Dictionary.Path); err != nil {
		fatal(err)
	}
	fmt.Printf("removed %s (was %q)\n", ch.String(), word)
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("chordtab %s (%s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(`chordtab - chord-to-word dictionary for chorded input devices

Usage:
  chordtab                 launch the interactive browser
  chordtab list [--search <substr>]
                           print the rank/word/chord table
  chordtab add <chord> <word>
                           bind a chord (e.g. "t+h") to a word
  chordtab remove <chord>  delete a binding
  chordtab version         print version information
  chordtab help            show this help

Configuration lives at ~/.chordtab/config.toml; the CHORDTAB_DICTIONARY,
CHORDTAB_WORD_LIST, CHORDTAB_WATCH and CHORDTAB_THEME environment variables
override it.
`)
}
