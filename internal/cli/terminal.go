// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the chordtab CLI.
//
// USABILITY: TTY detection for proper terminal handling
//
// The browser needs a real terminal; list/add/remove work anywhere,
// including pipes and CI, and respect NO_COLOR through termenv.
package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY returns true if stdin is a terminal. The interactive browser
// refuses to start without one.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorEnabled reports whether colored output should be used: stdout must be
// a terminal, NO_COLOR unset, and the terminal must support at least ANSI
// colors.
func ColorEnabled() bool {
	if !IsStdoutTTY() {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}
