// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides shared helpers for the chordtab application.
package util

import "github.com/mattn/go-runewidth"

// UNICODE: width-aware truncation keeps table cells aligned.
// Display width is not rune count: CJK characters occupy two columns, so
// cell clipping has to go through go-runewidth or wide words break the grid.

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when anything was cut. Safe for multi-byte UTF-8 input.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadWidth pads a string with spaces to an exact display width, truncating
// first if it is too wide.
func PadWidth(s string, width int) string {
	return runewidth.FillRight(TruncateWidth(s, width), width)
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
