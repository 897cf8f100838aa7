// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides shared helpers for the chordtab application.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// String Utilities:
//   - TruncateWidth: display-width-aware truncation with ellipsis
//   - PadWidth: pad or clip a string to an exact column width
//
// # Usage
//
//	// Write the dictionary file without risking a truncated file on crash
//	err := util.AtomicWriteFile(path, data, 0644)
//
//	// Clip a word to a table cell
//	cell := util.TruncateWidth(word, 24)
package util
