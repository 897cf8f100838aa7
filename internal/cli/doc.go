// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the non-interactive command surface for chordtab.
//
// # Commands
//
//   - (default) / tui: launch the interactive chord browser
//   - list: print the merged rank/word/chord table to stdout
//   - add: bind a chord expression to a word and save
//   - remove: delete a chord binding and save
//   - version, help
//
// Parse routes os.Args to a Command; each Handle* function runs one command
// to completion, printing errors to stderr and exiting non-zero on failure.
package cli
