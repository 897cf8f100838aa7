// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive chord browser for chordtab.
//
// The browser is a Bubble Tea model with three regions: a search box, a
// Rank/Word/Chord results table, and a status bar. Typing filters the table
// live by substring match on the word; arrow keys move the selection.
//
// Pressing enter on a row starts chord capture: each typed letter feeds
// Chord.Insert one key at a time (rejected keys are reported in the status
// bar), enter commits the binding and saves the dictionary, esc cancels.
// ctrl+d removes the selected row's binding.
//
// When watching is enabled, external edits to the dictionary file are
// reloaded into the running browser via fsnotify.
package browser
