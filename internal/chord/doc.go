// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chord implements the chord-to-word dictionary core for chordtab.
//
// A Chord is a canonical combination of single-character keys: deduplicated,
// case-folded to uppercase, and sorted in ascending character order. Its
// canonical string form joins the keys with "+" (for example "A+B+D"), and
// that string is the unique representation of the underlying key set.
//
// A Dictionary maps chords to words and persists to a flat text file, one
// record per line:
//
//	<CANONICAL_CHORD>: <WORD>
//
// Loading is best-effort: malformed lines are dropped silently so a
// hand-edited file loads whatever is parseable. Saving rewrites the whole
// file atomically (write-temp, fsync, rename) in ascending chord order,
// which keeps the on-disk output deterministic.
//
// # Usage
//
// Build a chord and bind it:
//
//	c, err := chord.Parse("b+a")   // canonical form "A+B"
//	c.Insert('d')                  // now "A+B+D"
//
//	dict := chord.NewDictionary()
//	prev, rebound := dict.Insert(c, "the")
//	err = dict.Save(path)
package chord
