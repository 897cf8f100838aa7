// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chord implements the chord-to-word dictionary core for chordtab.
package chord

import (
	"os"
	"sort"
	"strings"

	"github.com/jeranaias/chordtab-tui/internal/util"
)

// =============================================================================
// DICTIONARY TYPE
// =============================================================================

// Entry is one chord-to-word binding.
type Entry struct {
	Chord Chord
	Word  string
}

// Dictionary is an ordered mapping from chords to words. Keys are unique and
// iteration is always ascending by canonical chord string. The dictionary
// owns its entries: Entries returns fresh copies, never internal storage.
//
// Dictionary is not safe for concurrent mutation; the TUI drives it from a
// single event loop and CLI commands run to completion before returning.
type Dictionary struct {
	// keyed by canonical chord string, which is unique per key set
	entries map[string]Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Entry)}
}

// =============================================================================
// MAP OPERATIONS
// =============================================================================

// Insert adds or replaces the binding for ch. When the chord was already
// bound the previous word is returned with replaced=true, so callers can
// report a rebind.
func (d *Dictionary) Insert(ch Chord, word string) (prev string, replaced bool) {
	key := ch.String()
	old, ok := d.entries[key]
	d.entries[key] = Entry{Chord: ch.clone(), Word: strings.TrimSpace(word)}
	return old.Word, ok
}

// Remove deletes the binding for ch if present and returns the removed word.
// Removing an absent chord is a no-op with ok=false, never an error.
func (d *Dictionary) Remove(ch Chord) (word string, ok bool) {
	key := ch.String()
	old, found := d.entries[key]
	if found {
		delete(d.entries, key)
	}
	return old.Word, found
}

// Lookup returns the word bound to ch.
func (d *Dictionary) Lookup(ch Chord) (word string, ok bool) {
	e, found := d.entries[ch.String()]
	return e.Word, found
}

// Len returns the number of bindings.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a fully materialized snapshot of all bindings in ascending
// canonical-chord order. Every call builds a fresh slice with cloned chords,
// so the result stays valid across later inserts and removes.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, Entry{Chord: e.Chord.clone(), Word: e.Word})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Chord.Less(out[j].Chord)
	})
	return out
}

// =============================================================================
// FILE FORMAT I/O
// =============================================================================

// LoadDictionary reads a dictionary file. Each line is split on the first
// ":" into a chord expression and a word; the word is trimmed. Malformed
// lines (no ":", unparsable chord) are dropped silently so a corrupt or
// hand-edited file loads whatever is parseable. A later line with the same
// chord overwrites an earlier one.
//
// Only an I/O-level read failure is reported; callers that treat a missing
// file as an empty dictionary should check os.IsNotExist on the error.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := NewDictionary()
	for _, line := range strings.Split(string(data), "\n") {
		expr, word, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		ch, err := Parse(expr)
		if err != nil {
			continue
		}
		d.entries[ch.String()] = Entry{Chord: ch, Word: strings.TrimSpace(word)}
	}
	return d, nil
}

// Save writes every binding in ascending chord order as
// "<canonical-chord>: <word>\n", replacing the previous file content.
//
// RELIABILITY: the write goes through AtomicWriteFile (write-temp, fsync,
// rename) so a crash mid-save leaves either the old file or the new complete
// file, never a truncated one. The on-disk format is unchanged by this.
func (d *Dictionary) Save(path string) error {
	var b strings.Builder
	for _, e := range d.Entries() {
		b.WriteString(e.Chord.String())
		b.WriteString(": ")
		b.WriteString(e.Word)
		b.WriteByte('\n')
	}
	return util.AtomicWriteFile(path, []byte(b.String()), 0644)
}
