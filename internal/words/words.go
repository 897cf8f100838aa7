// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package words merges frequency-ranked words with their chord bindings.
package words

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jeranaias/chordtab-tui/internal/chord"
)

// =============================================================================
// WORD LIST
// =============================================================================

// Entry is everything known about one word: an optional frequency rank and
// an optional chord binding. Rank 0 means unranked.
type Entry struct {
	Rank  int
	Chord chord.Chord
	Bound bool
}

// Row is one display row for the browser table: rank, word, chord, already
// rendered as strings. Unranked and unbound cells are empty.
type Row struct {
	Rank  string
	Word  string
	Chord string
}

// List holds the merged view the browser renders: every word from the
// frequency list plus every word bound in the dictionary, with ranks and
// chords attached. The rank is supplied externally (word frequency); the
// dictionary core never orders or filters by it.
type List struct {
	entries map[string]Entry
}

// New creates an empty list.
func New() *List {
	return &List{entries: make(map[string]Entry)}
}

// Load reads a frequency word list: one word per line, most frequent first,
// rank = 1-based line position. Lines are trimmed and blank lines are
// skipped without consuming a rank. A word repeated later in the file keeps
// its first (better) rank.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	l := New()
	rank := 0
	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		rank++
		if _, seen := l.entries[word]; seen {
			continue
		}
		l.entries[word] = Entry{Rank: rank}
	}
	return l, nil
}

// =============================================================================
// DICTIONARY MERGE
// =============================================================================

// MergeDictionary replaces all chord bindings on the list with the
// dictionary's current entries. Words bound in the dictionary but absent
// from the frequency list are added unranked. Called whenever the
// dictionary changes; rebuilding beats patching because a rebind can move a
// chord between words.
func (l *List) MergeDictionary(d *chord.Dictionary) {
	for word, e := range l.entries {
		e.Chord = chord.Chord{}
		e.Bound = false
		l.entries[word] = e
	}
	for _, binding := range d.Entries() {
		e := l.entries[binding.Word]
		e.Chord = binding.Chord
		e.Bound = true
		l.entries[binding.Word] = e
	}
}

// Lookup returns the entry for a word.
func (l *List) Lookup(word string) (Entry, bool) {
	e, ok := l.entries[word]
	return e, ok
}

// Len returns the number of known words.
func (l *List) Len() int {
	return len(l.entries)
}

// =============================================================================
// DISPLAY ROWS
// =============================================================================

// Rows returns display rows for every word containing filter as a
// substring, sorted by word. An empty filter matches everything. All
// search/filter decisions live here, never in the dictionary core.
func (l *List) Rows(filter string) []Row {
	rows := make([]Row, 0, len(l.entries))
	for word, e := range l.entries {
		if !strings.Contains(word, filter) {
			continue
		}
		row := Row{Word: word}
		if e.Rank > 0 {
			row.Rank = strconv.Itoa(e.Rank)
		}
		if e.Bound {
			row.Chord = e.Chord.String()
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Word < rows[j].Word
	})
	return rows
}
