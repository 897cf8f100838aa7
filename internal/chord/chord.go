// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chord implements the chord-to-word dictionary core for chordtab.
package chord

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKeyToken is returned by Parse when a "+"-separated segment is not
// exactly one character after trimming.
var ErrInvalidKeyToken = errors.New("chord segment is not a single character")

// =============================================================================
// CHORD TYPE
// =============================================================================

// Chord is a combination of distinct keys pressed together. The keys are held
// sorted in ascending character order with no duplicates; the canonical "+"
// joined string is derived from that order, so two chords over the same key
// set always render identically.
type Chord struct {
	keys []rune
}

// Insert adds a single key to the chord, case-folding ASCII letters to
// uppercase first. It returns false without mutating the chord when the
// folded key is not an uppercase ASCII letter or is already present.
//
// The new key is placed immediately before the first existing key that is
// strictly greater, or appended when no such key exists. This is the
// authoritative canonicalization rule: the result is identical to rebuilding
// the chord from its full key set sorted ascending.
func (c *Chord) Insert(key rune) bool {
	key = foldKey(key)
	if key < 'A' || key > 'Z' {
		return false
	}
	return c.add(key)
}

// add places key in sorted position, rejecting duplicates. No validation;
// callers fold and filter first.
func (c *Chord) add(key rune) bool {
	for i, k := range c.keys {
		if k == key {
			return false
		}
		if k > key {
			c.keys = append(c.keys, 0)
			copy(c.keys[i+1:], c.keys[i:])
			c.keys[i] = key
			return true
		}
	}
	c.keys = append(c.keys, key)
	return true
}

// String returns the canonical form: keys in ascending order joined by "+".
// The empty chord renders as the empty string.
func (c Chord) String() string {
	if len(c.keys) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(c.keys)*2 - 1)
	for i, k := range c.keys {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteRune(k)
	}
	return b.String()
}

// Keys returns an independent copy of the chord's keys in ascending order.
func (c Chord) Keys() []rune {
	return append([]rune(nil), c.keys...)
}

// clone returns a Chord with its own backing storage. Plain struct copies
// share the key slice, so a later Insert on one copy could scribble over the
// other's keys; the dictionary clones at every ownership boundary instead.
func (c Chord) clone() Chord {
	return Chord{keys: append([]rune(nil), c.keys...)}
}

// Len returns the number of keys in the chord.
func (c Chord) Len() int {
	return len(c.keys)
}

// IsEmpty reports whether the chord has no keys.
func (c Chord) IsEmpty() bool {
	return len(c.keys) == 0
}

// Clear removes all keys from the chord.
func (c *Chord) Clear() {
	c.keys = c.keys[:0]
}

// Equal reports whether two chords cover the same key set. Because the
// canonical form is unique per key set, this is canonical-string equality.
func (c Chord) Equal(other Chord) bool {
	if len(c.keys) != len(other.keys) {
		return false
	}
	for i, k := range c.keys {
		if other.keys[i] != k {
			return false
		}
	}
	return true
}

// Less orders chords by plain string comparison of their canonical forms.
// Note this is not a key-count order: "A+B" sorts before "B" because 'A'
// compares below 'B'. Storage and display both rely on this exact order.
func (c Chord) Less(other Chord) bool {
	return c.String() < other.String()
}

// =============================================================================
// PARSING
// =============================================================================

// Parse builds a Chord from a textual expression such as "b+a" or " A + C ".
// The input is split on "+", each segment is trimmed and must be exactly one
// character (ErrInvalidKeyToken otherwise), and ASCII letters are folded to
// uppercase. Duplicate keys are merged silently, so "A+a+B" parses to "A+B".
// Empty or whitespace-only input yields the empty chord.
func Parse(text string) (Chord, error) {
	var c Chord
	if strings.TrimSpace(text) == "" {
		return c, nil
	}
	for _, segment := range strings.Split(text, "+") {
		segment = strings.TrimSpace(segment)
		runes := []rune(segment)
		if len(runes) != 1 {
			return Chord{}, fmt.Errorf("%w: %q", ErrInvalidKeyToken, segment)
		}
		c.add(foldKey(runes[0]))
	}
	return c, nil
}

// foldKey uppercases ASCII letters and leaves everything else untouched.
func foldKey(key rune) rune {
	if key >= 'a' && key <= 'z' {
		return key - ('a' - 'A')
	}
	return key
}
