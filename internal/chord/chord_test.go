// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chord implements the chord-to-word dictionary core for chordtab.
package chord

import (
	"errors"
	"testing"
)

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParse_Normalization(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"A+B", "A+B"},
		{"B+A", "A+B"},
		{" a + b ", "A+B"},
		{"  B + a+c ", "A+B+C"},
		{"c+B+a", "A+B+C"},
		{"d", "D"},
		{"", ""},
		{"   ", ""},
		// parse merges duplicate keys silently
		{"A+a+B", "A+B"},
		{"b+b", "B"},
	}

	for _, tc := range testCases {
		c, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.input, err)
			continue
		}
		if c.String() != tc.expected {
			t.Errorf("Parse(%q) = %q, want %q", tc.input, c.String(), tc.expected)
		}
	}
}

func TestParse_InvalidToken(t *testing.T) {
	invalid := []string{
		"AA+B",
		"aa+b",
		"A++B",
		"A+",
		"+",
		"A+BC",
	}

	for _, input := range invalid {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidKeyToken) {
			t.Errorf("Parse(%q): expected ErrInvalidKeyToken, got %v", input, err)
		}
	}
}

func TestParse_EqualChordsCompareEqual(t *testing.T) {
	c1, err := Parse("  B + a+c ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c2, err := Parse("c+B+a")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !c1.Equal(c2) {
		t.Errorf("chords %q and %q should be equal", c1.String(), c2.String())
	}
	if c1.String() != "A+B+C" {
		t.Errorf("canonical form = %q, want %q", c1.String(), "A+B+C")
	}
}

// =============================================================================
// INSERT TESTS
// =============================================================================

func TestInsert_Ordering(t *testing.T) {
	testCases := []struct {
		name     string
		base     string
		key      rune
		expected string
		mutated  bool
	}{
		{"front", "B+D", 'A', "A+B+D", true},
		{"middle", "B+D", 'C', "B+C+D", true},
		{"end", "B+D", 'E', "B+D+E", true},
		{"lowercase folds", "B+D", 'a', "A+B+D", true},
		{"duplicate rejected", "B+D", 'b', "B+D", false},
		{"duplicate exact", "B+D", 'D', "B+D", false},
		{"non-letter rejected", "B+D", '/', "B+D", false},
		{"digit rejected", "B+D", '1', "B+D", false},
		{"empty chord", "", 'D', "D", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse(tc.base)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.base, err)
			}

			mutated := c.Insert(tc.key)
			if mutated != tc.mutated {
				t.Errorf("Insert(%q) returned %v, want %v", tc.key, mutated, tc.mutated)
			}
			if c.String() != tc.expected {
				t.Errorf("after Insert(%q): %q, want %q", tc.key, c.String(), tc.expected)
			}
		})
	}
}

func TestInsert_MatchesFullResort(t *testing.T) {
	// The positional insert rule must agree with rebuilding the chord from
	// the full key set sorted ascending.
	var incremental Chord
	for _, key := range "QWERTYQAZXSW" {
		incremental.Insert(key)
	}

	rebuilt, err := Parse("A+E+Q+R+S+T+W+X+Y+Z")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !incremental.Equal(rebuilt) {
		t.Errorf("incremental = %q, rebuilt = %q", incremental.String(), rebuilt.String())
	}
}

// =============================================================================
// VALUE SEMANTICS TESTS
// =============================================================================

func TestChord_ClearAndEmpty(t *testing.T) {
	c, err := Parse("A+B")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.IsEmpty() {
		t.Error("chord with keys reported empty")
	}

	c.Clear()
	if !c.IsEmpty() {
		t.Error("cleared chord not empty")
	}
	if c.String() != "" {
		t.Errorf("empty chord renders as %q, want empty string", c.String())
	}
}

func TestChord_KeysIndependentCopy(t *testing.T) {
	c, err := Parse("A+B")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	keys := c.Keys()
	keys[0] = 'Z'
	if c.String() != "A+B" {
		t.Errorf("mutating Keys() result changed the chord: %q", c.String())
	}
}

func TestChord_StringOrderNotSizeOrder(t *testing.T) {
	// "A+B" sorts before "B": the order is lexicographic on the canonical
	// string, not by key count.
	ab, _ := Parse("A+B")
	b, _ := Parse("B")

	if !ab.Less(b) {
		t.Errorf("expected %q < %q", ab.String(), b.String())
	}
	if b.Less(ab) {
		t.Errorf("expected %q not < %q", b.String(), ab.String())
	}
}
