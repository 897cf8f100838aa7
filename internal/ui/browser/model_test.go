// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive chord browser for chordtab.
package browser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chordtab-tui/internal/chord"
	"github.com/jeranaias/chordtab-tui/internal/ui/styles"
	"github.com/jeranaias/chordtab-tui/internal/words"
)

// newTestModel builds a browser over a temp dictionary with a few words and
// one existing binding. No watcher.
func newTestModel(t *testing.T) (Model, string) {
	t.Helper()

	dir := t.TempDir()
	dictPath := filepath.Join(dir, "chords.txt")
	wordsPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsPath, []byte("the\nof\nand\nthen\n"), 0644); err != nil {
		t.Fatalf("write word list failed: %v", err)
	}

	dict := chord.NewDictionary()
	c, err := chord.Parse("T+H")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	dict.Insert(c, "the")

	list, err := words.Load(wordsPath)
	if err != nil {
		t.Fatalf("words.Load failed: %v", err)
	}

	m := New(styles.NewTheme("dark"), dict, list, dictPath, nil)
	m.resize(100, 30)
	return m, dictPath
}

func sendKeys(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want browser.Model", next)
		}
	}
	return m
}

func runes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SearchFiltersRows(t *testing.T) {
	m, _ := newTestModel(t)

	if len(m.rows) != 4 {
		t.Fatalf("initial rows = %d, want 4", len(m.rows))
	}

	m = sendKeys(t, m, runes("th"))
	if len(m.rows) != 2 {
		t.Fatalf("rows after search \"th\" = %d, want 2", len(m.rows))
	}
	for _, r := range m.rows {
		if !strings.Contains(r.Word, "th") {
			t.Errorf("row %q does not match filter", r.Word)
		}
	}

	// ctrl+h clears the whole search
	m = sendKeys(t, m, tea.KeyMsg{Type: tea.KeyCtrlH})
	if len(m.rows) != 4 {
		t.Errorf("rows after clear = %d, want 4", len(m.rows))
	}
}

func TestModel_SelectionMoves(t *testing.T) {
	m, _ := newTestModel(t)

	if m.results.Cursor() != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.results.Cursor())
	}
	m = sendKeys(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.results.Cursor() != 2 {
		t.Errorf("cursor after two downs = %d, want 2", m.results.Cursor())
	}
	m = sendKeys(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.results.Cursor() != 1 {
		t.Errorf("cursor after up = %d, want 1", m.results.Cursor())
	}
}

func TestModel_CaptureCommitSaves(t *testing.T) {
	m, dictPath := newTestModel(t)

	// rows sorted by word: and, of, the, then -> select "of" (index 1)
	m = sendKeys(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter}, // start capture
	)
	if m.mode != ModeCapture {
		t.Fatalf("mode = %v, want ModeCapture", m.mode)
	}
	if m.captureWord != "of" {
		t.Fatalf("captureWord = %q, want %q", m.captureWord, "of")
	}

	m = sendKeys(t, m, runes("fo"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeBrowse {
		t.Fatalf("mode after commit = %v, want ModeBrowse", m.mode)
	}

	ofChord, _ := chord.Parse("F+O")
	word, ok := m.dict.Lookup(ofChord)
	if !ok || word != "of" {
		t.Errorf("dictionary binding = (%q, %v), want (\"of\", true)", word, ok)
	}

	// the commit saved to disk
	data, err := os.ReadFile(dictPath)
	if err != nil {
		t.Fatalf("dictionary file not written: %v", err)
	}
	if !strings.Contains(string(data), "F+O: of\n") {
		t.Errorf("saved file missing binding, got %q", string(data))
	}
}

func TestModel_CaptureRejectsBadKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m = sendKeys(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // capture on first row

	m = sendKeys(t, m, runes("a"), runes("/"))
	if m.statusKind != statusError {
		t.Error("non-letter key did not set an error status")
	}
	if m.capture.String() != "A" {
		t.Errorf("capture = %q, want %q", m.capture.String(), "A")
	}

	m = sendKeys(t, m, runes("a"))
	if m.capture.String() != "A" {
		t.Errorf("duplicate key changed capture to %q", m.capture.String())
	}
}

func TestModel_CaptureCancel(t *testing.T) {
	m, dictPath := newTestModel(t)
	m = sendKeys(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		runes("xy"),
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if m.mode != ModeBrowse {
		t.Fatalf("mode after cancel = %v, want ModeBrowse", m.mode)
	}
	if _, err := os.Stat(dictPath); !os.IsNotExist(err) {
		t.Error("cancelled capture should not have saved the dictionary")
	}
}

func TestModel_UnbindRemovesAndSaves(t *testing.T) {
	m, dictPath := newTestModel(t)

	// select "the" (index 2 in and/of/the/then) which has a binding
	m = sendKeys(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyCtrlD},
	)

	if m.dict.Len() != 0 {
		t.Errorf("dictionary still has %d entries", m.dict.Len())
	}
	data, err := os.ReadFile(dictPath)
	if err != nil {
		t.Fatalf("dictionary file not written: %v", err)
	}
	if strings.TrimSpace(string(data)) != "" {
		t.Errorf("saved file should be empty, got %q", string(data))
	}
}

func TestModel_ReloadMessage(t *testing.T) {
	m, _ := newTestModel(t)

	fresh := chord.NewDictionary()
	c, _ := chord.Parse("A+N+D")
	fresh.Insert(c, "and")

	m = sendKeys(t, m, dictReloadedMsg{dict: fresh})
	if m.dict.Len() != 1 {
		t.Fatalf("dictionary after reload has %d entries, want 1", m.dict.Len())
	}
	entry, _ := m.list.Lookup("and")
	if !entry.Bound || entry.Chord.String() != "A+D+N" {
		t.Errorf("merged entry for \"and\" = %+v", entry)
	}
	entry, _ = m.list.Lookup("the")
	if entry.Bound {
		t.Error("stale binding for \"the\" survived reload")
	}
}
