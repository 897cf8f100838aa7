// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive chord browser for chordtab.
package browser

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chordtab-tui/internal/chord"
	"github.com/jeranaias/chordtab-tui/internal/ui/styles"
	"github.com/jeranaias/chordtab-tui/internal/words"
)

// =============================================================================
// MODEL
// =============================================================================

// Mode is the browser's input mode.
type Mode int

const (
	// ModeBrowse: typing edits the search, arrows move the selection.
	ModeBrowse Mode = iota
	// ModeCapture: typing feeds keys into the chord being bound.
	ModeCapture
)

// statusKind selects the status message style.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusError
)

// Model is the Bubble Tea model for the chord browser.
type Model struct {
	theme    *styles.Theme
	keys     KeyMap
	dict     *chord.Dictionary
	list     *words.List
	dictPath string
	watcher  *Watcher

	search  textinput.Model
	results table.Model
	rows    []words.Row

	mode        Mode
	capture     chord.Chord
	captureWord string

	status     string
	statusKind statusKind

	width  int
	height int
}

// New creates a browser over an already-loaded dictionary and word list.
// dictPath is where edits are saved. watcher may be nil to disable external
// reloads.
func New(theme *styles.Theme, dict *chord.Dictionary, list *words.List, dictPath string, watcher *Watcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to search words..."
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Cyan)
	ti.Focus()

	columns := []table.Column{
		{Title: "Rank", Width: 10},
		{Title: "Word", Width: 24},
		{Title: "Chord", Width: 24},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
	)
	ts := table.DefaultStyles()
	ts.Header = theme.TableHeader
	ts.Cell = theme.TableCell
	ts.Selected = theme.RowSelected
	tbl.SetStyles(ts)

	m := Model{
		theme:    theme,
		keys:     DefaultKeyMap(),
		dict:     dict,
		list:     list,
		dictPath: dictPath,
		watcher:  watcher,
		search:   ti,
		results:  tbl,
	}
	m.list.MergeDictionary(m.dict)
	m.refreshRows()
	return m
}

// =============================================================================
// ROW MANAGEMENT
// =============================================================================

// refreshRows rebuilds the table rows from the current search text. Called
// whenever the search or the dictionary changes.
func (m *Model) refreshRows() {
	m.rows = m.list.Rows(m.search.Value())

	tableRows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		tableRows[i] = table.Row{r.Rank, r.Word, r.Chord}
	}
	m.results.SetRows(tableRows)

	if cursor := m.results.Cursor(); cursor >= len(m.rows) && len(m.rows) > 0 {
		m.results.SetCursor(len(m.rows) - 1)
	}
}

// selectedRow returns the row under the cursor, or nil when the table is
// empty.
func (m *Model) selectedRow() *words.Row {
	if len(m.rows) == 0 {
		return nil
	}
	cursor := m.results.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[cursor]
}

// setStatus replaces the transient status message.
func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// =============================================================================
// LAYOUT
// =============================================================================

// resize recomputes component dimensions for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.search.Width = width - 8

	// equal thirds, minus table chrome
	colWidth := (width - 8) / 3
	if colWidth < 8 {
		colWidth = 8
	}
	m.results.SetColumns([]table.Column{
		{Title: "Rank", Width: colWidth},
		{Title: "Word", Width: colWidth},
		{Title: "Chord", Width: colWidth},
	})
	m.results.SetWidth(width - 2)

	// search box (3) + table border (2) + header (1) + status bar (1)
	tableHeight := height - 7
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.results.SetHeight(tableHeight)
}
