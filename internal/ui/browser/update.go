// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive chord browser for chordtab.
package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chordtab-tui/internal/chord"
)

// =============================================================================
// MESSAGES
// =============================================================================

// dictReloadedMsg carries a freshly loaded dictionary after an external edit.
type dictReloadedMsg struct {
	dict *chord.Dictionary
}

// watchErrMsg reports a watcher failure; watching stops after it.
type watchErrMsg struct {
	err error
}

// watchClosedMsg is delivered once when the watcher shuts down.
type watchClosedMsg struct{}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts cursor blinking and, when a watcher is attached, the external
// reload loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.awaitWatchCmd())
}

// awaitWatchCmd waits for the next watcher message.
func (m Model) awaitWatchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		msg, ok := <-w.Messages()
		if !ok {
			return watchClosedMsg{}
		}
		return msg
	}
}

// Update handles incoming events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case dictReloadedMsg:
		m.dict = msg.dict
		m.list.MergeDictionary(m.dict)
		m.refreshRows()
		m.setStatus(statusInfo, "dictionary reloaded from disk")
		return m, m.awaitWatchCmd()

	case watchErrMsg:
		m.setStatus(statusError, fmt.Sprintf("watch failed: %v", msg.err))
		return m, nil

	case watchClosedMsg:
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.mode == ModeCapture {
			return m.updateCapture(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// =============================================================================
// BROWSE MODE
// =============================================================================

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.results.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.results.MoveDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.results.MoveUp(m.results.Height())
	case key.Matches(msg, m.keys.PageDown):
		m.results.MoveDown(m.results.Height())
	case key.Matches(msg, m.keys.Home):
		m.results.GotoTop()
	case key.Matches(msg, m.keys.End):
		m.results.GotoBottom()

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.refreshRows()

	case key.Matches(msg, m.keys.Capture):
		row := m.selectedRow()
		if row == nil {
			m.setStatus(statusError, "no word selected")
			break
		}
		m.mode = ModeCapture
		m.captureWord = row.Word
		m.capture.Clear()
		m.setStatus(statusNone, "")

	case key.Matches(msg, m.keys.Unbind):
		row := m.selectedRow()
		if row == nil {
			m.setStatus(statusError, "no word selected")
			break
		}
		entry, ok := m.list.Lookup(row.Word)
		if !ok || !entry.Bound {
			m.setStatus(statusError, fmt.Sprintf("%q has no chord bound", row.Word))
			break
		}
		removed, _ := m.dict.Remove(entry.Chord)
		m.persist(fmt.Sprintf("removed %s (was %q)", entry.Chord.String(), removed))

	case key.Matches(msg, m.keys.Cancel):
		// esc in browse mode quits, like the original browser
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.refreshRows()
		}
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// CAPTURE MODE
// =============================================================================

func (m Model) updateCapture(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeBrowse
		m.capture.Clear()
		m.setStatus(statusInfo, "capture cancelled")

	case key.Matches(msg, m.keys.ClearSearch):
		m.capture.Clear()
		m.setStatus(statusNone, "")

	case key.Matches(msg, m.keys.Confirm):
		if m.capture.IsEmpty() {
			m.setStatus(statusError, "chord is empty; type some keys first")
			break
		}
		prev, rebound := m.dict.Insert(m.capture, m.captureWord)
		label := fmt.Sprintf("bound %s to %q", m.capture.String(), m.captureWord)
		if rebound {
			label = fmt.Sprintf("rebound %s to %q (was %q)", m.capture.String(), m.captureWord, prev)
		}
		m.mode = ModeBrowse
		m.capture.Clear()
		m.persist(label)

	default:
		if msg.Type != tea.KeyRunes {
			break
		}
		for _, r := range msg.Runes {
			if !m.capture.Insert(r) {
				m.setStatus(statusError, fmt.Sprintf("key %q rejected (letters only, no repeats)", r))
			} else {
				m.setStatus(statusNone, "")
			}
		}
	}
	return m, nil
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// persist saves the dictionary and refreshes the visible rows. okStatus is
// shown on success; a save failure overrides it with the error.
func (m *Model) persist(okStatus string) {
	m.list.MergeDictionary(m.dict)
	m.refreshRows()
	if err := m.dict.Save(m.dictPath); err != nil {
		m.setStatus(statusError, fmt.Sprintf("save failed: %v", err))
		return
	}
	m.setStatus(statusInfo, okStatus)
}
