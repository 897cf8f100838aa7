// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive chord browser for chordtab.
package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chordtab-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the search box, the results table, and the status bar.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	search := m.theme.SearchBox.Width(width - 2).Render(
		m.theme.SearchTitle.Render("Search chords") + "\n" + m.search.View(),
	)
	results := m.theme.TableBorder.Render(m.results.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		search,
		results,
		m.statusBar(width),
	)
}

// statusBar renders the bottom line: either the capture prompt, a transient
// status message, or the counts-and-hints default.
func (m Model) statusBar(width int) string {
	var left string
	switch {
	case m.mode == ModeCapture:
		left = m.theme.StatusCapture.Render(
			fmt.Sprintf("binding %q  →  %s_", m.captureWord, m.capture.String()),
		)
		// rejected keys stay visible next to the capture prompt
		if m.statusKind == statusError {
			left += "  " + m.theme.StatusError.Render(m.status)
		}
	case m.statusKind == statusError:
		left = m.theme.StatusError.Render(m.status)
	case m.statusKind == statusInfo && m.status != "":
		left = m.theme.StatusInfo.Render(m.status)
	default:
		left = fmt.Sprintf("%d words · %d bound", m.list.Len(), m.dict.Len())
	}

	hints := m.hints()
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 1 {
		// not enough room: drop the hints before clipping the message
		hints = ""
		gap = width - 2 - lipgloss.Width(left)
		if gap < 1 {
			left = util.TruncateWidth(left, width-2)
			gap = 0
		}
	}

	return m.theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + hints)
}

// hints renders the mode-appropriate shortcut reminders.
func (m Model) hints() string {
	type hint struct{ key, desc string }
	var items []hint
	if m.mode == ModeCapture {
		items = []hint{
			{"enter", "confirm"},
			{"C-h", "clear"},
			{"esc", "cancel"},
		}
	} else {
		items = []hint{
			{"enter", "bind"},
			{"C-d", "unbind"},
			{"C-h", "clear"},
			{"C-c", "quit"},
		}
	}

	parts := make([]string, len(items))
	for i, h := range items {
		parts[i] = m.theme.ShortcutKey.Render(h.key) + " " + m.theme.ShortcutDesc.Render(h.desc)
	}
	return strings.Join(parts, "  ")
}
