// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chordtab.
package styles

import "testing"

func TestNewTheme_ModeOverride(t *testing.T) {
	dark := NewTheme("dark")
	if !dark.IsDark {
		t.Error("NewTheme(\"dark\").IsDark = false")
	}

	light := NewTheme("light")
	if light.IsDark {
		t.Error("NewTheme(\"light\").IsDark = true")
	}
}

func TestNewTheme_StylesPopulated(t *testing.T) {
	theme := NewTheme("dark")

	// spot-check that the core styles render without panicking and apply
	// some styling
	if theme.SearchTitle.Render("Search chords") == "" {
		t.Error("SearchTitle renders empty")
	}
	if theme.RowSelected.Render("row") == "" {
		t.Error("RowSelected renders empty")
	}
	if theme.StatusBar.Render("status") == "" {
		t.Error("StatusBar renders empty")
	}
}
