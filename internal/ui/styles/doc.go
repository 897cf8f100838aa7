// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for chordtab.
//
// The palette uses Lip Gloss AdaptiveColor throughout so every style picks
// the right variant for light and dark terminal backgrounds. Theme bundles
// the concrete styles the browser renders with: search box, results table,
// and status bar.
package styles
