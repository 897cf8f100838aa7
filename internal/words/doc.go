// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package words merges frequency-ranked words with their chord bindings.
//
// The browser table shows three columns per word: rank, word, chord. The
// rank comes from a plain frequency word list (one word per line, most
// frequent first); the chord comes from the dictionary. This package owns
// that merge and the substring filtering behind the search box, keeping the
// dictionary core free of any rank or search logic.
package words
