// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chordtab.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	assert.NotEmpty(t, cfg.Dictionary.Path)
	assert.NotEmpty(t, cfg.Dictionary.WordList)
	assert.True(t, cfg.Dictionary.Watch)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[dictionary]
path = "/tmp/my-chords.txt"
watch = false

[ui]
theme = "dark"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/my-chords.txt", cfg.Dictionary.Path)
	assert.False(t, cfg.Dictionary.Watch)
	assert.Equal(t, "dark", cfg.UI.Theme)
	// not mentioned in the file: default survives
	assert.NotEmpty(t, cfg.Dictionary.WordList)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CHORDTAB_DICTIONARY", "/tmp/env-chords.txt")
	t.Setenv("CHORDTAB_WATCH", "false")
	t.Setenv("CHORDTAB_THEME", "light")

	cfg := &Config{}
	cfg.SetDefaults()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/tmp/env-chords.txt", cfg.Dictionary.Path)
	assert.False(t, cfg.Dictionary.Watch)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	cfg.UI.Theme = "solarized"
	assert.Error(t, cfg.Validate())

	cfg.UI.Theme = "auto"
	cfg.Dictionary.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{}
	cfg.SetDefaults()
	cfg.Dictionary.Path = "/tmp/rt-chords.txt"
	cfg.UI.Theme = "light"
	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Dictionary.Path, loaded.Dictionary.Path)
	assert.Equal(t, cfg.UI.Theme, loaded.UI.Theme)
}
