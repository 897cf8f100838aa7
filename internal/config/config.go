// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chordtab.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/chordtab-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chordtab configuration.
type Config struct {
	Version string `toml:"version"`

	// Dictionary configuration
	Dictionary DictionaryConfig `toml:"dictionary"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// DictionaryConfig locates the data files and controls reload behavior.
type DictionaryConfig struct {
	// Path is the chord dictionary file (flat text, "<CHORD>: <word>" lines).
	Path string `toml:"path"`
	// WordList is the frequency-ranked word list, one word per line, most
	// frequent first. Supplies the Rank column; optional.
	WordList string `toml:"word_list"`
	// Watch reloads the dictionary in the running browser when the file is
	// edited externally.
	Watch bool `toml:"watch"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme is "auto", "dark", or "light". "auto" detects the terminal
	// background.
	Theme string `toml:"theme"`
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the chordtab configuration directory (~/.chordtab).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".chordtab"), nil
}

// ConfigPath returns the default config file path (~/.chordtab/config.toml).
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load returns the effective configuration: built-in defaults, overridden by
// ~/.chordtab/config.toml when present, overridden by CHORDTAB_* environment
// variables. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.SetDefaults()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from an explicit TOML file. Defaults and
// environment overrides still apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	cfg.SetDefaults()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over an existing config, keeping values the
// file does not mention.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// SetDefaults fills in the built-in default configuration.
func (c *Config) SetDefaults() {
	dir, err := ConfigDir()
	if err != nil {
		// Home lookup failed; fall back to relative paths in the CWD.
		dir = "."
	}
	c.Version = "1"
	c.Dictionary.Path = filepath.Join(dir, "chords.txt")
	c.Dictionary.WordList = filepath.Join(dir, "words.txt")
	c.Dictionary.Watch = true
	c.UI.Theme = "auto"
}

// ApplyEnvOverrides applies CHORDTAB_* environment variables on top of the
// loaded configuration. Recognized variables:
//
//	CHORDTAB_DICTIONARY  dictionary file path
//	CHORDTAB_WORD_LIST   frequency word list path
//	CHORDTAB_WATCH       "true"/"false"
//	CHORDTAB_THEME       "auto", "dark", "light"
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CHORDTAB_DICTIONARY"); v != "" {
		c.Dictionary.Path = v
	}
	if v := os.Getenv("CHORDTAB_WORD_LIST"); v != "" {
		c.Dictionary.WordList = v
	}
	if v := os.Getenv("CHORDTAB_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Dictionary.Watch = b
		}
	}
	if v := os.Getenv("CHORDTAB_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// Validate checks the configuration for values chordtab cannot run with.
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.path must not be empty")
	}
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be \"auto\", \"dark\", or \"light\", got %q", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default path.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration as TOML to an explicit path.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}
