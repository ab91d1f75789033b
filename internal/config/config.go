// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and saves the askdoc configuration file.
//
// Configuration lives at ~/.askdoc/config.toml. Missing file or missing
// keys fall back to built-in defaults; an unreadable file is an error so
// typos do not silently revert the user to defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete askdoc configuration.
type Config struct {
	// Backend holds the answering service settings.
	Backend BackendConfig `toml:"backend"`

	// History holds persistence settings.
	History HistoryConfig `toml:"history"`

	// UI holds interface settings.
	UI UIConfig `toml:"ui"`
}

// BackendConfig configures the answering service client.
type BackendConfig struct {
	// URL is the service base URL. The default follows the service's own
	// convention: same host, port 5000.
	URL string `toml:"url"`
	// TimeoutSecs bounds a single ask request.
	TimeoutSecs int `toml:"timeout_secs"`
}

// HistoryConfig configures the persisted log.
type HistoryConfig struct {
	// Dir is the state directory (log, prefs, exports, diagnostics).
	Dir string `toml:"dir"`
	// MaxMessages caps the persisted log length.
	MaxMessages int `toml:"max_messages"`
	// PreviewRunes is the history entry preview length.
	PreviewRunes int `toml:"preview_runes"`
}

// UIConfig configures the interface.
type UIConfig struct {
	// DarkMode is the default theme; the runtime toggle in prefs.json
	// overrides it once the user has chosen.
	DarkMode bool `toml:"dark_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: BackendConfig{
			URL:         "http://localhost:5000",
			TimeoutSecs: 60,
		},
		History: HistoryConfig{
			Dir:          "", // Resolved to ~/.askdoc by StateDir.
			MaxMessages:  2000,
			PreviewRunes: 30,
		},
		UI: UIConfig{
			DarkMode: true,
		},
	}
}

// Timeout returns the ask timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// StateDir resolves the state directory, expanding the default when the
// config does not set one.
func (c Config) StateDir() (string, error) {
	if c.History.Dir != "" {
		return c.History.Dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".askdoc"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// ConfigDir returns the directory holding config.toml (same as the
// default state directory).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".askdoc"), nil
}

// Load reads config.toml, layering it over defaults. A missing file
// yields pure defaults.
func Load() (Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom reads a specific config file.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the configuration atomically.
func (c Config) Save(path string) error {
	var buf []byte
	w := &tomlBuffer{}
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	buf = w.data
	return util.AtomicWriteFile(path, buf, 0644)
}

// tomlBuffer adapts toml.Encoder's io.Writer to a byte slice.
type tomlBuffer struct {
	data []byte
}

func (b *tomlBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate rejects configurations the client cannot run with.
func (c Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.url %q is not a valid URL", c.Backend.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.url scheme %q is not http or https", u.Scheme)
	}
	if c.Backend.TimeoutSecs <= 0 {
		return errors.New("backend.timeout_secs must be positive")
	}
	if c.History.MaxMessages <= 0 {
		return errors.New("history.max_messages must be positive")
	}
	if c.History.PreviewRunes <= 0 {
		return errors.New("history.preview_runes must be positive")
	}
	return nil
}
