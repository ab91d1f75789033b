// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/jeranaias/askdoc-tui/internal/util"
)

// prefsFileName is the durable key for user preferences. It is separate
// from the log file so preference writes never touch history.
const prefsFileName = "prefs.json"

// Prefs holds the persisted user preferences.
type Prefs struct {
	DarkMode bool `json:"dark_mode"`
}

// LoadPrefs reads preferences from the state directory. Missing or
// malformed preferences fall back to defaults.
func (s *Store) LoadPrefs() Prefs {
	data, err := os.ReadFile(s.prefsPath())
	if err != nil {
		return Prefs{}
	}

	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("storage: malformed %s: %v (using defaults)", prefsFileName, err)
		return Prefs{}
	}
	return p
}

// SavePrefs persists preferences atomically.
func (s *Store) SavePrefs(p Prefs) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.prefsPath(), data, 0644)
}

func (s *Store) prefsPath() string {
	return filepath.Join(s.BaseDir, prefsFileName)
}
