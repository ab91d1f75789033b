// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the chat log and user preferences for askdoc.
package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// LOG STORE
// =============================================================================

// SchemaVersion is the persisted log format version. A file with a
// different version is treated the same as a malformed file: empty history.
const SchemaVersion = 1

// DefaultMaxMessages caps the persisted log length. On save, messages
// beyond the cap are evicted from the front (oldest first) so the file
// cannot grow without bound.
const DefaultMaxMessages = 2000

// logFileName is the single durable key holding the whole message log.
const logFileName = "history.json"

// logEnvelope is the on-disk form: a version field wrapping the flat
// message array.
type logEnvelope struct {
	Version  int             `json:"version"`
	Messages []model.Message `json:"messages"`
}

// Store owns the persisted message log. It is the only writer of the log
// file; everything else reads the log through Load and treats the result
// as immutable.
//
// The store deliberately has no query API. Conversations, date groups, and
// search results are all derived from a fully materialized Load by other
// packages.
type Store struct {
	// BaseDir is the state directory, default ~/.askdoc.
	BaseDir string

	// MaxMessages is the retention cap (0 keeps DefaultMaxMessages).
	MaxMessages int
}

// NewStore creates a log store rooted at ~/.askdoc.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithDir(filepath.Join(homeDir, ".askdoc"))
}

// NewStoreWithDir creates a log store rooted at a custom directory.
func NewStoreWithDir(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &Store{
		BaseDir:     baseDir,
		MaxMessages: DefaultMaxMessages,
	}, nil
}

// LogPath returns the path of the log file.
func (s *Store) LogPath() string {
	return filepath.Join(s.BaseDir, logFileName)
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the full persisted log in append order. A missing, malformed,
// or wrong-version file yields an empty log; corruption is logged for
// diagnostics but never surfaced as an error to the caller.
func (s *Store) Load() []model.Message {
	data, err := os.ReadFile(s.LogPath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: reading %s: %v (treating as empty)", logFileName, err)
		}
		return nil
	}

	var env logEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Printf("storage: malformed %s: %v (treating as empty)", logFileName, err)
		return nil
	}
	if env.Version != SchemaVersion {
		log.Printf("storage: %s has schema version %d, want %d (treating as empty)",
			logFileName, env.Version, SchemaVersion)
		return nil
	}

	return env.Messages
}

// =============================================================================
// SAVE
// =============================================================================

// Save appends newMessages to the persisted log and rewrites the file as a
// whole. Only the messages handed in are added; callers must pass each
// message exactly once, which keeps a reload/save cycle from duplicating
// history. The retention cap is enforced before writing.
func (s *Store) Save(newMessages []model.Message) error {
	if len(newMessages) == 0 {
		return nil
	}

	combined := append(s.Load(), newMessages...)

	max := s.MaxMessages
	if max <= 0 {
		max = DefaultMaxMessages
	}
	if len(combined) > max {
		combined = combined[len(combined)-max:]
	}

	data, err := json.MarshalIndent(logEnvelope{
		Version:  SchemaVersion,
		Messages: combined,
	}, "", "  ")
	if err != nil {
		return err
	}

	return util.AtomicWriteFile(s.LogPath(), data, 0644)
}

// =============================================================================
// CLEAR
// =============================================================================

// Clear erases the entire persisted log. Removing the file is atomic; a
// missing file is already clear.
func (s *Store) Clear() error {
	if err := os.Remove(s.LogPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
