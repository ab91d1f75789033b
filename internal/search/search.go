// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search maintains a full-text index over the chat log.
//
// The index is derived state: the JSON log is the durable record, and
// the SQLite database can be rebuilt from it at any time. A file
// watcher keeps the index current while the app runs.
package search

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/storage"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotIndexed    = errors.New("log not indexed")
	ErrDatabaseError = errors.New("database error")
)

// =============================================================================
// SCHEMA
// =============================================================================

// Schema is the SQLite schema for the message index with FTS5.
const Schema = `
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    msg_id TEXT NOT NULL UNIQUE,
    sender TEXT NOT NULL,
    text TEXT NOT NULL,
    timestamp INTEGER NOT NULL, -- Unix timestamp
    is_error INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp);

CREATE VIRTUAL TABLE IF NOT EXISTS messages_fts USING fts5(
    text,
    content='messages',
    content_rowid='id',
    tokenize='porter unicode61'
);

CREATE TRIGGER IF NOT EXISTS messages_ai AFTER INSERT ON messages BEGIN
    INSERT INTO messages_fts(rowid, text) VALUES (new.id, new.text);
END;

CREATE TRIGGER IF NOT EXISTS messages_ad AFTER DELETE ON messages BEGIN
    INSERT INTO messages_fts(messages_fts, rowid, text) VALUES ('delete', old.id, old.text);
END;
`

// InitMetadata seeds the metadata table.
const InitMetadata = `
INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('last_rebuild', '0');
`

// =============================================================================
// LOG INDEX
// =============================================================================

// LogIndex is a rebuildable full-text index over the message log.
type LogIndex struct {
	db      *sql.DB
	store   *storage.Store
	dbPath  string
	watcher *logWatcher
	mu      sync.RWMutex

	lastRebuild  time.Time
	messageCount int
}

// Open opens (creating if needed) the index database next to the log
// in the store's base directory.
func Open(store *storage.Store) (*LogIndex, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}

	dbPath := filepath.Join(store.BaseDir, "search.db")
	if err := os.MkdirAll(store.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open index database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	if _, err := db.Exec(InitMetadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize metadata: %w", err)
	}

	idx := &LogIndex{
		db:     db,
		store:  store,
		dbPath: dbPath,
	}
	idx.loadStats()
	return idx, nil
}

// Close stops the watcher and releases the database.
func (idx *LogIndex) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.watcher != nil {
		idx.watcher.Close()
		idx.watcher = nil
	}
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// =============================================================================
// REBUILD
// =============================================================================

// Rebuild replaces the index contents with the current log. The whole
// log is small (a few thousand messages at most) so a full rebuild is
// cheaper than tracking deltas.
func (idx *LogIndex) Rebuild(ctx context.Context) error {
	messages := idx.store.Load()

	tx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages"); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}

	for _, msg := range messages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		isError := 0
		if msg.IsError {
			isError = 1
		}
		_, err := tx.Exec(`
			INSERT INTO messages (msg_id, sender, text, timestamp, is_error)
			VALUES (?, ?, ?, ?, ?)
		`, msg.ID, string(msg.Sender), msg.Text, msg.Timestamp.Unix(), isError)
		if err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}

	now := time.Now()
	if _, err := tx.Exec("UPDATE metadata SET value = ? WHERE key = 'last_rebuild'", now.Unix()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}

	idx.mu.Lock()
	idx.lastRebuild = now
	idx.messageCount = len(messages)
	idx.mu.Unlock()

	return nil
}

// loadStats restores statistics from an existing database.
func (idx *LogIndex) loadStats() {
	var lastRebuild int64
	if err := idx.db.QueryRow("SELECT value FROM metadata WHERE key = 'last_rebuild'").Scan(&lastRebuild); err == nil && lastRebuild > 0 {
		idx.lastRebuild = time.Unix(lastRebuild, 0)
	}
	idx.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&idx.messageCount)
}

// IsIndexed reports whether a rebuild has ever completed.
func (idx *LogIndex) IsIndexed() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return !idx.lastRebuild.IsZero()
}

// =============================================================================
// SEARCH
// =============================================================================

// Result is a single matching message.
type Result struct {
	Message model.Message
	// Rank is the FTS relevance rank (more negative is better, per
	// SQLite's bm25 convention).
	Rank float64
}

// Search finds messages matching the query, most relevant first.
// An empty or all-whitespace query yields no results.
func (idx *LogIndex) Search(query string, limit int) ([]Result, error) {
	if !idx.IsIndexed() {
		return nil, ErrNotIndexed
	}
	if limit <= 0 {
		limit = 50
	}

	ftsQuery := buildFTSQuery(query)
	if ftsQuery == "" {
		return []Result{}, nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	rows, err := idx.db.Query(`
		SELECT m.msg_id, m.sender, m.text, m.timestamp, m.is_error, fts.rank
		FROM messages_fts fts
		JOIN messages m ON m.id = fts.rowid
		WHERE messages_fts MATCH ?
		ORDER BY fts.rank
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r       Result
			sender  string
			ts      int64
			isError int
		)
		if err := rows.Scan(&r.Message.ID, &sender, &r.Message.Text, &ts, &isError, &r.Rank); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		r.Message.Sender = model.Sender(sender)
		r.Message.Timestamp = time.Unix(ts, 0)
		r.Message.IsError = isError != 0
		results = append(results, r)
	}
	return results, rows.Err()
}

// buildFTSQuery turns free-form user input into an FTS5 query: each
// token becomes a quoted prefix term, joined with AND.
func buildFTSQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, `"`, `""`)
		terms = append(terms, `"`+f+`"*`)
	}
	return strings.Join(terms, " AND ")
}
