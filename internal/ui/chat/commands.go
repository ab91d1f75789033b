// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/askdoc-tui/internal/backend"
	"github.com/jeranaias/askdoc-tui/internal/export"
	"github.com/jeranaias/askdoc-tui/internal/history"
	"github.com/jeranaias/askdoc-tui/internal/search"
	"github.com/jeranaias/askdoc-tui/internal/storage"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// pingInterval is how often the service is re-probed for the status bar.
const pingInterval = 30 * time.Second

// AskCmd sends the question to the answering service. The context is
// bounded by the configured timeout; the client maps every failure
// shape to an error the controller knows how to present.
func AskCmd(client *backend.Client, question string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		answer, err := client.Ask(ctx, question)
		if err != nil {
			return AskResultMsg{Err: err}
		}
		return AskResultMsg{Answer: answer}
	}
}

// PingCmd probes the service root to drive the status bar indicator.
func PingCmd(client *backend.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return PingResultMsg{Alive: client.Ping(ctx) == nil}
	}
}

// pingTickCmd schedules the next periodic probe.
func pingTickCmd() tea.Cmd {
	return tea.Tick(pingInterval, func(time.Time) tea.Msg {
		return pingTickMsg{}
	})
}

// ExportCmd writes the full log as a plain transcript into the state
// directory's exports folder.
func ExportCmd(store *storage.Store) tea.Cmd {
	return func() tea.Msg {
		convs := history.Segment(store.Load())
		dir := filepath.Join(store.BaseDir, "exports")
		path, err := export.ToFile(convs, export.NewTextExporter(), dir)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// ClearCmd erases the persisted log.
func ClearCmd(store *storage.Store) tea.Cmd {
	return func() tea.Msg {
		return ClearDoneMsg{Err: store.Clear()}
	}
}

// SearchCmd runs a full-text query against the log index.
func SearchCmd(idx *search.LogIndex, query string) tea.Cmd {
	return func() tea.Msg {
		if idx == nil {
			return SearchResultMsg{Query: query, Err: search.ErrNotIndexed}
		}
		results, err := idx.Search(query, 50)
		return SearchResultMsg{Query: query, Results: results, Err: err}
	}
}
