// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the Bubble Tea model for the askdoc TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface:
//   - Ask: result of an in-flight question
//   - Health: backend reachability probes
//   - Maintenance: export, clear, and search results
package chat

import (
	"github.com/jeranaias/askdoc-tui/internal/backend"
	"github.com/jeranaias/askdoc-tui/internal/search"
)

// =============================================================================
// ASK MESSAGES
// =============================================================================

// AskResultMsg delivers the outcome of the in-flight question. Exactly
// one of Answer or Err is set.
type AskResultMsg struct {
	Answer *backend.Answer
	Err    error
}

// =============================================================================
// HEALTH MESSAGES
// =============================================================================

// PingResultMsg reports whether the answering service responded.
type PingResultMsg struct {
	Alive bool
}

// pingTickMsg schedules the next periodic health probe.
type pingTickMsg struct{}

// =============================================================================
// MAINTENANCE MESSAGES
// =============================================================================

// ExportDoneMsg reports the outcome of a transcript export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// ClearDoneMsg reports the outcome of clearing the log.
type ClearDoneMsg struct {
	Err error
}

// SearchResultMsg delivers full-text search matches.
type SearchResultMsg struct {
	Query   string
	Results []search.Result
	Err     error
}
