// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the Bubble Tea model for the askdoc TUI.
//
// The model owns the live transcript and drives the request lifecycle
// through the controller: submitting a question appends the user bubble
// and fires an ask command, and the single result message resolves the
// exchange into an answer or error bubble. A history sidebar presents
// past conversations derived from the persisted log; selecting one
// replaces the transcript view without touching the log.
package chat
