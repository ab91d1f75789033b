// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI surfaces of askdoc: one-shot
// questions, the plain interactive REPL, and the small maintenance
// commands (history, export, clear, status). All of them drive the same
// controller and store as the TUI, so the message log stays consistent
// no matter which surface wrote it.
package cli
