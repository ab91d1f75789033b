// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat turns.
//
// A Message is one turn of the conversation between the user and the
// answering backend. The flat, append-only sequence of messages (the log)
// is the single source of truth for everything the client shows; richer
// structures such as conversations and date groups are derived from it on
// demand by the history package and never stored.
package model
