// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the chat log and user preferences for askdoc.
//
// Two files live in the state directory (~/.askdoc by default):
//
//   - history.json: the whole message log as one versioned JSON document.
//     Save is read-modify-write of the entire file; there is no partial
//     update. A corrupt or wrong-version file reads as empty history.
//   - prefs.json: user preferences (currently the dark-mode flag).
//
// All writes go through util.AtomicWriteFile so a crash never leaves a
// half-written file behind.
package storage
