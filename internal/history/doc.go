// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history derives conversations and date groups from the flat log.
//
// Nothing in this package is stored. Segment and Group are pure functions
// over a materialized log; the history view recomputes them on every open
// so the view always reflects persisted truth.
package history
