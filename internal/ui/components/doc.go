// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for askdoc:
// message bubbles, the history sidebar, the thinking indicator, the
// status bar, and code block rendering.
package components
