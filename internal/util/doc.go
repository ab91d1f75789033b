// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for askdoc.
//
// It contains the atomic file write used by every persistence path and
// width-aware string truncation for list rows and previews. Anything with
// domain knowledge belongs elsewhere.
package util
