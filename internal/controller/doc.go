// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller owns the question lifecycle state machine.
//
// Exactly one question may be in flight at a time. The controller is the
// only entry point for starting a cycle (Begin) and the only place the
// terminal transitions (Resolve, Fail) run, which is also where each
// completed exchange is persisted. There is no retry and no queueing: a
// submission while busy is dropped, and a failed ask requires the user to
// resubmit.
package controller
