// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history derives conversations and date groups from the flat log.
package history

import (
	"github.com/jeranaias/askdoc-tui/internal/model"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is a maximal contiguous run of log messages where every run
// after the first begins with a user message. Conversations are derived
// from the log on demand and never persisted.
type Conversation struct {
	Messages []model.Message
}

// First returns the first message of the conversation. Segment never
// produces an empty conversation, so First is safe on its output.
func (c Conversation) First() model.Message {
	return c.Messages[0]
}

// Preview returns a rune-safe truncated preview of the first message.
func (c Conversation) Preview(maxRunes int) string {
	return c.First().Preview(maxRunes)
}

// =============================================================================
// SEGMENTATION
// =============================================================================

// Segment reconstructs conversation boundaries from the flat log in one
// left-to-right pass. A user message closes the current run (if non-empty)
// and starts a new one; every other message, including a bot message at
// the very start of a legacy log, joins the current run. The final
// non-empty run is flushed.
//
// Segment is deterministic and idempotent: the same log always yields
// structurally identical output. O(n) in log length.
func Segment(log []model.Message) []Conversation {
	var convs []Conversation
	var run []model.Message

	for _, msg := range log {
		if msg.Sender == model.SenderUser && len(run) > 0 {
			convs = append(convs, Conversation{Messages: run})
			run = nil
		}
		run = append(run, msg)
	}

	if len(run) > 0 {
		convs = append(convs, Conversation{Messages: run})
	}

	return convs
}
