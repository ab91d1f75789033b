// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat turns.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable label for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Assistant"
	default:
		return string(s)
	}
}

// Valid reports whether the sender is a known value. Unknown senders can
// appear in hand-edited or legacy history files.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single turn in the chat log. Messages are immutable once
// created; the log's append order is authoritative for ordering, the
// timestamp is informational only.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// IsError marks a bot turn that carries an error surfaced to the user.
	// Error turns render with the alternate background.
	IsError bool `json:"is_error,omitempty"`

	// Context holds the retrieved document chunks the backend used to
	// answer, when it chose to include them. Display-only.
	Context []string `json:"context,omitempty"`
}

// NewMessage creates a new message with a generated ID and the current time.
func NewMessage(sender Sender, text string) Message {
	return Message{
		ID:        "msg_" + uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(text string) Message {
	return NewMessage(SenderUser, text)
}

// NewBotMessage creates a new bot message.
func NewBotMessage(text string) Message {
	return NewMessage(SenderBot, text)
}

// NewErrorMessage creates a bot message that carries an error to show the
// user. The text is treated as plain text like any other bot turn.
func NewErrorMessage(text string) Message {
	msg := NewMessage(SenderBot, text)
	msg.IsError = true
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Preview returns a single-line, rune-safe truncation of the message text.
// Newlines are collapsed so previews fit in list rows.
func (m Message) Preview(maxRunes int) string {
	text := strings.ReplaceAll(m.Text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", "")
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "..."
}

// IsEmpty reports whether the message text is empty or whitespace-only.
func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}
