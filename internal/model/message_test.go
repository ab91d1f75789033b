// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat turns.
package model

import (
	"strings"
	"testing"
)

// =============================================================================
// SENDER TESTS
// =============================================================================

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderBot, "Assistant"},
		{Sender("legacy"), "legacy"},
	}

	for _, tt := range tests {
		if got := tt.sender.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.sender, got, tt.want)
		}
	}
}

func TestSender_Valid(t *testing.T) {
	if !SenderUser.Valid() || !SenderBot.Valid() {
		t.Error("known senders should be valid")
	}
	if Sender("system").Valid() {
		t.Error("unknown sender should not be valid")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.Sender != SenderUser {
		t.Errorf("Sender = %q, want %q", msg.Sender, SenderUser)
	}
	if msg.Text != "hello" {
		t.Errorf("Text = %q, want %q", msg.Text, "hello")
	}
	if !strings.HasPrefix(msg.ID, "msg_") {
		t.Errorf("ID should start with 'msg_', got %q", msg.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage("connection failed")

	if msg.Sender != SenderBot {
		t.Errorf("Sender = %q, want %q", msg.Sender, SenderBot)
	}
	if !msg.IsError {
		t.Error("IsError should be set")
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"short text unchanged", "hi there", 30, "hi there"},
		{"long text truncated", strings.Repeat("a", 40), 30, strings.Repeat("a", 30) + "..."},
		{"newlines collapsed", "line one\nline two", 30, "line one line two"},
		{"exact length unchanged", strings.Repeat("b", 30), 30, strings.Repeat("b", 30)},
		{"unicode safe", strings.Repeat("日", 40), 30, strings.Repeat("日", 30) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewUserMessage(tt.text)
			if got := msg.Preview(tt.max); got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.max, got, tt.want)
			}
		})
	}
}

func TestMessage_IsEmpty(t *testing.T) {
	if !NewUserMessage("   \t\n").IsEmpty() {
		t.Error("whitespace-only message should be empty")
	}
	if NewUserMessage("x").IsEmpty() {
		t.Error("non-empty message reported empty")
	}
}

func TestMessage_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}
