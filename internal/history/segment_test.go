// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history derives conversations and date groups from the flat log.
package history

import (
	"reflect"
	"testing"

	"github.com/jeranaias/askdoc-tui/internal/model"
)

func userMsg(text string) model.Message { return model.NewUserMessage(text) }
func botMsg(text string) model.Message  { return model.NewBotMessage(text) }

func texts(c Conversation) []string {
	out := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		out[i] = m.Text
	}
	return out
}

// =============================================================================
// SEGMENT TESTS
// =============================================================================

func TestSegment_Empty(t *testing.T) {
	if got := Segment(nil); len(got) != 0 {
		t.Errorf("Segment(nil) = %d conversations, want 0", len(got))
	}
}

func TestSegment_SingleExchange(t *testing.T) {
	log := []model.Message{userMsg("hi"), botMsg("hello")}

	convs := Segment(log)
	if len(convs) != 1 {
		t.Fatalf("Segment = %d conversations, want 1", len(convs))
	}
	if got := texts(convs[0]); !reflect.DeepEqual(got, []string{"hi", "hello"}) {
		t.Errorf("conversation = %v", got)
	}
}

func TestSegment_UserMessageStartsNewRun(t *testing.T) {
	log := []model.Message{
		userMsg("hi"), botMsg("hello"),
		userMsg("bye"), botMsg("goodbye"),
	}

	convs := Segment(log)
	if len(convs) != 2 {
		t.Fatalf("Segment = %d conversations, want 2", len(convs))
	}
	if got := texts(convs[0]); !reflect.DeepEqual(got, []string{"hi", "hello"}) {
		t.Errorf("first conversation = %v", got)
	}
	if got := texts(convs[1]); !reflect.DeepEqual(got, []string{"bye", "goodbye"}) {
		t.Errorf("second conversation = %v", got)
	}
}

func TestSegment_TrailingUserOnlyRun(t *testing.T) {
	// A question whose answer never arrived still forms a conversation.
	log := []model.Message{userMsg("hi"), botMsg("hello"), userMsg("bye")}

	convs := Segment(log)
	if len(convs) != 2 {
		t.Fatalf("Segment = %d conversations, want 2", len(convs))
	}
	if got := texts(convs[1]); !reflect.DeepEqual(got, []string{"bye"}) {
		t.Errorf("final conversation = %v", got)
	}
}

func TestSegment_LeadingBotMessageAbsorbed(t *testing.T) {
	// Legacy or malformed logs can open with a bot turn; it joins the
	// first conversation rather than being rejected.
	log := []model.Message{botMsg("welcome"), userMsg("hi"), botMsg("hello")}

	convs := Segment(log)
	if len(convs) != 2 {
		t.Fatalf("Segment = %d conversations, want 2", len(convs))
	}
	if got := texts(convs[0]); !reflect.DeepEqual(got, []string{"welcome"}) {
		t.Errorf("first conversation = %v", got)
	}
	if got := texts(convs[1]); !reflect.DeepEqual(got, []string{"hi", "hello"}) {
		t.Errorf("second conversation = %v", got)
	}
}

func TestSegment_ConsecutiveUserMessages(t *testing.T) {
	log := []model.Message{userMsg("a"), userMsg("b"), userMsg("c")}

	convs := Segment(log)
	if len(convs) != 3 {
		t.Fatalf("Segment = %d conversations, want 3", len(convs))
	}
}

func TestSegment_Idempotent(t *testing.T) {
	log := []model.Message{
		botMsg("welcome"),
		userMsg("hi"), botMsg("hello"), botMsg("more"),
		userMsg("bye"),
	}

	first := Segment(log)
	second := Segment(log)
	if !reflect.DeepEqual(first, second) {
		t.Error("Segment is not deterministic for identical input")
	}
}

func TestSegment_ConcatenatedLogs(t *testing.T) {
	// Concatenating two logs that each start with a user message yields a
	// conversation count equal to the number of user-initiated runs.
	logA := []model.Message{userMsg("a1"), botMsg("a2")}
	logB := []model.Message{userMsg("b1"), botMsg("b2"), userMsg("b3")}

	combined := append(append([]model.Message{}, logA...), logB...)
	convs := Segment(combined)

	userRuns := 0
	for _, m := range combined {
		if m.Sender == model.SenderUser {
			userRuns++
		}
	}

	if len(convs) < 2 {
		t.Errorf("Segment = %d conversations, want at least 2", len(convs))
	}
	if len(convs) != userRuns {
		t.Errorf("Segment = %d conversations, want %d user-initiated runs", len(convs), userRuns)
	}
}

func TestSegment_DoesNotMutateInput(t *testing.T) {
	log := []model.Message{userMsg("hi"), botMsg("hello"), userMsg("bye")}
	before := make([]model.Message, len(log))
	copy(before, log)

	Segment(log)

	if !reflect.DeepEqual(log, before) {
		t.Error("Segment mutated its input")
	}
}
