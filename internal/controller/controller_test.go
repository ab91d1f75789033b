// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller owns the question lifecycle state machine.
package controller

import (
	"errors"
	"testing"

	"github.com/jeranaias/askdoc-tui/internal/backend"
	"github.com/jeranaias/askdoc-tui/internal/model"
)

// fakeStore records flushed batches.
type fakeStore struct {
	batches [][]model.Message
	err     error
}

func (f *fakeStore) Save(messages []model.Message) error {
	if f.err != nil {
		return f.err
	}
	batch := make([]model.Message, len(messages))
	copy(batch, messages)
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakeStore) all() []model.Message {
	var out []model.Message
	for _, b := range f.batches {
		out = append(out, b...)
	}
	return out
}

// =============================================================================
// BEGIN TESTS
// =============================================================================

func TestController_Begin(t *testing.T) {
	c := New(&fakeStore{})

	msg, err := c.Begin("what is chapter 2 about?")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if msg.Sender != model.SenderUser {
		t.Errorf("Sender = %q, want user", msg.Sender)
	}
	if msg.Text != "what is chapter 2 about?" {
		t.Errorf("Text = %q", msg.Text)
	}
	if c.State() != StateSending {
		t.Errorf("State = %v, want sending", c.State())
	}
}

func TestController_BeginEmptyQuestion(t *testing.T) {
	c := New(&fakeStore{})

	for _, q := range []string{"", "   ", "\n\t "} {
		_, err := c.Begin(q)
		if !errors.Is(err, ErrEmptyQuestion) {
			t.Errorf("Begin(%q) = %v, want ErrEmptyQuestion", q, err)
		}
		if c.State() != StateIdle {
			t.Errorf("State after blank submit = %v, want idle", c.State())
		}
	}
}

func TestController_GuardRejectsConcurrentSubmit(t *testing.T) {
	store := &fakeStore{}
	c := New(store)

	first, err := c.Begin("first")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	// Second submit while Sending is dropped, not queued.
	_, err = c.Begin("second")
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("concurrent Begin = %v, want ErrBusy", err)
	}
	if c.Pending().ID != first.ID {
		t.Error("rejected submit altered the pending question")
	}

	// The original cycle completes untouched.
	ex, err := c.Resolve(&backend.Answer{Text: "answer"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if ex.Question.ID != first.ID {
		t.Error("outcome does not belong to the first submission")
	}
	if len(store.all()) != 2 {
		t.Errorf("persisted %d messages, want 2", len(store.all()))
	}
}

// =============================================================================
// RESOLVE TESTS
// =============================================================================

func TestController_ResolveSuccess(t *testing.T) {
	store := &fakeStore{}
	c := New(store)

	c.Begin("hi")
	ex, err := c.Resolve(&backend.Answer{
		Text:    "hello",
		Context: []string{"chunk"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if ex.Reply.Sender != model.SenderBot {
		t.Errorf("Reply.Sender = %q, want bot", ex.Reply.Sender)
	}
	if ex.Reply.Text != "hello" {
		t.Errorf("Reply.Text = %q", ex.Reply.Text)
	}
	if len(ex.Reply.Context) != 1 {
		t.Errorf("Reply.Context = %v", ex.Reply.Context)
	}
	if ex.Reply.IsError {
		t.Error("successful reply marked as error")
	}

	if c.State() != StateIdle {
		t.Errorf("State = %v, want idle after terminal transition", c.State())
	}
	if c.LastOutcome() != StateSucceeded {
		t.Errorf("LastOutcome = %v, want succeeded", c.LastOutcome())
	}

	// Exactly the two new messages are flushed, question first.
	flushed := store.all()
	if len(flushed) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(flushed))
	}
	if flushed[0].ID != ex.Question.ID || flushed[1].ID != ex.Reply.ID {
		t.Error("flush order should be question then reply")
	}
}

func TestController_ResolveWhenIdle(t *testing.T) {
	c := New(&fakeStore{})

	if _, err := c.Resolve(&backend.Answer{Text: "x"}); !errors.Is(err, ErrNotSending) {
		t.Errorf("Resolve while idle = %v, want ErrNotSending", err)
	}
}

// =============================================================================
// FAIL TESTS
// =============================================================================

func TestController_FailWithApplicationError(t *testing.T) {
	store := &fakeStore{}
	c := New(store)

	c.Begin("hi")
	ex, err := c.Fail(&backend.APIError{Message: "not found", Status: 404})
	if err != nil {
		t.Fatalf("Fail failed: %v", err)
	}

	// Application errors surface their own message, verbatim.
	if ex.Reply.Text != "not found" {
		t.Errorf("Reply.Text = %q, want %q", ex.Reply.Text, "not found")
	}
	if !ex.Reply.IsError {
		t.Error("error reply not marked as error")
	}
	if c.State() != StateIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if c.LastOutcome() != StateFailed {
		t.Errorf("LastOutcome = %v, want failed", c.LastOutcome())
	}

	// The cycle still persists exactly two new messages.
	if len(store.all()) != 2 {
		t.Errorf("persisted %d messages, want 2", len(store.all()))
	}
}

func TestController_FailWithTransportError(t *testing.T) {
	c := New(&fakeStore{})

	c.Begin("hi")
	ex, err := c.Fail(backend.ErrUnavailable)
	if err != nil {
		t.Fatalf("Fail failed: %v", err)
	}

	// Transport failures get the generic text, never the raw cause.
	if ex.Reply.Text != connectionErrorText {
		t.Errorf("Reply.Text = %q, want generic connection error", ex.Reply.Text)
	}
	if !ex.Reply.IsError {
		t.Error("error reply not marked as error")
	}
}

func TestController_UsableAfterFailure(t *testing.T) {
	c := New(&fakeStore{})

	c.Begin("one")
	c.Fail(backend.ErrUnavailable)

	// No retry happens; the user resubmits and the controller accepts.
	if _, err := c.Begin("two"); err != nil {
		t.Errorf("Begin after failure = %v, want success", err)
	}
}

func TestController_FlushFailureDoesNotWedge(t *testing.T) {
	c := New(&fakeStore{err: errors.New("disk full")})

	c.Begin("hi")
	if _, err := c.Resolve(&backend.Answer{Text: "hello"}); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c.State() != StateIdle {
		t.Error("controller wedged by persistence failure")
	}
}

// =============================================================================
// SEQUENTIAL CYCLES
// =============================================================================

func TestController_SequentialCyclesAppendInOrder(t *testing.T) {
	store := &fakeStore{}
	c := New(store)

	c.Begin("q1")
	c.Resolve(&backend.Answer{Text: "a1"})
	c.Begin("q2")
	c.Fail(&backend.APIError{Message: "oops"})

	flushed := store.all()
	want := []string{"q1", "a1", "q2", "oops"}
	if len(flushed) != len(want) {
		t.Fatalf("persisted %d messages, want %d", len(flushed), len(want))
	}
	for i, text := range want {
		if flushed[i].Text != text {
			t.Errorf("flushed[%d].Text = %q, want %q", i, flushed[i].Text, text)
		}
	}
}
