// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller owns the question lifecycle state machine.
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/jeranaias/askdoc-tui/internal/backend"
	"github.com/jeranaias/askdoc-tui/internal/model"
)

// =============================================================================
// STATE
// =============================================================================

// State is the lifecycle state of the controller.
type State int

const (
	// StateIdle accepts new questions.
	StateIdle State = iota

	// StateSending has exactly one question in flight. Further
	// submissions are rejected, not queued.
	StateSending

	// StateSucceeded and StateFailed are the terminal outcomes of the
	// last completed cycle; the controller itself is back in StateIdle
	// when they are observable via LastOutcome.
	StateSucceeded
	StateFailed
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrBusy rejects a submission while a question is in flight.
	ErrBusy = errors.New("a question is already in flight")

	// ErrEmptyQuestion rejects a blank submission.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNotSending rejects a terminal transition with nothing in
	// flight; it indicates a caller bug, not a user-visible condition.
	ErrNotSending = errors.New("no question in flight")
)

// connectionErrorText is the generic message shown for transport
// failures. The underlying cause goes to the diagnostic log only.
const connectionErrorText = "Could not reach the answering service. " +
	"Check that it is running, then ask again."

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Flusher persists the messages of a completed cycle. *storage.Store
// satisfies it.
type Flusher interface {
	Save(messages []model.Message) error
}

// =============================================================================
// EXCHANGE
// =============================================================================

// Exchange is one completed question/answer cycle.
type Exchange struct {
	Question model.Message
	Reply    model.Message
}

// Messages returns the exchange as a log slice in append order.
func (e Exchange) Messages() []model.Message {
	return []model.Message{e.Question, e.Reply}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller guards the single-in-flight-question invariant and drives
// each cycle from submission to persistence. One instance owns the state;
// there is no raw flag to mutate from outside.
//
// The controller is not goroutine-safe by design: like the rest of the
// UI it runs entirely inside the event loop, where calls never overlap.
type Controller struct {
	state       State
	lastOutcome State
	pending     model.Message
	store       Flusher
}

// New creates an idle controller that flushes completed cycles to store.
func New(store Flusher) *Controller {
	return &Controller{
		state:       StateIdle,
		lastOutcome: StateIdle,
		store:       store,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// LastOutcome returns StateSucceeded or StateFailed for the most recently
// completed cycle, or StateIdle if none has completed.
func (c *Controller) LastOutcome() State {
	return c.lastOutcome
}

// Busy reports whether a question is in flight.
func (c *Controller) Busy() bool {
	return c.state == StateSending
}

// Pending returns the in-flight question while Sending.
func (c *Controller) Pending() model.Message {
	return c.pending
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Begin starts a cycle for the given question and returns the user
// message to render. It rejects blank questions with ErrEmptyQuestion and
// concurrent submissions with ErrBusy; in both cases the controller state
// is unchanged and nothing is rendered or persisted.
func (c *Controller) Begin(question string) (model.Message, error) {
	if c.state != StateIdle {
		return model.Message{}, ErrBusy
	}
	if strings.TrimSpace(question) == "" {
		return model.Message{}, ErrEmptyQuestion
	}

	c.pending = model.NewUserMessage(question)
	c.state = StateSending
	return c.pending, nil
}

// Resolve completes the in-flight cycle with a successful answer. The
// reply message replaces the pending placeholder in the transcript, and
// both turns are flushed to the store. The controller returns to Idle.
func (c *Controller) Resolve(answer *backend.Answer) (Exchange, error) {
	if c.state != StateSending {
		return Exchange{}, ErrNotSending
	}

	reply := model.NewBotMessage(answer.Text)
	reply.Context = answer.Context
	return c.finish(reply, StateSucceeded), nil
}

// Fail completes the in-flight cycle with an error. Application errors
// from the backend surface their own message; anything else becomes the
// generic connection-error text, with the cause logged for diagnostics.
// The error reply is flushed like a normal bot turn so history reflects
// what the user saw. The controller returns to Idle.
func (c *Controller) Fail(cause error) (Exchange, error) {
	if c.state != StateSending {
		return Exchange{}, ErrNotSending
	}

	var apiErr *backend.APIError
	var text string
	if errors.As(cause, &apiErr) {
		text = apiErr.Message
	} else {
		log.Printf("controller: ask failed: %v", cause)
		text = connectionErrorText
	}

	return c.finish(model.NewErrorMessage(text), StateFailed), nil
}

// finish runs the shared terminal edge: flush, record outcome, go Idle.
func (c *Controller) finish(reply model.Message, outcome State) Exchange {
	ex := Exchange{Question: c.pending, Reply: reply}

	// Persistence failure must not wedge the session; the transcript
	// stays usable and the cause goes to the log.
	if err := c.store.Save(ex.Messages()); err != nil {
		log.Printf("controller: persisting exchange: %v", err)
	}

	c.pending = model.Message{}
	c.lastOutcome = outcome
	c.state = StateIdle
	return ex
}
