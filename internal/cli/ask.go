// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question handler.
//
// "askdoc ask <question>" sends a single question, prints the answer,
// and exits. The exchange is persisted to the same log the TUI reads, so
// one-shot questions show up in history.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// HandleAsk runs a single question/answer cycle and prints the result.
// When no question is given on the command line, stdin is read instead
// so "echo question | askdoc ask" works.
func HandleAsk(args Args) error {
	question := strings.TrimSpace(args.Question)
	if question == "" && !IsTTY() {
		data, err := readStdin()
		if err != nil {
			return err
		}
		question = strings.TrimSpace(data)
	}
	if question == "" {
		return fmt.Errorf("no question given (usage: askdoc ask <question>)")
	}

	session, err := NewSession(args)
	if err != nil {
		return err
	}

	reply, err := session.Ask(context.Background(), question)
	if err != nil {
		return err
	}

	displayReply(reply, args.Quiet)
	if reply.IsError {
		os.Exit(1)
	}
	return nil
}

// readStdin reads all of stdin for piped one-shot questions.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
