// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history.go - Non-interactive history commands.
//
// "askdoc history" prints the grouped conversation log, "askdoc export"
// writes it to a file, and "askdoc clear" deletes it. These mirror the
// REPL's slash commands for use in scripts.

package cli

import (
	"fmt"
)

// HandleHistory prints conversation history grouped by date, newest
// first. --limit caps the number of conversations shown.
func HandleHistory(args Args) error {
	session, err := NewSession(args)
	if err != nil {
		return err
	}
	printGroupedHistory(session, args.Limit)
	return nil
}

// HandleExport writes the full history to a file in the state
// directory's exports folder and prints the path. --md selects markdown.
func HandleExport(args Args) error {
	session, err := NewSession(args)
	if err != nil {
		return err
	}
	path, err := exportHistory(session, args.Markdown)
	if err != nil {
		return err
	}
	if args.Quiet {
		fmt.Println(path)
	} else {
		fmt.Printf("%s %s\n", commandStyle.Render("[Exported]"), path)
	}
	return nil
}

// HandleClear deletes the stored message log.
func HandleClear(args Args) error {
	session, err := NewSession(args)
	if err != nil {
		return err
	}
	if err := session.Store.Clear(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	if !args.Quiet {
		fmt.Println(commandStyle.Render("[History cleared]"))
	}
	return nil
}
