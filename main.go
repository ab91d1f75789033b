// askdoc - A terminal client for the document question-answering service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/askdoc-tui/internal/cli"
	"github.com/jeranaias/askdoc-tui/internal/search"
	"github.com/jeranaias/askdoc-tui/internal/ui/chat"
)

// Version information (set at build time via -ldflags).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cli.Usage)
		os.Exit(2)
	}

	switch cmd {
	case cli.CmdTUI:
		// Without a terminal there is nothing to draw; piped input
		// falls through to the one-shot path.
		if !cli.IsTTY() {
			runCommand(cli.HandleAsk, args)
			return
		}
		runTUI(args)
	case cli.CmdAsk:
		runCommand(cli.HandleAsk, args)
	case cli.CmdChat:
		runCommand(cli.HandleChat, args)
	case cli.CmdHistory:
		runCommand(cli.HandleHistory, args)
	case cli.CmdExport:
		runCommand(cli.HandleExport, args)
	case cli.CmdClear:
		runCommand(cli.HandleClear, args)
	case cli.CmdStatus:
		runCommand(cli.HandleStatus, args)
	case cli.CmdVersion:
		runCommand(cli.HandleVersion, args)
	case cli.CmdHelp:
		fmt.Print(cli.Usage)
	default:
		runTUI(args)
	}
}

// runCommand runs a plain-surface handler and exits non-zero on error.
func runCommand(handler func(cli.Args) error, args cli.Args) {
	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	session, err := cli.NewSession(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so diagnostics go to a
	// file instead of stderr.
	restoreLog := redirectLog(session.Store.BaseDir)
	defer restoreLog()

	// The search index is optional; the TUI degrades to no search when
	// it cannot be opened. The watcher keeps it current as the log grows.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	index, err := search.Open(session.Store)
	if err != nil {
		log.Printf("main: search index unavailable: %v", err)
		index = nil
	} else {
		defer index.Close()
		go func() {
			if err := index.Watch(ctx); err != nil {
				log.Printf("main: index watcher stopped: %v", err)
			}
		}()
	}

	model := chat.New(session.Config, session.Store, session.Client, index)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// redirectLog sends the standard logger to a file under the state dir
// and returns a restore function. Logging is dropped entirely when the
// file cannot be opened.
func redirectLog(dir string) func() {
	path := filepath.Join(dir, "askdoc.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
