// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain-terminal REPL for askdoc.
//
// Handles "askdoc chat": a readline-style loop for terminals where the
// full TUI is unwanted or unavailable (ssh sessions, screen readers,
// minimal terminals). It drives the same controller and store as the
// TUI, so conversations started here appear in the TUI's history.
//
// Interactive commands:
//   /help, /h           Show available commands
//   /history            Show conversation history grouped by date
//   /search <query>     Full-text search over stored messages
//   /export [md]        Export history to a file
//   /clear              Delete all stored messages
//   /quit, /q           Exit
//   Ctrl+C, Ctrl+D      Exit

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/askdoc-tui/internal/config"
	"github.com/jeranaias/askdoc-tui/internal/export"
	"github.com/jeranaias/askdoc-tui/internal/history"
	"github.com/jeranaias/askdoc-tui/internal/search"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// inputReader wraps liner with persistent input history, so arrow-key
// recall survives across sessions.
type inputReader struct {
	line        *liner.State
	historyFile string
}

func newInputReader() *inputReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	r := &inputReader{
		line:        line,
		historyFile: filepath.Join(dir, "repl_history"),
	}

	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
	return r
}

// Read reads one line with history support and records non-blank input.
func (r *inputReader) Read(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close persists input history and restores the terminal.
func (r *inputReader) Close() {
	if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
		r.line.WriteHistory(f)
		f.Close()
	}
	r.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// HandleChat runs the interactive plain-terminal loop.
func HandleChat(args Args) error {
	if !IsTTY() {
		return fmt.Errorf("chat requires an interactive terminal (use: askdoc ask)")
	}

	session, err := NewSession(args)
	if err != nil {
		return err
	}

	// The search index is optional: a failure here degrades /search but
	// nothing else.
	index, idxErr := search.Open(session.Store)
	if idxErr == nil {
		defer index.Close()
	}

	if !args.Quiet {
		printWelcome(session)
	}

	input := newInputReader()
	defer input.Close()

	for {
		line, err := input.Read(promptStyle.Render("askdoc> "))
		if err != nil {
			// liner.ErrPromptAborted is Ctrl+C, anything else is EOF.
			fmt.Println()
			fmt.Println(infoStyle.Render("Goodbye!"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			keepGoing, err := runSlashCommand(line, session, index)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				fmt.Println(infoStyle.Render("Goodbye!"))
				return nil
			}
			continue
		}

		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			fmt.Println(infoStyle.Render("Goodbye!"))
			return nil
		}

		askOnce(session, line, args.Quiet)
	}
}

// askOnce runs one question cycle and prints the outcome. Controller
// rejections are shown inline rather than aborting the loop.
func askOnce(session *Session, question string, quiet bool) {
	if !quiet {
		fmt.Println(infoStyle.Render("Thinking..."))
	}

	start := time.Now()
	reply, err := session.Ask(context.Background(), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		return
	}

	fmt.Println()
	displayReply(reply, quiet)
	fmt.Println()

	if !quiet && !reply.IsError {
		fmt.Fprintln(os.Stderr, infoStyle.Render(
			fmt.Sprintf("[%s]", time.Since(start).Round(time.Millisecond))))
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// runSlashCommand dispatches a /command. Returns false to exit the loop.
func runSlashCommand(cmd string, session *Session, index *search.LogIndex) (bool, error) {
	parts := strings.Fields(cmd)
	args := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "/help", "/h", "/?", "/":
		printReplHelp()
		return true, nil

	case "/history":
		printGroupedHistory(session, 0)
		return true, nil

	case "/search":
		if len(args) == 0 {
			return true, fmt.Errorf("usage: /search <query>")
		}
		return true, runSearch(session, index, strings.Join(args, " "))

	case "/export":
		markdown := len(args) > 0 && strings.EqualFold(args[0], "md")
		path, err := exportHistory(session, markdown)
		if err != nil {
			return true, err
		}
		fmt.Printf("%s %s\n", commandStyle.Render("[Exported]"), path)
		return true, nil

	case "/clear":
		if err := session.Store.Clear(); err != nil {
			return true, err
		}
		fmt.Println(commandStyle.Render("[History cleared]"))
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", parts[0])
	}
}

// runSearch rebuilds the index from the log and prints matches.
func runSearch(session *Session, index *search.LogIndex, query string) error {
	if index == nil {
		return fmt.Errorf("search index unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := index.Rebuild(ctx); err != nil {
		return fmt.Errorf("indexing history: %w", err)
	}

	limit := 10
	results, err := index.Search(query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println(infoStyle.Render("[No matches]"))
		return nil
	}

	fmt.Println()
	for i, res := range results {
		preview := strings.ReplaceAll(res.Message.Text, "\n", " ")
		fmt.Printf("  %d. %s: %s\n",
			i+1,
			commandStyle.Render(res.Message.Sender.DisplayName()),
			util.TruncateRunes(preview, 100))
	}
	fmt.Println()
	return nil
}

// exportHistory writes the grouped conversation history into the state
// directory's exports folder and returns the file path.
func exportHistory(session *Session, markdown bool) (string, error) {
	convs := history.Segment(session.Store.Load())
	if len(convs) == 0 {
		return "", fmt.Errorf("nothing to export")
	}

	var exporter export.Exporter = export.NewTextExporter()
	if markdown {
		exporter = export.NewMarkdownExporter()
	}
	return export.ToFile(convs, exporter, filepath.Join(session.Store.BaseDir, "exports"))
}

// printGroupedHistory prints conversations grouped by day: buckets in
// log order, newest first within each day, matching the TUI sidebar.
// A limit of 0 prints everything.
func printGroupedHistory(session *Session, limit int) {
	convs := history.Segment(session.Store.Load())
	if len(convs) == 0 {
		fmt.Println(infoStyle.Render("[No conversations yet]"))
		return
	}
	if limit > 0 && len(convs) > limit {
		// Keep the most recent conversations when limited.
		convs = convs[len(convs)-limit:]
	}

	groups := history.NewestFirst(history.GroupWithLocale(convs, history.EnvLocale()))
	preview := session.Config.History.PreviewRunes

	fmt.Println()
	n := 0
	for _, group := range groups {
		fmt.Println(headerStyle.Render(group.Label))
		for _, conv := range group.Conversations {
			n++
			fmt.Printf("  %d. %s\n", n, conv.Preview(preview))
		}
		fmt.Println()
	}
}

// =============================================================================
// DISPLAY
// =============================================================================

// printWelcome prints the session banner.
func printWelcome(session *Session) {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("askdoc chat"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Backend:"),
		commandStyle.Render(session.Client.BaseURL()))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := session.Client.Ping(ctx); err != nil {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Status:"),
			warningStyle.Render("service unreachable"))
	} else {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Status:"),
			commandStyle.Render("connected"))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Type a question and press Enter. Commands: /help, /quit"))
	fmt.Println()
}

// printReplHelp prints the available slash commands.
func printReplHelp() {
	fmt.Println()
	fmt.Println(headerStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help, /h", "Show this help"},
		{"/history", "Show conversation history"},
		{"/search <query>", "Search stored messages"},
		{"/export [md]", "Export history to a file"},
		{"/clear", "Delete all stored messages"},
		{"/quit, /q", "Exit"},
	}
	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			commandStyle.Render(fmt.Sprintf("%-16s", c.cmd)),
			infoStyle.Render(c.desc))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Tip: Ctrl+D exits, arrow keys recall previous input"))
	fmt.Println()
}
