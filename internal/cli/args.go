// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Command and flag parsing for the askdoc binary.
//
// askdoc has a deliberately small command surface:
//
//	askdoc                    Start the TUI (default)
//	askdoc ask <question>     One-shot question, prints the answer
//	askdoc chat               Plain-terminal REPL
//	askdoc history            Print grouped conversation history
//	askdoc export             Export history to a file
//	askdoc clear              Delete the message log
//	askdoc status             Show backend and storage status
//	askdoc version            Print version information
//	askdoc help               Show usage

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// COMMANDS
// =============================================================================

// Command identifies which surface the binary should run.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdHistory
	CmdExport
	CmdClear
	CmdStatus
	CmdVersion
	CmdHelp
)

// =============================================================================
// ARGS
// =============================================================================

// Args holds the parsed flags and positional input shared by all commands.
type Args struct {
	// Question is the joined positional input for "ask".
	Question string

	// ConfigPath overrides the default config file location (--config).
	ConfigPath string

	// BackendURL overrides the configured backend URL (--url).
	BackendURL string

	// Markdown selects the markdown exporter for "export" (--md).
	Markdown bool

	// Plain forces the REPL even when stdout is a TTY (--plain).
	Plain bool

	// Quiet suppresses informational output (--quiet, -q).
	Quiet bool

	// Limit caps result counts for history and search output (--limit).
	Limit int
}

// Parse maps argv (without the program name) to a command and its args.
// Unknown flags are an error so typos do not silently become questions.
func Parse(argv []string) (Command, Args, error) {
	args := Args{Limit: 0}

	cmd := CmdTUI
	positional := make([]string, 0, len(argv))

	i := 0
	for i < len(argv) {
		arg := argv[i]

		if !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		value := ""
		if eq := strings.Index(name, "="); eq >= 0 {
			name, value = name[:eq], name[eq+1:]
		}

		switch name {
		case "config":
			if value == "" {
				if i+1 >= len(argv) {
					return cmd, args, fmt.Errorf("--config requires a path")
				}
				i++
				value = argv[i]
			}
			args.ConfigPath = value
		case "url":
			if value == "" {
				if i+1 >= len(argv) {
					return cmd, args, fmt.Errorf("--url requires a value")
				}
				i++
				value = argv[i]
			}
			args.BackendURL = value
		case "limit":
			if value == "" {
				if i+1 >= len(argv) {
					return cmd, args, fmt.Errorf("--limit requires a number")
				}
				i++
				value = argv[i]
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return cmd, args, fmt.Errorf("--limit: invalid value %q", value)
			}
			args.Limit = n
		case "md", "markdown":
			args.Markdown = true
		case "plain":
			args.Plain = true
		case "quiet", "q":
			args.Quiet = true
		case "help", "h":
			return CmdHelp, args, nil
		case "version", "v":
			return CmdVersion, args, nil
		default:
			return cmd, args, fmt.Errorf("unknown flag: %s", arg)
		}
		i++
	}

	if len(positional) > 0 {
		switch strings.ToLower(positional[0]) {
		case "ask":
			cmd = CmdAsk
			args.Question = strings.Join(positional[1:], " ")
		case "chat":
			cmd = CmdChat
		case "history":
			cmd = CmdHistory
		case "export":
			cmd = CmdExport
		case "clear":
			cmd = CmdClear
		case "status":
			cmd = CmdStatus
		case "version":
			cmd = CmdVersion
		case "help":
			cmd = CmdHelp
		default:
			// Bare words are treated as a question for convenience:
			// "askdoc what is chapter two about" just works.
			cmd = CmdAsk
			args.Question = strings.Join(positional, " ")
		}
	} else if args.Plain {
		cmd = CmdChat
	}

	return cmd, args, nil
}

// Usage is the help text printed by "askdoc help" and on flag errors.
const Usage = `askdoc - terminal client for the document question-answering service

Usage:
  askdoc                    Start the interactive TUI
  askdoc ask <question>     Ask one question and print the answer
  askdoc chat               Plain-terminal chat (no alternate screen)
  askdoc history            Print conversation history grouped by date
  askdoc export [--md]      Export history to a text or markdown file
  askdoc clear              Delete all stored messages
  askdoc status             Show backend and storage status
  askdoc version            Print version information

Flags:
  --config PATH   Use an alternate config file
  --url URL       Override the backend URL for this run
  --limit N       Limit history/search output to N entries
  --plain         Use the plain REPL instead of the TUI
  --md            Export as markdown instead of plain text
  -q, --quiet     Suppress informational output
`
