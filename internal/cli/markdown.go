// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// markdown.go - Answer rendering for the plain surfaces.
//
// Answers are rendered as markdown with glamour when stdout is a TTY,
// and printed verbatim otherwise so piped output stays clean.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// markdownRenderer is the shared glamour renderer. Nil when
// initialization fails, in which case output falls back to plain text.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(DefaultTerminalWidth),
	)
	if err != nil {
		markdownRenderer = nil
	}
}

// renderMarkdown renders content for terminal display. Returns the
// original text when rendering is unavailable or fails.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayReply prints a completed reply message. Error replies use the
// error style; normal replies render as markdown on a TTY and plain text
// otherwise, followed by their source snippets unless quiet.
func displayReply(reply model.Message, quiet bool) {
	if reply.IsError {
		fmt.Println(errorStyle.Render(reply.Text))
		return
	}

	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(reply.Text))
	} else {
		fmt.Println(reply.Text)
	}

	if quiet || len(reply.Context) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Sources:"))
	for _, snippet := range reply.Context {
		snippet = strings.ReplaceAll(snippet, "\n", " ")
		fmt.Printf("  %s\n", sourceStyle.Render(util.TruncateRunes(snippet, 120)))
	}
}
