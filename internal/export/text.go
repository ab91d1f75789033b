// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/askdoc-tui/internal/history"
)

// =============================================================================
// PLAIN TEXT EXPORTER
// =============================================================================

// TextExporter renders conversations as a plain transcript:
//
//	You: how do I reset the router?
//	Assistant: Hold the reset button for ten seconds.
//
// Conversations are separated by a single blank line. Message text is
// written verbatim, including its own newlines.
type TextExporter struct{}

// NewTextExporter returns a plain text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export implements Exporter.
func (e *TextExporter) Export(convs []history.Conversation) ([]byte, error) {
	var sb strings.Builder
	for i, conv := range convs {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, msg := range conv.Messages {
			sb.WriteString(msg.Sender.DisplayName())
			sb.WriteString(": ")
			sb.WriteString(msg.Text)
			sb.WriteString("\n")
		}
	}
	return []byte(sb.String()), nil
}

// FileExtension implements Exporter.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}
