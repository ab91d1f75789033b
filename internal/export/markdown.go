// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/jeranaias/askdoc-tui/internal/history"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders conversations as Markdown, one section per
// conversation with bolded sender labels. Message text passes through
// unescaped since answers already use Markdown-compatible markup.
type MarkdownExporter struct {
	// IncludeTimestamps adds a per-message timestamp line.
	IncludeTimestamps bool
}

// NewMarkdownExporter returns a Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export implements Exporter.
func (e *MarkdownExporter) Export(convs []history.Conversation) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString("# Chat Export\n")
	for i, conv := range convs {
		fmt.Fprintf(&sb, "\n## Conversation %d\n\n", i+1)
		for _, msg := range conv.Messages {
			fmt.Fprintf(&sb, "**%s:** %s\n\n", msg.Sender.DisplayName(), msg.Text)
			if e.IncludeTimestamps {
				fmt.Fprintf(&sb, "_%s_\n\n", msg.Timestamp.Format("2006-01-02 15:04"))
			}
		}
	}
	return []byte(sb.String()), nil
}

// FileExtension implements Exporter.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}
