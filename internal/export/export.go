// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to files.
//
// The primary format matches the transcript a user would read on screen:
// one "Sender: text" block per message, with a blank line between
// conversations. A Markdown variant is available for sharing.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeranaias/askdoc-tui/internal/history"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// EXPORTER INTERFACE
// =============================================================================

// Exporter renders conversations into a target format.
type Exporter interface {
	// Export renders the conversations and returns the file content.
	Export(convs []history.Conversation) ([]byte, error)

	// FileExtension returns the extension for the format (e.g. ".txt").
	FileExtension() string
}

// =============================================================================
// EXPORT TO FILE
// =============================================================================

// Filename builds the export filename for a given day, e.g.
// "chat-export-2025-03-14.txt".
func Filename(now time.Time, ext string) string {
	return fmt.Sprintf("chat-export-%s%s", now.Format("2006-01-02"), ext)
}

// ToFile renders the conversations and writes them into dir, returning
// the output path. The write is atomic so a crash never leaves a
// half-written export next to the user's real files.
func ToFile(convs []history.Conversation, exporter Exporter, dir string) (string, error) {
	content, err := exporter.Export(convs)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(dir, Filename(time.Now(), exporter.FileExtension()))
	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return outputPath, nil
}
