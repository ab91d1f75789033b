// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/askdoc-tui/internal/history"
	"github.com/jeranaias/askdoc-tui/internal/model"
)

func sampleConversations() []history.Conversation {
	return []history.Conversation{
		{Messages: []model.Message{
			model.NewUserMessage("how do I reset the router?"),
			model.NewBotMessage("Hold the reset button for ten seconds."),
		}},
		{Messages: []model.Message{
			model.NewUserMessage("thanks"),
			model.NewBotMessage("You're welcome."),
		}},
	}
}

func TestTextExporter(t *testing.T) {
	content, err := NewTextExporter().Export(sampleConversations())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := "You: how do I reset the router?\n" +
		"Assistant: Hold the reset button for ten seconds.\n" +
		"\n" +
		"You: thanks\n" +
		"Assistant: You're welcome.\n"
	if string(content) != want {
		t.Errorf("Export() =\n%q\nwant\n%q", content, want)
	}
}

func TestTextExporterEmpty(t *testing.T) {
	content, err := NewTextExporter().Export(nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty output, got %q", content)
	}
}

func TestTextExporterPreservesMultilineText(t *testing.T) {
	convs := []history.Conversation{
		{Messages: []model.Message{
			model.NewBotMessage("line one\nline two"),
		}},
	}
	content, err := NewTextExporter().Export(convs)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if string(content) != "Assistant: line one\nline two\n" {
		t.Errorf("Export() = %q", content)
	}
}

func TestMarkdownExporter(t *testing.T) {
	content, err := NewMarkdownExporter().Export(sampleConversations())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := string(content)

	for _, want := range []string{
		"# Chat Export",
		"## Conversation 1",
		"## Conversation 2",
		"**You:** how do I reset the router?",
		"**Assistant:** You're welcome.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := Filename(now, ".txt"); got != "chat-export-2025-03-14.txt" {
		t.Errorf("Filename() = %q", got)
	}
}

func TestToFileWritesIntoDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := ToFile(sampleConversations(), NewTextExporter(), dir)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not in %q", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.HasPrefix(string(data), "You: ") {
		t.Errorf("unexpected content %q", data)
	}
}
