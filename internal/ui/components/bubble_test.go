// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewThemeWithDark(true)
}

func TestUserBubbleShowsLabelAndText(t *testing.T) {
	msg := model.NewUserMessage("hello there")
	view := NewMessageBubble(msg, testTheme()).View()

	if !strings.Contains(view, "You") {
		t.Error("missing sender label")
	}
	if !strings.Contains(view, "hello there") {
		t.Error("missing message text")
	}
}

func TestBotBubbleShowsLabelAndText(t *testing.T) {
	msg := model.NewBotMessage("an answer")
	view := NewMessageBubble(msg, testTheme()).View()

	if !strings.Contains(view, "Assistant") {
		t.Error("missing sender label")
	}
	if !strings.Contains(view, "an answer") {
		t.Error("missing message text")
	}
}

func TestBubbleStripsEscapeSequences(t *testing.T) {
	msg := model.NewUserMessage("evil \x1b[31mred\x1b[0m text")
	view := NewMessageBubble(msg, testTheme()).View()

	if strings.Contains(view, "\x1b[31m") {
		t.Error("escape sequence from message text survived rendering")
	}
	if !strings.Contains(view, "red") {
		t.Error("visible text was lost")
	}
}

func TestBotBubbleRendersFencedCode(t *testing.T) {
	// Highlighted code is client-produced markup; it must reach the
	// bubble intact rather than being sanitized like answer prose.
	msg := model.NewBotMessage("run this:\n```go\nfmt.Println(42)\n```")
	view := NewMessageBubble(msg, testTheme()).View()

	if !strings.Contains(view, "run this:") {
		t.Error("missing prose segment")
	}
	if !strings.Contains(view, "Println") {
		t.Errorf("missing highlighted code: %q", view)
	}
}

func TestBotBubbleRendersContextSnippets(t *testing.T) {
	msg := model.NewBotMessage("answer")
	msg.Context = []string{"first snippet", "second snippet"}
	view := NewMessageBubble(msg, testTheme()).View()

	for _, want := range []string{"Sources", "first snippet", "second snippet"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q in view", want)
		}
	}
}

func TestBotBubbleHidesContextWhenDisabled(t *testing.T) {
	msg := model.NewBotMessage("answer")
	msg.Context = []string{"snippet"}
	b := NewMessageBubble(msg, testTheme())
	b.ShowContext = false

	if strings.Contains(b.View(), "Sources") {
		t.Error("context rendered despite ShowContext=false")
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "short line", 20, "short line"},
		{"wraps", "one two three", 7, "one two\nthree"},
		{"keeps newlines", "a\nb", 10, "a\nb"},
		{"zero width passthrough", "anything", 0, "anything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordWrap(tt.in, tt.width); got != tt.want {
				t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestSplitCodeFences(t *testing.T) {
	text := "before\n```go\nfunc main() {}\n```\nafter"
	segs := splitCodeFences(text)

	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[0].code || segs[0].text != "before" {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if !segs[1].code || segs[1].language != "go" || segs[1].text != "func main() {}" {
		t.Errorf("segment 1 = %+v", segs[1])
	}
	if segs[2].code || segs[2].text != "after" {
		t.Errorf("segment 2 = %+v", segs[2])
	}
}

func TestSplitCodeFencesUnclosed(t *testing.T) {
	segs := splitCodeFences("prose\n```\ncode to end")

	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if !segs[1].code || segs[1].text != "code to end" {
		t.Errorf("segment 1 = %+v", segs[1])
	}
}

func TestSplitCodeFencesNoFences(t *testing.T) {
	segs := splitCodeFences("just prose")
	if len(segs) != 1 || segs[0].code {
		t.Fatalf("segments = %+v", segs)
	}
}
