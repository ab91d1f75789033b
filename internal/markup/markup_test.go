// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markup turns raw message text into styled terminal output.
package markup

import (
	"strings"
	"testing"
)

// markerStyles wraps spans in tags so tests can assert structure without
// depending on the terminal's color profile.
func markerStyles() Styles {
	return Styles{
		Bold:   func(s string) string { return "<b>" + s + "</b>" },
		Italic: func(s string) string { return "<i>" + s + "</i>" },
		Code:   func(s string) string { return "<c>" + s + "</c>" },
	}
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestFormat_AllSpansAndLineBreak(t *testing.T) {
	got := Format("**a** *b* `c`\nd", markerStyles())
	want := "<b>a</b> <i>b</i> <c>c</c>\nd"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_BoldBeforeItalic(t *testing.T) {
	// A double-asterisk pair must never be half-consumed by the italic
	// pass.
	got := Format("**bold** and *italic*", markerStyles())
	want := "<b>bold</b> and <i>italic</i>"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Global(t *testing.T) {
	got := Format("`one` and `two`", markerStyles())
	want := "<c>one</c> and <c>two</c>"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_UnmatchedDelimitersLeftAlone(t *testing.T) {
	tests := []string{
		"a * b",
		"unterminated `code",
		"stray ** alone",
	}
	for _, raw := range tests {
		if got := Format(raw, markerStyles()); got != raw {
			t.Errorf("Format(%q) = %q, want unchanged", raw, got)
		}
	}
}

func TestFormat_PlainTextUntouched(t *testing.T) {
	raw := "just a sentence.\nwith a second line."
	if got := Format(raw, markerStyles()); got != raw {
		t.Errorf("Format(%q) = %q, want unchanged", raw, got)
	}
}

// =============================================================================
// DEFAULT STYLES TESTS
// =============================================================================

func TestDefaultStyles_ApplyToAllSpans(t *testing.T) {
	// Every renderer must be callable with a single span; the inner
	// text survives whatever styling the terminal profile adds.
	got := Format("**a** *b* `c`", DefaultStyles())
	for _, inner := range []string{"a", "b", "c"} {
		if !strings.Contains(got, inner) {
			t.Errorf("Format with DefaultStyles lost %q: %q", inner, got)
		}
	}
}

// =============================================================================
// CONTENT KIND TESTS
// =============================================================================

func TestContent_PlainIsFormatted(t *testing.T) {
	got := Plain("**hi**").Render(markerStyles())
	if got != "<b>hi</b>" {
		t.Errorf("Render = %q, want %q", got, "<b>hi</b>")
	}
}

func TestContent_PlainIsSanitized(t *testing.T) {
	// Backend text must not be able to smuggle escape sequences.
	got := Plain("evil\x1b[31mred").Render(markerStyles())
	if strings.ContainsRune(got, 0x1b) {
		t.Errorf("Render let an escape character through: %q", got)
	}
}

func TestContent_TrustedPassesThrough(t *testing.T) {
	spinner := "\x1b[35m●\x1b[0m"
	if got := Trusted(spinner).Render(markerStyles()); got != spinner {
		t.Errorf("trusted markup was altered: %q", got)
	}
}

// =============================================================================
// SANITIZE TESTS
// =============================================================================

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escape stripped", "a\x1b[0mb", "a[0mb"},
		{"newline kept", "a\nb", "a\nb"},
		{"tab kept", "a\tb", "a\tb"},
		{"carriage return stripped", "a\rb", "ab"},
		{"delete stripped", "a\x7fb", "ab"},
		{"clean text unchanged", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
