// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markup turns raw message text into styled terminal output.
package markup

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// CONTENT KINDS
// =============================================================================

// Kind tags how a piece of content may be interpreted.
type Kind int

const (
	// KindPlain is untrusted text: user input and anything the backend
	// returns. It is sanitized and styled, never treated as structural
	// markup.
	KindPlain Kind = iota

	// KindTrusted is client-owned markup such as the animated loading
	// indicator. Only string literals in this codebase may carry it.
	KindTrusted
)

// Content pairs text with its kind. The kind travels with the text so no
// renderer ever has to sniff a string to decide whether to trust it.
type Content struct {
	Kind Kind
	Text string
}

// Plain wraps untrusted text.
func Plain(text string) Content {
	return Content{Kind: KindPlain, Text: text}
}

// Trusted wraps client-owned, pre-rendered markup.
func Trusted(text string) Content {
	return Content{Kind: KindTrusted, Text: text}
}

// Render produces the final terminal string for the content. Trusted
// markup passes through untouched; plain text is sanitized and formatted.
func (c Content) Render(st Styles) string {
	if c.Kind == KindTrusted {
		return c.Text
	}
	return Format(Sanitize(c.Text), st)
}

// =============================================================================
// STYLES
// =============================================================================

// Styles supplies the three span renderers Format applies. Keeping them
// injectable lets tests assert precedence without depending on the
// terminal's color profile.
type Styles struct {
	Bold   func(string) string
	Italic func(string) string
	Code   func(string) string
}

// DefaultStyles returns the lipgloss-backed styles used by the TUI.
func DefaultStyles() Styles {
	bold := lipgloss.NewStyle().Bold(true)
	italic := lipgloss.NewStyle().Italic(true)
	code := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}).
		Background(lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#313244"})

	return Styles{
		Bold:   func(v string) string { return bold.Render(v) },
		Italic: func(v string) string { return italic.Render(v) },
		Code:   func(v string) string { return code.Render(v) },
	}
}

// =============================================================================
// FORMATTING
// =============================================================================

// Substitution patterns, compiled once. Bold must run before italic so a
// lone-asterisk match can never consume half of a double-asterisk pair.
var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*\n]+?)\*`)
	codeRe   = regexp.MustCompile("`([^`\n]+?)`")
)

// Format applies the lightweight markup pass in fixed order: bold, then
// italic, then inline code. Substitutions are global. Newlines pass
// through unchanged; the terminal renders them as line breaks.
func Format(raw string, st Styles) string {
	out := boldRe.ReplaceAllStringFunc(raw, func(m string) string {
		return st.Bold(boldRe.FindStringSubmatch(m)[1])
	})
	out = italicRe.ReplaceAllStringFunc(out, func(m string) string {
		return st.Italic(italicRe.FindStringSubmatch(m)[1])
	})
	out = codeRe.ReplaceAllStringFunc(out, func(m string) string {
		return st.Code(codeRe.FindStringSubmatch(m)[1])
	})
	return out
}

// =============================================================================
// SANITIZING
// =============================================================================

// Sanitize strips terminal control characters from untrusted text.
// Backend output could otherwise smuggle ANSI escape sequences into the
// transcript; only newlines and tabs survive from the control range.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
