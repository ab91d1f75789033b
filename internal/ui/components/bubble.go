// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for askdoc.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askdoc-tui/internal/markup"
	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// userAvatar and botAvatar are the fixed glyphs next to each bubble.
const (
	userAvatar = "Y"
	botAvatar  = "A"
)

// MessageBubble renders a single message. User messages sit on the
// right with the avatar after the content; assistant messages sit on
// the left with the avatar before the content. Error replies use the
// error palette but keep the assistant layout.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	ShowContext   bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for one message.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		ShowContext:   true,
		theme:         theme,
	}
}

// SetWidth sets the total width the bubble may occupy.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.Sender == model.SenderUser {
		return b.renderUser()
	}
	return b.renderBot()
}

// ==========================================================================
// USER BUBBLE - right-aligned, content before avatar
// ==========================================================================

func (b *MessageBubble) renderUser() string {
	// User text is shown verbatim apart from stripping escapes; markup
	// formatting only applies to answers.
	content := markup.Sanitize(b.Message.Text)
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)
	avatar := b.theme.Avatar.Render(userAvatar)
	row := lipgloss.JoinHorizontal(lipgloss.Top, bubble, avatar)

	header := b.theme.SenderLabel.Render(b.Message.Sender.DisplayName())
	if b.ShowTimestamp {
		header += " " + b.renderTimestamp()
	}

	// Push both lines to the right edge.
	right := lipgloss.NewStyle().Width(b.Width).Align(lipgloss.Right)
	return lipgloss.JoinVertical(lipgloss.Right, right.Render(header), right.Render(row))
}

// ==========================================================================
// ASSISTANT BUBBLE - left-aligned, avatar before content
// ==========================================================================

func (b *MessageBubble) renderBot() string {
	content := b.renderBody()
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubbleStyle := b.theme.BotBubble
	if b.Message.IsError {
		bubbleStyle = b.theme.ErrorBubble
	}
	bubble := bubbleStyle.Width(contentWidth).Render(wrapped)
	avatar := b.theme.Avatar.Render(botAvatar)
	row := lipgloss.JoinHorizontal(lipgloss.Top, avatar, bubble)

	header := b.theme.SenderLabel.Render(b.Message.Sender.DisplayName())
	if b.ShowTimestamp {
		header += " " + b.renderTimestamp()
	}

	parts := []string{header, row}
	if b.ShowContext && len(b.Message.Context) > 0 {
		parts = append(parts, b.renderContext())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderBody formats an answer: fenced code blocks get syntax
// highlighting, everything else goes through escape stripping and
// inline markup. Highlighted blocks are client-produced markup and pass
// through as trusted content; sanitizing them would strip the ANSI
// color sequences chroma emits.
func (b *MessageBubble) renderBody() string {
	st := markup.DefaultStyles()
	st.Code = RenderInlineCode

	var out []string
	for _, seg := range splitCodeFences(b.Message.Text) {
		if seg.code {
			cb := NewCodeBlock(seg.language, seg.text, b.theme)
			cb.SetMaxWidth(b.Width - 12)
			out = append(out, markup.Trusted(cb.Render()).Render(st))
		} else {
			out = append(out, markup.Plain(seg.text).Render(st))
		}
	}
	return strings.Join(out, "\n")
}

// renderContext renders the source snippets attached to an answer.
func (b *MessageBubble) renderContext() string {
	lines := []string{b.theme.ContextHeader.Render("Sources")}
	for _, snippet := range b.Message.Context {
		snippet = util.TruncateRunes(strings.ReplaceAll(snippet, "\n", " "), 120)
		lines = append(lines, b.theme.ContextSnippet.Render(snippet))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (b *MessageBubble) renderTimestamp() string {
	ts := b.Message.Timestamp
	if ts.IsZero() {
		return ""
	}
	return b.theme.Timestamp.Render(ts.Format("15:04"))
}

// ==========================================================================
// UTILITY FUNCTIONS
// ==========================================================================

// wordWrap wraps text to fit within the specified display width.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for lineIdx, line := range strings.Split(text, "\n") {
		if lineIdx > 0 {
			result.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if util.StringWidth(currentLine)+1+util.StringWidth(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
	}
	return result.String()
}

// maxLineWidth returns the display width of the widest line.
func maxLineWidth(text string) int {
	maxWidth := 0
	for _, line := range strings.Split(text, "\n") {
		if w := util.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
