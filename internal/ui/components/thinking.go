// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
)

// =============================================================================
// THINKING INDICATOR
// =============================================================================

// ThinkingIndicator is the animated pending-answer row shown while a
// question is in flight. It takes the place of the next assistant
// bubble and is replaced by the real answer or error reply.
type ThinkingIndicator struct {
	spinner   spinner.Model
	theme     *styles.Theme
	startedAt time.Time
}

// NewThinkingIndicator creates the indicator.
func NewThinkingIndicator(theme *styles.Theme) ThinkingIndicator {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner
	return ThinkingIndicator{
		spinner: sp,
		theme:   theme,
	}
}

// Start resets the elapsed timer and returns the tick command.
func (t *ThinkingIndicator) Start() tea.Cmd {
	t.startedAt = time.Now()
	return t.spinner.Tick
}

// Update advances the spinner animation.
func (t ThinkingIndicator) Update(msg tea.Msg) (ThinkingIndicator, tea.Cmd) {
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator row.
func (t ThinkingIndicator) View() string {
	label := "Thinking..."
	if !t.startedAt.IsZero() {
		if elapsed := time.Since(t.startedAt).Round(time.Second); elapsed >= 2*time.Second {
			label = "Thinking... (" + elapsed.String() + ")"
		}
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.theme.Avatar.Render(botAvatar),
		t.spinner.View(),
		" ",
		t.theme.ThinkingText.Render(label),
	)
}
