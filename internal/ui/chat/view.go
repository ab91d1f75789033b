// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askdoc-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole chat screen.
func (m *Model) View() string {
	if !m.ready {
		return "Starting askdoc..."
	}

	var rows []string
	rows = append(rows, m.renderHeader())

	content := m.viewport.View()
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.historyList.View(), content)
	}
	rows = append(rows, content)

	if m.ctrl.Busy() {
		rows = append(rows, m.thinking.View())
	}

	rows = append(rows, m.renderInput())
	if m.statusNote != "" {
		rows = append(rows, m.theme.ShortcutDesc.Render(m.statusNote))
	}
	rows = append(rows, m.status.View())

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("askdoc")
	sub := m.theme.ShortcutDesc.Render(m.client.BaseURL())
	return m.theme.Header.Width(m.width).Render(title + "  " + sub)
}

func (m *Model) renderInput() string {
	if m.searchMode {
		return m.theme.InputContainer.Width(m.width).Render(
			m.theme.InputPrompt.Render("/ ") + m.searchInput.View())
	}
	return m.theme.InputContainer.Width(m.width).Render(
		m.theme.InputPrompt.Render("> ") + m.input.View())
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderTranscript renders the viewport body: search results while a
// query is active, otherwise the displayed message list.
func (m *Model) renderTranscript() string {
	if m.searchMode && m.searchQuery != "" {
		return m.renderSearchResults()
	}

	displayed := m.displayed()
	if len(displayed) == 0 {
		return m.theme.ThinkingText.Render("Ask a question to get started.")
	}

	bubbleWidth := m.viewport.Width
	var parts []string
	for _, msg := range displayed {
		b := components.NewMessageBubble(msg, m.theme)
		b.SetWidth(bubbleWidth)
		parts = append(parts, b.View())
	}
	return strings.Join(parts, "\n\n")
}

// renderSearchResults lists matching messages with previews.
func (m *Model) renderSearchResults() string {
	if len(m.searchResults) == 0 {
		return m.theme.ThinkingText.Render("No matches for \"" + m.searchQuery + "\".")
	}

	var parts []string
	parts = append(parts, m.theme.ContextHeader.Render(
		"Matches for \""+m.searchQuery+"\""))
	for _, r := range m.searchResults {
		line := m.theme.SenderLabel.Render(r.Message.Sender.DisplayName()) +
			" " + m.theme.Timestamp.Render(r.Message.Timestamp.Format("2006-01-02 15:04")) +
			"\n" + r.Message.Preview(120)
		parts = append(parts, m.theme.ContextSnippet.Render(line))
	}
	return strings.Join(parts, "\n\n")
}

// sidebarWidth returns the history sidebar's column width.
func (m *Model) sidebarWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	if w > 44 {
		w = 44
	}
	m.historyList.Width = w
	return w
}
