// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askdoc-tui/internal/history"
	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// HISTORY LIST COMPONENT
// =============================================================================

// HistoryList is the sidebar listing past conversations under their
// date group labels. Selecting an entry is a read-only view over the
// log; the list never mutates what it displays.
type HistoryList struct {
	Width        int
	Height       int
	PreviewRunes int

	groups []history.DateGroup
	cursor int // index into the flattened conversation list
	theme  *styles.Theme
}

// NewHistoryList creates an empty history list.
func NewHistoryList(theme *styles.Theme, previewRunes int) *HistoryList {
	if previewRunes <= 0 {
		previewRunes = 30
	}
	return &HistoryList{
		Width:        32,
		PreviewRunes: previewRunes,
		theme:        theme,
	}
}

// SetGroups replaces the listed groups, clamping the cursor.
func (l *HistoryList) SetGroups(groups []history.DateGroup) {
	l.groups = groups
	if n := l.Len(); l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Len returns the number of listed conversations.
func (l *HistoryList) Len() int {
	n := 0
	for _, g := range l.groups {
		n += len(g.Conversations)
	}
	return n
}

// MoveUp moves the selection one entry up.
func (l *HistoryList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the selection one entry down.
func (l *HistoryList) MoveDown() {
	if l.cursor < l.Len()-1 {
		l.cursor++
	}
}

// Selected returns the conversation under the cursor.
func (l *HistoryList) Selected() (history.Conversation, bool) {
	i := l.cursor
	for _, g := range l.groups {
		if i < len(g.Conversations) {
			return g.Conversations[i], true
		}
		i -= len(g.Conversations)
	}
	return history.Conversation{}, false
}

// View renders the sidebar.
func (l *HistoryList) View() string {
	if l.Len() == 0 {
		empty := l.theme.ShortcutDesc.Render("No conversations yet")
		return l.theme.Sidebar.Width(l.Width).Render(empty)
	}

	itemWidth := l.Width - 4
	if itemWidth < 10 {
		itemWidth = 10
	}

	var lines []string
	flat := 0
	for _, g := range l.groups {
		lines = append(lines, l.theme.DateGroupLabel.Render(g.Label))
		for _, conv := range g.Conversations {
			label := strconv.Itoa(flat+1) + ". " + conv.Preview(l.PreviewRunes)
			label = util.TruncateWidth(label, itemWidth)

			style := l.theme.HistoryItem
			if flat == l.cursor {
				style = l.theme.HistoryItemActive
			}
			lines = append(lines, style.Render(label))
			flat++
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	sidebar := l.theme.Sidebar.Width(l.Width)
	if l.Height > 0 {
		sidebar = sidebar.Height(l.Height)
	}
	return sidebar.Render(body)
}
