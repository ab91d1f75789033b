// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
	"github.com/jeranaias/askdoc-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: connection state on the left, key hints
// on the right.
type StatusBar struct {
	Width     int
	Connected bool
	Sending   bool
	Shortcuts []Shortcut
	theme     *styles.Theme
}

// NewStatusBar creates a status bar with the given shortcuts.
func NewStatusBar(theme *styles.Theme, shortcuts []Shortcut) *StatusBar {
	return &StatusBar{
		Width:     80,
		Shortcuts: shortcuts,
		theme:     theme,
	}
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var left string
	switch {
	case s.Sending:
		left = s.theme.ThinkingText.Render("asking...")
	case s.Connected:
		left = s.theme.Connected.Render("connected")
	default:
		left = s.theme.Disconnected.Render("service unreachable")
	}

	hints := make([]string, 0, len(s.Shortcuts))
	for _, sc := range s.Shortcuts {
		hints = append(hints, s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return s.theme.StatusBar.Width(s.Width).Render(left + util.PadRight("", gap) + right)
}
