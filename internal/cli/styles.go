// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for the plain surfaces.

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
)

var (
	// Prompt style for the REPL input line.
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style.
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Informational text style.
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Slash command and value style.
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warning style.
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Error style.
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	// Section header style for help and status output.
	headerStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Source snippet style for answer context.
	sourceStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)
