// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/askdoc-tui/internal/controller"
	"github.com/jeranaias/askdoc-tui/internal/storage"
	"github.com/jeranaias/askdoc-tui/internal/ui/components"
	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AskResultMsg:
		return m.handleAskResult(msg)

	case PingResultMsg:
		m.connected = msg.Alive
		m.status.Connected = msg.Alive
		return m, nil

	case pingTickMsg:
		return m, tea.Batch(PingCmd(m.client), pingTickCmd())

	case ExportDoneMsg:
		if msg.Err != nil {
			m.statusNote = "Export failed: " + msg.Err.Error()
		} else {
			m.statusNote = "Exported to " + msg.Path
		}
		return m, nil

	case ClearDoneMsg:
		if msg.Err != nil {
			m.statusNote = "Clear failed: " + msg.Err.Error()
			return m, nil
		}
		m.transcript = nil
		m.viewing = nil
		m.statusNote = "History cleared"
		m.refreshGroups()
		m.rebuildViewport()
		return m, nil

	case SearchResultMsg:
		if msg.Err != nil {
			m.statusNote = "Search unavailable: " + msg.Err.Error()
			return m, nil
		}
		m.searchQuery = msg.Query
		m.searchResults = msg.Results
		m.rebuildViewport()
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Busy() {
			var cmd tea.Cmd
			m.thinking, cmd = m.thinking.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// handleResize lays the chrome out for a new terminal size.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Header, input row, and status bar each take a line plus borders.
	contentHeight := m.height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	contentWidth := m.width
	if m.showSidebar {
		contentWidth -= m.sidebarWidth()
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}

	m.historyList.Height = contentHeight
	m.input.Width = m.width - 8
	m.searchInput.Width = m.width - 8
	m.status.Width = m.width

	m.rebuildViewport()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if m.searchMode {
		return m.handleSearchKey(msg)
	}
	if m.showSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleMainKey(msg)
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submitQuestion()

	case key.Matches(msg, m.keyMap.History):
		m.showSidebar = true
		m.refreshGroups()
		return m.handleResize(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	case key.Matches(msg, m.keyMap.Search):
		m.searchMode = true
		m.searchResults = nil
		m.searchQuery = ""
		m.searchInput.SetValue("")
		m.input.Blur()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keyMap.Export):
		return m, ExportCmd(m.store)

	case key.Matches(msg, m.keyMap.Clear):
		if m.ctrl.Busy() {
			return m, nil
		}
		return m, ClearCmd(m.store)

	case key.Matches(msg, m.keyMap.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keyMap.Back):
		if m.viewing != nil {
			m.viewing = nil
			m.rebuildViewport()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.historyList.MoveUp()
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.historyList.MoveDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		// Selection replaces the transcript and closes the browser;
		// Esc afterwards returns to the live session.
		if conv, ok := m.historyList.Selected(); ok {
			m.viewing = &conv
			m.showSidebar = false
			return m.handleResize(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Back), key.Matches(msg, m.keyMap.History):
		m.showSidebar = false
		return m.handleResize(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.searchMode = false
		m.searchResults = nil
		m.searchQuery = ""
		m.searchInput.Blur()
		m.rebuildViewport()
		return m, m.input.Focus()

	case key.Matches(msg, m.keyMap.Submit):
		query := m.searchInput.Value()
		return m, SearchCmd(m.index, query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// =============================================================================
// ASK LIFECYCLE
// =============================================================================

// submitQuestion begins an exchange. A submit while one is already in
// flight is dropped without disturbing the pending question, and a
// blank question is a no-op.
func (m *Model) submitQuestion() (tea.Model, tea.Cmd) {
	question, err := m.ctrl.Begin(m.input.Value())
	if err != nil {
		if errors.Is(err, controller.ErrBusy) || errors.Is(err, controller.ErrEmptyQuestion) {
			return m, nil
		}
		m.statusNote = err.Error()
		return m, nil
	}

	m.input.SetValue("")
	m.viewing = nil
	m.transcript = append(m.transcript, question)
	m.status.Sending = true
	m.statusNote = ""
	m.rebuildViewport()

	return m, tea.Batch(
		AskCmd(m.client, question.Text, m.cfg.Timeout()),
		m.thinking.Start(),
	)
}

// handleAskResult resolves the in-flight exchange into a reply bubble.
func (m *Model) handleAskResult(msg AskResultMsg) (tea.Model, tea.Cmd) {
	var (
		exch controller.Exchange
		err  error
	)
	if msg.Err != nil {
		exch, err = m.ctrl.Fail(msg.Err)
	} else {
		exch, err = m.ctrl.Resolve(msg.Answer)
	}
	if err != nil {
		// A result with nothing in flight is stale; drop it.
		return m, nil
	}

	m.status.Sending = false
	m.transcript = append(m.transcript, exch.Reply)
	m.refreshGroups()
	m.rebuildViewport()
	return m, nil
}

// =============================================================================
// THEME
// =============================================================================

// toggleTheme flips dark mode, persists the preference, and restyles
// every component.
func (m *Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.darkMode = !m.darkMode
	if err := m.store.SavePrefs(storage.Prefs{DarkMode: m.darkMode}); err != nil {
		m.statusNote = "Could not save theme preference: " + err.Error()
	}

	m.theme = styles.NewThemeWithDark(m.darkMode)
	m.thinking = components.NewThinkingIndicator(m.theme)
	m.status = components.NewStatusBar(m.theme, m.status.Shortcuts)
	m.status.Width = m.width
	m.status.Connected = m.connected
	m.status.Sending = m.ctrl.Busy()

	list := components.NewHistoryList(m.theme, m.cfg.History.PreviewRunes)
	list.Width = m.historyList.Width
	list.Height = m.historyList.Height
	m.historyList = list
	m.refreshGroups()

	m.rebuildViewport()
	return m, nil
}

// updateFocused forwards unhandled messages to the focused text input.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.searchMode {
		m.searchInput, cmd = m.searchInput.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}
