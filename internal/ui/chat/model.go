// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the Bubble Tea model for the askdoc TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/askdoc-tui/internal/backend"
	"github.com/jeranaias/askdoc-tui/internal/config"
	"github.com/jeranaias/askdoc-tui/internal/controller"
	"github.com/jeranaias/askdoc-tui/internal/history"
	"github.com/jeranaias/askdoc-tui/internal/model"
	"github.com/jeranaias/askdoc-tui/internal/search"
	"github.com/jeranaias/askdoc-tui/internal/storage"
	"github.com/jeranaias/askdoc-tui/internal/ui/components"
	"github.com/jeranaias/askdoc-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Styling
	theme    *styles.Theme
	darkMode bool

	// Wiring
	cfg    config.Config
	store  *storage.Store
	client *backend.Client
	ctrl   *controller.Controller
	index  *search.LogIndex // nil when the index failed to open

	// Dimensions
	width  int
	height int
	ready  bool

	// UI components
	viewport    viewport.Model
	input       textinput.Model
	searchInput textinput.Model
	thinking    components.ThinkingIndicator
	status      *components.StatusBar
	historyList *components.HistoryList

	// Key bindings
	keyMap KeyMap

	// Transcript state. transcript is the live session; viewing is set
	// while a history selection replaces it on screen.
	transcript []model.Message
	viewing    *history.Conversation

	// Modes
	showSidebar bool
	searchMode  bool

	// Search results shown instead of the transcript while searchMode
	// has a completed query.
	searchResults []search.Result
	searchQuery   string

	// Status
	connected  bool
	statusNote string
}

// New creates the chat model. The index may be nil; search is then
// reported as unavailable instead of failing startup.
func New(cfg config.Config, store *storage.Store, client *backend.Client, index *search.LogIndex) *Model {
	prefs := store.LoadPrefs()
	theme := styles.NewThemeWithDark(prefs.DarkMode)

	input := textinput.New()
	input.Placeholder = "Ask a question about the document..."
	input.CharLimit = 2000
	input.Focus()

	searchInput := textinput.New()
	searchInput.Placeholder = "Search history..."
	searchInput.CharLimit = 200

	keyMap := DefaultKeyMap()
	statusBar := components.NewStatusBar(theme, []components.Shortcut{
		{Key: "C-h", Desc: "history"},
		{Key: "C-f", Desc: "search"},
		{Key: "C-e", Desc: "export"},
		{Key: "C-l", Desc: "clear"},
		{Key: "C-t", Desc: "theme"},
		{Key: "C-c", Desc: "quit"},
	})

	m := &Model{
		theme:       theme,
		darkMode:    prefs.DarkMode,
		cfg:         cfg,
		store:       store,
		client:      client,
		ctrl:        controller.New(store),
		index:       index,
		input:       input,
		searchInput: searchInput,
		thinking:    components.NewThinkingIndicator(theme),
		status:      statusBar,
		historyList: components.NewHistoryList(theme, cfg.History.PreviewRunes),
		keyMap:      keyMap,
		transcript:  store.Load(),
	}
	m.refreshGroups()
	return m
}

// Init starts the cursor blink and the first health probe.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, PingCmd(m.client), pingTickCmd())
}

// =============================================================================
// DERIVED STATE
// =============================================================================

// refreshGroups re-derives the sidebar contents from the log. Day
// buckets keep log order; the entries within each day list newest first.
func (m *Model) refreshGroups() {
	convs := history.Segment(m.store.Load())
	m.historyList.SetGroups(history.NewestFirst(history.Group(convs)))
}

// displayed returns the messages the viewport should render.
func (m *Model) displayed() []model.Message {
	if m.viewing != nil {
		return m.viewing.Messages
	}
	return m.transcript
}

// rebuildViewport re-renders the transcript into the viewport and
// follows the tail.
func (m *Model) rebuildViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
