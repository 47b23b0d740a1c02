package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fnview/fnview/internal/lambda"
	"github.com/fnview/fnview/internal/logging/events"
	"github.com/fnview/fnview/internal/theme"
	"github.com/fnview/fnview/internal/ui/state"
)

// Model implements the Bubble Tea model for the function browser. The catalog
// is fixed for the lifetime of the program; only the selection cursor and the
// viewport move.
type Model struct {
	catalog   lambda.Catalog
	selection *state.Selection
	styles    *theme.Styles
	keys      keyMap

	width          int
	height         int
	fixedWidth     bool
	fixedHeight    bool
	showFooter     bool
	viewportOffset int
}

// NewModel initialises the UI over an already-retrieved catalog.
func NewModel(catalog lambda.Catalog, styles *theme.Styles, width, height int, showFooter bool) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		catalog:    catalog,
		selection:  state.NewSelection(len(catalog)),
		styles:     styles,
		keys:       defaultKeyMap(),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages. Only key-press and resize messages
// are actionable; everything else is dropped without a transition.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.handleWindowSizeMsg(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	if !m.fixedWidth {
		m.width = msg.Width
	}
	if !m.fixedHeight {
		m.height = msg.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
}

// cursorIndex returns the selected index or state.NoSelection.
func (m *Model) cursorIndex() int {
	idx, ok := m.selection.Index()
	if !ok {
		return state.NoSelection
	}
	return idx
}

// maxVisibleRows returns how many list rows fit above the detail block, or 0
// when the height is unknown and the list is unbounded.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 1 + detailRows
	if m.showFooter {
		reserved += footerRows
	}
	rows := m.height - reserved
	if rows < 1 {
		return 1
	}
	return rows
}

// syncViewport clamps the viewport offset so the cursor stays visible.
func (m *Model) syncViewport() {
	maxVisible := m.maxVisibleRows()
	total := len(m.catalog)
	if total == 0 || maxVisible <= 0 {
		m.viewportOffset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.viewportOffset > maxOffset {
		m.viewportOffset = maxOffset
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
	cursor, ok := m.selection.Index()
	if !ok {
		return
	}
	if cursor < m.viewportOffset {
		m.viewportOffset = cursor
	}
	if upper := m.viewportOffset + maxVisible - 1; cursor > upper {
		m.viewportOffset = cursor - maxVisible + 1
	}
}
