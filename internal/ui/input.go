package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fnview/fnview/internal/logging/events"
)

// keyMap defines the keyboard bindings for the function browser.
type keyMap struct {
	Quit     key.Binding
	Deselect key.Binding
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←", "unselect"),
		),
		Next: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓", "move down"),
		),
		Previous: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑", "move up"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go top"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go bottom"),
		),
	}
}

// handleKeyMsg applies at most one selection transition per key press.
// Bubble Tea only reports press events, so release/repeat suppression never
// double-steps the cursor. Unbound keys fall through without a transition.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		events.UI.Quit()
		return tea.Quit
	case key.Matches(msg, m.keys.Deselect):
		if m.selection.Deselect() {
			m.noteCursor()
		}
	case key.Matches(msg, m.keys.Next):
		if m.selection.Next() {
			m.noteCursor()
		}
	case key.Matches(msg, m.keys.Previous):
		if m.selection.Previous() {
			m.noteCursor()
		}
	case key.Matches(msg, m.keys.First):
		if m.selection.First() {
			m.noteCursor()
		}
	case key.Matches(msg, m.keys.Last):
		if m.selection.Last() {
			m.noteCursor()
		}
	}
	return nil
}

func (m *Model) noteCursor() {
	idx, ok := m.selection.Index()
	events.UI.Cursor(idx, ok)
	m.syncViewport()
}
