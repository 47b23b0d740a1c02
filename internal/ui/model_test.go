package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fnview/fnview/internal/theme"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func pressKeys(t *testing.T, m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestKeyNextSelectsFirst(t *testing.T) {
	m := NewModel(testCatalog("a", "b", "c"), theme.Default(), 0, 0, false)
	pressKeys(t, m, keyRunes('j'))
	if got := m.cursorIndex(); got != 0 {
		t.Fatalf("expected cursor 0, got %d", got)
	}
}

func TestKeyNavigationSequence(t *testing.T) {
	m := NewModel(testCatalog("a", "b", "c"), theme.Default(), 0, 0, false)
	pressKeys(t, m, keyRunes('j'), keyRunes('j'))
	if got := m.cursorIndex(); got != 1 {
		t.Fatalf("expected cursor 1, got %d", got)
	}
	pressKeys(t, m, keyRunes('G'))
	if got := m.cursorIndex(); got != 2 {
		t.Fatalf("expected cursor 2 after G, got %d", got)
	}
	pressKeys(t, m, keyRunes('j'))
	if got := m.cursorIndex(); got != 2 {
		t.Fatalf("expected no wraparound past the end, got %d", got)
	}
	pressKeys(t, m, keyRunes('g'))
	if got := m.cursorIndex(); got != 0 {
		t.Fatalf("expected cursor 0 after g, got %d", got)
	}
	pressKeys(t, m, keyRunes('k'))
	if got := m.cursorIndex(); got != 0 {
		t.Fatalf("expected no wraparound before the start, got %d", got)
	}
}

func TestArrowKeysMirrorViKeys(t *testing.T) {
	m := NewModel(testCatalog("a", "b"), theme.Default(), 0, 0, false)
	pressKeys(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.cursorIndex(); got != 0 {
		t.Fatalf("expected down arrow to select first, got %d", got)
	}
	pressKeys(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if _, ok := m.selection.Index(); ok {
		t.Fatal("expected left arrow to deselect")
	}
	pressKeys(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.cursorIndex(); got != 1 {
		t.Fatalf("expected up arrow from nothing to select last, got %d", got)
	}
}

func TestDeselectThenNextRestartsAtTop(t *testing.T) {
	m := NewModel(testCatalog("a", "b", "c"), theme.Default(), 0, 0, false)
	pressKeys(t, m, keyRunes('G'), keyRunes('h'))
	if _, ok := m.selection.Index(); ok {
		t.Fatal("expected deselected cursor after h")
	}
	pressKeys(t, m, keyRunes('j'))
	if got := m.cursorIndex(); got != 0 {
		t.Fatalf("expected cursor 0 after reselect, got %d", got)
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	m := NewModel(testCatalog("a", "b"), theme.Default(), 0, 0, false)
	pressKeys(t, m, keyRunes('j'))
	before := m.cursorIndex()
	cmd := pressKeys(t, m, keyRunes('x'), keyRunes('1'), tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Fatal("expected no command for unbound keys")
	}
	if got := m.cursorIndex(); got != before {
		t.Fatalf("expected cursor unchanged, got %d", got)
	}
}

func TestQuitKeysReturnQuitCommand(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		keyRunes('q'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := NewModel(testCatalog("a"), theme.Default(), 0, 0, false)
		cmd := pressKeys(t, m, msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", msg.String())
		}
	}
}

func TestEmptyCatalogKeepsCursorCleared(t *testing.T) {
	m := NewModel(nil, theme.Default(), 0, 0, false)
	pressKeys(t, m,
		keyRunes('j'), keyRunes('k'), keyRunes('g'), keyRunes('G'), keyRunes('h'),
	)
	if _, ok := m.selection.Index(); ok {
		t.Fatal("expected no selection over an empty catalog")
	}
}

func TestWindowSizeMsgTracksTerminal(t *testing.T) {
	m := NewModel(testCatalog("a"), theme.Default(), 0, 0, false)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 || m.height != 40 {
		t.Fatalf("expected 100x40, got %dx%d", m.width, m.height)
	}
}

func TestFixedDimensionsIgnoreResize(t *testing.T) {
	m := NewModel(testCatalog("a"), theme.Default(), 80, 24, false)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 80 || m.height != 24 {
		t.Fatalf("expected fixed 80x24, got %dx%d", m.width, m.height)
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	catalog := testCatalog("a", "b", "c", "d", "e", "f", "g", "h")
	// Height 6 leaves 3 visible list rows (header + detail block reserved).
	m := NewModel(catalog, theme.Default(), 0, 6, false)
	pressKeys(t, m, keyRunes('G'))
	maxVisible := m.maxVisibleRows()
	cursor := m.cursorIndex()
	if cursor < m.viewportOffset || cursor > m.viewportOffset+maxVisible-1 {
		t.Fatalf("cursor %d outside viewport [%d, %d]", cursor, m.viewportOffset, m.viewportOffset+maxVisible-1)
	}
	pressKeys(t, m, keyRunes('g'))
	if m.viewportOffset != 0 {
		t.Fatalf("expected viewport reset to top, got %d", m.viewportOffset)
	}
}
