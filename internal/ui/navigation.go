package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/search-menu/internal/logging/events"
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/ui/command"
)

func overflowLevelID(item menu.Item) string {
	return overflowLevelPrefix + item.ID
}

func (m *Model) openMenu() {
	root := m.stack[0]
	m.stack = m.stack[:1]
	m.resetFilter(root)
	if idx := root.SelectedIndex(); idx >= 0 {
		root.Cursor = idx
	} else {
		root.Cursor = 0
	}
	root.SettleCursor()
	m.syncViewport(root)
	m.mode = ModeMenu
	m.status.errText = ""
	events.UI.MenuOpen(len(root.Items))
}

func (m *Model) closeMenu(reason string) {
	for _, lvl := range m.stack {
		m.resetFilter(lvl)
	}
	m.stack = m.stack[:1]
	m.mode = ModeButton
	events.UI.MenuClose(reason)
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if len(m.stack) <= 1 {
		m.closeMenu("escape")
		m.status.clearNotice()
		return nil
	}
	current := m.currentLevel()
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	parent.SelectID(current.Origin)
	parent.SettleCursor()
	m.syncViewport(parent)
	m.status.reset()
	return nil
}

// openOverflow pushes the rename/delete level for the saved search under the
// cursor.
func (m *Model) openOverflow() bool {
	current := m.currentLevel()
	if current == nil || len(m.stack) > 1 {
		return false
	}
	item, ok := current.CurrentItem()
	if !ok || !item.Entry.HasOverflow() {
		return false
	}
	if item.Entry.OverflowDisabled {
		m.status.notify(fmt.Sprintf("%s is being deleted", item.Label))
		return true
	}
	events.UI.Overflow(item.ID)
	overflow := newLevel(overflowLevelID(item), item.Label, menu.OverflowItems(item))
	overflow.Origin = item.ID
	m.syncViewport(overflow)
	m.stack = append(m.stack, overflow)
	return true
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.status.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.CurrentItem()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter())
	if item.Disabled() {
		m.status.notify(fmt.Sprintf("%s is unavailable", item.Label))
		return nil
	}
	return m.runItem(item)
}

func (m *Model) runItem(item menu.Item) tea.Cmd {
	cmd := item.Entry.Command
	if cmd.CloseMenu {
		m.closeMenu(cmd.Kind.String())
	}
	if cmd.Kind == search.CommandDismiss {
		return nil
	}
	action, ok := m.registry.Find(cmd.Kind)
	if !ok {
		m.status.notify(fmt.Sprintf("Selected %s (no action defined)", item.Label))
		return nil
	}
	m.status.begin(item.ID, item.Label)
	run := m.bus.Execute(m.menuContext(), command.Request{ID: item.ID, Label: item.Label, Handler: action, Item: item})
	if run == nil {
		m.status.settle()
	}
	return run
}

// triggerFilters runs the filters button next to the menu heading.
func (m *Model) triggerFilters() tea.Cmd {
	if m.status.loading {
		return nil
	}
	return m.runItem(menu.FiltersItem())
}

func (m *Model) moveCursor(move func(*level) bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if move(current) {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

// pageSize is the number of rows a page key moves: the visible rows, or
// every item when the height is unbounded.
func (m *Model) pageSize(l *level) int {
	size := m.maxVisibleItems()
	if size <= 0 || size > len(l.Items) {
		size = len(l.Items)
	}
	return max(size, 1)
}

func (m *Model) syncViewport(l *level) {
	if l != nil {
		l.Scroll(m.maxVisibleItems())
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeButton:
		return m.handleButtonKey(keyMsg)
	case ModeMenu:
		return m.handleMenuKey(keyMsg)
	}
	return nil
}

func (m *Model) handleButtonKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.button.Quit):
		return tea.Quit
	case key.Matches(msg, keys.button.Open):
		if !m.status.loading {
			m.openMenu()
		}
	case key.Matches(msg, keys.button.Filters):
		return m.triggerFilters()
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyTab {
		m.openOverflow()
		return nil
	}
	if m.handleTextInput(msg) {
		return nil
	}
	km := keys.menu
	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit
	case msg.Type == tea.KeyLeft:
		if len(m.stack) > 1 {
			return m.handleEscapeKey()
		}
	case key.Matches(msg, km.Back):
		return m.handleEscapeKey()
	case key.Matches(msg, km.Actions):
		m.openOverflow()
	case key.Matches(msg, km.Select):
		return m.handleEnterKey()
	case key.Matches(msg, km.Up):
		m.moveCursor((*level).MoveCursorUp)
	case key.Matches(msg, km.Down):
		m.moveCursor((*level).MoveCursorDown)
	case key.Matches(msg, km.PageUp):
		m.moveCursor(func(l *level) bool { return l.MoveCursorBy(-m.pageSize(l)) })
	case key.Matches(msg, km.PageDown):
		m.moveCursor(func(l *level) bool { return l.MoveCursorBy(m.pageSize(l)) })
	case key.Matches(msg, km.Home):
		m.moveCursor(func(l *level) bool { return l.MoveCursorTo(0) })
	case key.Matches(msg, km.End):
		m.moveCursor(func(l *level) bool { return l.MoveCursorTo(len(l.Items) - 1) })
	}
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
