package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/search-menu/internal/logging/events"
	uistate "github.com/atomicstack/search-menu/internal/ui/state"
)

const filterPlaceholder = "filter types and saved searches"

type filterEdit struct {
	name    string
	binding key.Binding
	edit    func(*uistate.Line) bool
}

var filterEdits = []filterEdit{
	{"clear", keys.filter.Clear, (*uistate.Line).Clear},
	{"delete-word", keys.filter.DeleteWord, (*uistate.Line).DeleteWord},
	{"backspace", keys.filter.Backspace, (*uistate.Line).Backspace},
	{"start", keys.filter.Start, (*uistate.Line).Home},
	{"end", keys.filter.End, (*uistate.Line).End},
	{"word-left", keys.filter.WordLeft, (*uistate.Line).WordLeft},
	{"word-right", keys.filter.WordRight, (*uistate.Line).WordRight},
	{"left", keys.filter.Left, (*uistate.Line).Left},
	{"right", keys.filter.Right, (*uistate.Line).Right},
}

// handleTextInput routes printable keys and line editing keys to the filter
// of the current level. It reports whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if m.status.loading || current == nil {
		return false
	}
	for _, fe := range filterEdits {
		if key.Matches(msg, fe.binding) {
			return m.editFilter(current, fe.name, fe.edit)
		}
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt || !printable(msg.Runes) {
			return false
		}
		text := string(msg.Runes)
		return m.editFilter(current, "insert", func(ln *uistate.Line) bool { return ln.Insert(text) })
	}
	return false
}

func printable(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func (m *Model) editFilter(l *level, op string, edit func(*uistate.Line) bool) bool {
	before := l.FilterLine()
	if !l.EditFilter(edit) {
		return false
	}
	after := l.FilterLine()
	if after.Pos() != before.Pos() {
		m.filterCursorDirty = true
	}
	if after.String() == before.String() {
		events.Filter.Cursor(l.ID, op, after.Pos())
		return true
	}
	m.status.reset()
	events.Filter.Changed(l.ID, op, after.String())
	m.syncViewport(l)
	return true
}

func (m *Model) resetFilter(l *level) {
	if l != nil && l.ClearFilter() {
		m.filterCursorDirty = true
	}
}

// filterPrompt renders the filter line with its cursor, or the placeholder
// when nothing has been typed.
func (m *Model) filterPrompt() string {
	prompt := render(styles.FilterPrompt, "» ")
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	ln := current.FilterLine()
	if ln.Empty() {
		hint := []rune(filterPlaceholder)
		return prompt + m.renderFilterCursor(string(hint[0]), styles.FilterPlaceholder) +
			render(styles.FilterPlaceholder, string(hint[1:]))
	}
	before, at, after := ln.Split()
	return prompt + render(styles.Filter, before) + m.renderFilterCursor(at, styles.Filter) +
		render(styles.Filter, after)
}

func (m *Model) renderFilterCursor(char string, text *lipgloss.Style) string {
	m.filterCursor.TextStyle = lipgloss.NewStyle()
	if text != nil {
		m.filterCursor.TextStyle = *text
	}
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
