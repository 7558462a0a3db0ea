package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type buttonKeyMap struct {
	Open    key.Binding
	Filters key.Binding
	Quit    key.Binding
}

func (k buttonKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Filters, k.Quit}
}

func (k buttonKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type menuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Actions  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	move := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move"))
	return []key.Binding{move, k.Select, k.Actions, k.Back, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Select, k.Actions, k.Back, k.Quit},
	}
}

// filterKeyMap edits the filter line. Left and right fall through to menu
// navigation when the filter cursor cannot move.
type filterKeyMap struct {
	Clear      key.Binding
	DeleteWord key.Binding
	Backspace  key.Binding
	Start      key.Binding
	End        key.Binding
	WordLeft   key.Binding
	WordRight  key.Binding
	Left       key.Binding
	Right      key.Binding
}

type keyMap struct {
	button buttonKeyMap
	menu   menuKeyMap
	filter filterKeyMap
}

var keys = keyMap{
	button: buttonKeyMap{
		Open:    key.NewBinding(key.WithKeys("enter", " ", "down", "j"), key.WithHelp("enter", "open")),
		Filters: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	},
	menu: menuKeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Actions:  key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "actions")),
		Back:     key.NewBinding(key.WithKeys("esc", "left"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	},
	filter: filterKeyMap{
		Clear:      key.NewBinding(key.WithKeys("ctrl+u")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w")),
		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Start:      key.NewBinding(key.WithKeys("ctrl+a")),
		End:        key.NewBinding(key.WithKeys("ctrl+e")),
		WordLeft:   key.NewBinding(key.WithKeys("alt+b")),
		WordRight:  key.NewBinding(key.WithKeys("alt+f")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
	},
}

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	if styles.Footer != nil {
		h.Styles.ShortDesc = *styles.Footer
		h.Styles.ShortSeparator = *styles.Footer
	}
	return h
}
