package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness feeds messages to a Model without a terminal and runs the commands
// it returns synchronously. Tests use it to drive whole interactions.
type Harness struct {
	model *Model
	quit  bool
}

func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send delivers msg and then every message its commands produce, until the
// model goes idle or asks to quit.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	pending := []tea.Msg{msg}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		_, cmd := h.model.Update(next)
		pending = append(pending, h.drain(cmd)...)
	}
}

// drain runs cmd and returns the messages the model should see next.
func (h *Harness) drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.QuitMsg:
		h.quit = true
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, h.drain(c)...)
		}
		return out
	default:
		if isCursorBlink(msg) {
			return nil
		}
		return []tea.Msg{msg}
	}
}

// Keys types each key in turn. Names such as "enter" or "ctrl+u" send the
// special key; anything else is typed as runes.
func (h *Harness) Keys(keys ...string) {
	for _, k := range keys {
		h.Send(keyMsg(k))
	}
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+u":    tea.KeyCtrlU,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
}

func keyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	if name == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// isCursorBlink reports blink ticks, which re-arm themselves forever.
func isCursorBlink(msg tea.Msg) bool {
	t := reflect.TypeOf(msg)
	return t != nil && t.PkgPath() == "github.com/charmbracelet/bubbles/cursor"
}

func (h *Harness) Quit() bool {
	return h.quit
}

func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

func (h *Harness) Model() *Model {
	return h.model
}
