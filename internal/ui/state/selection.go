package state

import (
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

// CurrentItem returns the item under the cursor.
func (l *Level) CurrentItem() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// Selectable reports whether the item at idx can take the cursor.
func (l *Level) Selectable(idx int) bool {
	if idx < 0 || idx >= len(l.Items) {
		return false
	}
	return l.Items[idx].Entry.Kind != search.KindHeader
}

// HasSelectable reports whether any item can take the cursor.
func (l *Level) HasSelectable() bool {
	for i := range l.Items {
		if l.Selectable(i) {
			return true
		}
	}
	return false
}

// SelectedIndex returns the index of the item the assembler marked as
// selected, preferring saved searches over type entries.
func (l *Level) SelectedIndex() int {
	found := -1
	for i, item := range l.Items {
		if !item.Entry.Selected {
			continue
		}
		if found < 0 || item.Entry.Kind > l.Items[found].Entry.Kind {
			found = i
		}
	}
	return found
}

// SelectID moves the cursor onto the item with id.
func (l *Level) SelectID(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 || !l.Selectable(idx) {
		return false
	}
	l.Cursor = idx
	return true
}

// SettleCursor moves the cursor off section headers, searching forward first.
func (l *Level) SettleCursor() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.Selectable(l.Cursor) {
		return
	}
	for i := l.Cursor + 1; i < len(l.Items); i++ {
		if l.Selectable(i) {
			l.Cursor = i
			return
		}
	}
	for i := l.Cursor - 1; i >= 0; i-- {
		if l.Selectable(i) {
			l.Cursor = i
			return
		}
	}
}

// MoveCursorUp moves to the previous selectable item, wrapping around.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

// MoveCursorDown moves to the next selectable item, wrapping around.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

func (l *Level) step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	idx := l.Cursor
	for i := 0; i < n; i++ {
		idx = (idx + delta + n) % n
		if l.Selectable(idx) {
			l.Cursor = idx
			return l.Cursor != old
		}
	}
	return false
}

// MoveCursorTo puts the cursor on idx, clamped to the items, then off any
// header.
func (l *Level) MoveCursorTo(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = min(max(idx, 0), len(l.Items)-1)
	l.SettleCursor()
	return l.Cursor != old
}

// MoveCursorBy shifts the cursor by delta rows without wrapping.
func (l *Level) MoveCursorBy(delta int) bool {
	return l.MoveCursorTo(max(l.Cursor, 0) + delta)
}
