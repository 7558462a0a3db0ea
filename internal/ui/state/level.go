package state

import (
	"strings"

	"github.com/atomicstack/search-menu/internal/menu"
)

// Level is one menu on the navigation stack: its items, the filter typed
// over them, the cursor and the first visible row.
type Level struct {
	ID    string
	Title string
	// Full holds every item; Items holds those the filter keeps.
	Full   []menu.Item
	Items  []menu.Item
	Cursor int
	Offset int
	// Origin is the ID of the parent item this level was opened from.
	Origin string

	filter Line
	// unfiltered remembers the cursor from before the filter was typed.
	unfiltered int
}

// NewLevel constructs a Level over items with the cursor on the first
// selectable one.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{ID: id, Title: title, Cursor: -1, unfiltered: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible index of the item with id, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems swaps in a fresh item list. The cursor stays on the same item
// when it survives and the filter is reapplied.
func (l *Level) UpdateItems(items []menu.Item) {
	keep := ""
	if item, ok := l.CurrentItem(); ok {
		keep = item.ID
	}
	l.Full = cloneItems(items)
	l.Items = FilterItems(l.Full, l.filter.String())
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
	l.SettleCursor()
	if l.Offset < 0 || l.Offset >= len(l.Items) {
		l.Offset = 0
	}
}

// Filter returns the typed filter text.
func (l *Level) Filter() string { return l.filter.String() }

// FilterLine returns a copy of the filter buffer for rendering.
func (l *Level) FilterLine() Line { return l.filter }

// EditFilter applies edit to the filter buffer and refilters when the text
// changed. It reports whether the text or the cursor moved.
func (l *Level) EditFilter(edit func(*Line) bool) bool {
	before := l.filter.String()
	if !edit(&l.filter) {
		return false
	}
	if l.filter.String() != before {
		l.refilter(before)
	}
	return true
}

// SetFilter replaces the filter text.
func (l *Level) SetFilter(text string) bool {
	return l.EditFilter(func(ln *Line) bool { return ln.Set(text) })
}

// ClearFilter empties the filter, putting the cursor back where it was
// before the filter was typed.
func (l *Level) ClearFilter() bool {
	return l.EditFilter((*Line).Clear)
}

func (l *Level) refilter(before string) {
	had := strings.TrimSpace(before) != ""
	needle := strings.TrimSpace(l.filter.String())
	if needle != "" && !had {
		l.unfiltered = l.Cursor
	}
	l.Items = FilterItems(l.Full, needle)
	switch {
	case needle != "":
		l.Cursor = BestMatchIndex(l.Items, needle)
	case had:
		l.Cursor = l.unfiltered
		l.unfiltered = -1
	}
	l.Offset = 0
	l.SettleCursor()
}

func cloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
