package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

func newTestLevel(ids ...string) *Level {
	items := make([]menu.Item, len(ids))
	for i, id := range ids {
		items[i] = menu.Item{ID: id, Label: id}
	}
	return NewLevel("test", "Test", items)
}

func TestNewLevelSettlesOnFirstSelectable(t *testing.T) {
	items := sectionItems()[2:]
	l := NewLevel("test", "Test", items)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor past the header, got %d", l.Cursor)
	}
	if NewLevel("test", "Test", items[:1]).HasSelectable() {
		t.Fatalf("expected header-only level to have nothing selectable")
	}
}

func TestFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestLevel("one", "two", "three")
	l.Cursor = 2
	if !l.SetFilter("two") {
		t.Fatalf("expected filter change")
	}
	if l.Filter() != "two" || l.FilterLine().Pos() != 3 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter(), l.FilterLine().Pos())
	}
	if !reflect.DeepEqual(itemIDs(l.Items), []string{"two"}) || l.Cursor != 0 {
		t.Fatalf("expected only 'two' under the cursor, got %v/%d", itemIDs(l.Items), l.Cursor)
	}
	if !l.ClearFilter() {
		t.Fatalf("expected clear to change the filter")
	}
	if l.Cursor != 2 || len(l.Items) != 3 {
		t.Fatalf("expected cursor restored to 2 over all items, got %d", l.Cursor)
	}
	if l.ClearFilter() {
		t.Fatalf("expected clearing an empty filter to do nothing")
	}
}

func TestEditFilterMovesToBestMatch(t *testing.T) {
	l := NewLevel("test", "Test", sectionItems())
	l.EditFilter(func(ln *Line) bool { return ln.Insert("cof") })
	if item, _ := l.CurrentItem(); item.ID != "saved:2" {
		t.Fatalf("expected coffee receipts under the cursor, got %q", item.ID)
	}
	moved := l.EditFilter((*Line).Home)
	if !moved || l.Filter() != "cof" {
		t.Fatalf("expected cursor move without changing the text")
	}
}

func TestUpdateItemsKeepsCursorOnSameItem(t *testing.T) {
	l := NewLevel("test", "Test", sectionItems())
	l.Cursor = 4
	full := sectionItems()
	l.UpdateItems([]menu.Item{full[0], full[1], full[2], full[4], full[3]})
	if item, _ := l.CurrentItem(); item.ID != "saved:2" || l.Cursor != 3 {
		t.Fatalf("expected cursor to follow saved:2 to 3, got %q at %d", item.ID, l.Cursor)
	}
	l.UpdateItems(full[:2])
	if l.Cursor != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", l.Cursor)
	}
}

func TestUpdateItemsReappliesFilter(t *testing.T) {
	l := NewLevel("test", "Test", sectionItems())
	l.SetFilter("trips")
	l.UpdateItems(append(sectionItems(), menu.Item{
		ID: "saved:3", Label: "Road trips", Entry: search.MenuItem{Kind: search.KindSaved},
	}))
	want := []string{"header", "saved:1", "saved:3"}
	if got := itemIDs(l.Items); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCursorStepsSkipHeaderAndWrap(t *testing.T) {
	l := NewLevel("test", "Test", sectionItems())
	l.Cursor = 1
	if !l.MoveCursorDown() || l.Cursor != 3 {
		t.Fatalf("expected cursor to skip the header onto 3, got %d", l.Cursor)
	}
	if !l.MoveCursorUp() || l.Cursor != 1 {
		t.Fatalf("expected cursor back on 1, got %d", l.Cursor)
	}
	l.Cursor = 4
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to 0, got %d", l.Cursor)
	}
	if !l.MoveCursorUp() || l.Cursor != 4 {
		t.Fatalf("expected wrap to 4, got %d", l.Cursor)
	}
}

func TestMoveCursorToAndBy(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	steps := []struct {
		delta int
		moved bool
		want  int
	}{
		{2, true, 2},
		{2, true, 4},
		{2, false, 4},
		{-2, true, 2},
		{-10, true, 0},
	}
	for i, step := range steps {
		if moved := l.MoveCursorBy(step.delta); moved != step.moved || l.Cursor != step.want {
			t.Fatalf("step %d: moved=%v cursor=%d, want %v/%d", i, moved, l.Cursor, step.moved, step.want)
		}
	}
	sections := NewLevel("test", "Test", sectionItems())
	if !sections.MoveCursorTo(2) || sections.Cursor != 3 {
		t.Fatalf("expected landing on the header to settle on 3, got %d", sections.Cursor)
	}
	if !sections.MoveCursorTo(99) || sections.Cursor != 4 {
		t.Fatalf("expected end of list, got %d", sections.Cursor)
	}
	if newTestLevel().MoveCursorTo(3) {
		t.Fatalf("expected no movement without items")
	}
}

func TestSelectedIndexPrefersSavedSearch(t *testing.T) {
	items := sectionItems()
	items[0].Entry.Selected = true
	items[3].Entry.Selected = true
	l := NewLevel("test", "Test", items)
	if idx := l.SelectedIndex(); idx != 3 {
		t.Fatalf("expected saved search index 3, got %d", idx)
	}
	if !l.SelectID("type:1") || l.Cursor != 1 {
		t.Fatalf("expected SelectID to move the cursor, got %d", l.Cursor)
	}
	if l.SelectID("header") {
		t.Fatalf("expected header not to be selectable")
	}
}

func TestWindowFollowsCursor(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	if start, end := l.Window(2); start != 3 || end != 5 {
		t.Fatalf("expected rows 3-5, got %d-%d", start, end)
	}
	l.Cursor = 1
	if start, end := l.Window(3); start != 1 || end != 4 {
		t.Fatalf("expected rows 1-4, got %d-%d", start, end)
	}
	if start, end := l.Window(0); start != 0 || end != 5 || l.Offset != 0 {
		t.Fatalf("expected every row without a limit, got %d-%d", start, end)
	}
	l.Cursor = -1
	l.Scroll(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalised to 0, got %d", l.Cursor)
	}
	empty := newTestLevel()
	if start, end := empty.Window(3); start != 0 || end != 0 {
		t.Fatalf("expected empty window, got %d-%d", start, end)
	}
}
