package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/navigation"
	"github.com/atomicstack/search-menu/internal/query"
	"github.com/atomicstack/search-menu/internal/search"
)

type fakeStore struct {
	mu     sync.Mutex
	calls  []string
	failOn string
}

func (f *fakeStore) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.HasPrefix(call, f.failOn) {
		return errors.New(call + " failed")
	}
	return nil
}

func (f *fakeStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeStore) ClearAllFilters(context.Context) error {
	return f.record("clear")
}

func (f *fakeStore) SetActiveQuery(_ context.Context, raw string) error {
	return f.record("active:" + raw)
}

func (f *fakeStore) UpdateAdvancedFilters(context.Context, query.FilterFormValues) error {
	return f.record("advanced")
}

func (f *fakeStore) RenameSavedSearch(_ context.Context, _ int64, title string) error {
	return f.record("rename:" + title)
}

func (f *fakeStore) MarkPending(_ context.Context, _ int64, action search.PendingAction) error {
	return f.record("pending:" + string(action))
}

func (f *fakeStore) DeleteSavedSearch(context.Context, int64) error {
	return f.record("delete")
}

func newTestModel(t *testing.T, cfg Config) (*Model, *fakeStore, *navigation.Recorder) {
	t.Helper()
	store := &fakeStore{}
	rec := navigation.NewRecorder()
	cfg.Store = store
	cfg.Navigator = rec
	return NewModel(cfg), store, rec
}

func savedSearch(title, raw string) search.SavedSearch {
	parsed := query.Parse(raw)
	return search.SavedSearch{Hash: parsed.Hash(), Title: title, Query: parsed.Canonical()}
}

func savedEvent(entries ...search.SavedSearch) backendEventMsg {
	return backendEventMsg{event: backend.Event{Kind: backend.KindSavedSearches, Data: entries}}
}

func selectItem(t *testing.T, m *Model, id string) {
	t.Helper()
	if !m.currentLevel().SelectID(id) {
		t.Fatalf("item %q not found in %s", id, m.currentLevel().ID)
	}
}

func TestHeadingForTypeQuery(t *testing.T) {
	m, _, _ := newTestModel(t, Config{Query: "type:chat"})
	got := m.Heading()
	if got.Title != "Chats" || got.Icon != search.IconChat {
		t.Fatalf("unexpected heading %#v", got)
	}
}

func TestHeadingDefaultsToExpenses(t *testing.T) {
	m, _, _ := newTestModel(t, Config{})
	if got := m.Heading().Title; got != "Expenses" {
		t.Fatalf("expected Expenses for empty query, got %q", got)
	}
}

func TestHeadingIgnoresWorkspaceScope(t *testing.T) {
	m, _, _ := newTestModel(t, Config{Query: "type:trip workspace:ws1", WorkspaceID: "ws1"})
	if got := m.Heading().Title; got != "Trips" {
		t.Fatalf("expected Trips, got %q", got)
	}
	root := m.stack[0]
	idx := root.SelectedIndex()
	if idx < 0 || root.Items[idx].ID != menu.TypeItemID(4) {
		t.Fatalf("expected trips entry selected, got index %d", idx)
	}
}

func TestAdHocQueryAddsSyntheticItem(t *testing.T) {
	m, _, _ := newTestModel(t, Config{Query: "merchant:Acme"})
	heading := m.Heading()
	if heading.Icon != search.IconFilters {
		t.Fatalf("expected filters icon, got %v", heading.Icon)
	}
	if heading.Title != "type:expense status:all merchant:Acme" {
		t.Fatalf("expected canonical query as title, got %q", heading.Title)
	}
	root := m.stack[0]
	idx := root.IndexOf(menu.SyntheticID)
	if idx < 0 {
		t.Fatalf("expected synthetic item, got %v", itemIDs(root.Items))
	}
	if root.SelectedIndex() != idx {
		t.Fatalf("expected synthetic item selected, got %d", root.SelectedIndex())
	}
}

func TestSavedSearchEventSelectsMatchingEntry(t *testing.T) {
	travel := savedSearch("Travel", "category:Travel")
	m, _, _ := newTestModel(t, Config{Query: "category:Travel"})
	h := NewHarness(m)
	h.Send(savedEvent(travel, savedSearch("Team trips", "type:trip tag:team")))

	if got := m.Heading().Title; got != "Travel" {
		t.Fatalf("expected saved search title, got %q", got)
	}
	root := m.stack[0]
	if root.IndexOf(menu.SyntheticID) >= 0 {
		t.Fatalf("expected no synthetic item when a saved search matches")
	}
	if idx := root.SelectedIndex(); idx != root.IndexOf(menu.SavedItemID(travel.Hash)) {
		t.Fatalf("expected saved search selected, got %d (%v)", idx, itemIDs(root.Items))
	}
	if root.IndexOf(menu.HeaderID) < 0 {
		t.Fatalf("expected saved section header")
	}
}

func TestActiveQueryEventRebuildsHeading(t *testing.T) {
	m, _, _ := newTestModel(t, Config{Query: "type:chat"})
	h := NewHarness(m)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindActiveQuery, Data: "type:invoice"}})
	if got := m.Heading().Title; got != "Invoices" {
		t.Fatalf("expected Invoices, got %q", got)
	}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindActiveQuery, Data: ""}})
	if got := m.Heading().Title; got != "Invoices" {
		t.Fatalf("expected empty stored query to keep Invoices, got %q", got)
	}
}

func TestBackendErrorIsReported(t *testing.T) {
	m, _, _ := newTestModel(t, Config{})
	h := NewHarness(m)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindSavedSearches, Err: errors.New("database is locked")}})
	if msg, warn := m.status.backendIssue(); !warn || msg != "database is locked" {
		t.Fatalf("expected backend issue, got %v %q", warn, msg)
	}
	h.Send(savedEvent())
	if _, warn := m.status.backendIssue(); warn {
		t.Fatalf("expected backend issue cleared after a good poll")
	}
}

func TestRebuildClosesOverflowWhenSavedSearchDisappears(t *testing.T) {
	travel := savedSearch("Travel", "category:Travel")
	m, _, _ := newTestModel(t, Config{})
	h := NewHarness(m)
	h.Send(savedEvent(travel))
	h.Keys("enter")
	selectItem(t, m, menu.SavedItemID(travel.Hash))
	h.Keys("tab")
	if len(m.stack) != 2 {
		t.Fatalf("expected overflow level, got depth %d", len(m.stack))
	}

	h.Send(savedEvent(travel))
	if len(m.stack) != 2 {
		t.Fatalf("expected overflow to survive an unchanged refresh")
	}

	h.Send(savedEvent())
	if len(m.stack) != 1 {
		t.Fatalf("expected overflow closed once the saved search is gone, depth %d", len(m.stack))
	}
	if m.stack[0].IndexOf(menu.SavedItemID(travel.Hash)) >= 0 {
		t.Fatalf("expected saved item removed")
	}
}

func TestMenuHeaderShowsOverflowBreadcrumb(t *testing.T) {
	travel := savedSearch("Travel", "category:Travel")
	m, _, _ := newTestModel(t, Config{})
	if got := m.menuHeader(); got != "" {
		t.Fatalf("expected no header at the root, got %q", got)
	}
	h := NewHarness(m)
	h.Send(savedEvent(travel))
	h.Keys("enter")
	selectItem(t, m, menu.SavedItemID(travel.Hash))
	h.Keys("tab")
	if got := m.menuHeader(); got != "Search → Travel" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestCustomSavedHeaderAndTypes(t *testing.T) {
	m, _, _ := newTestModel(t, Config{
		Query:       "type:trip",
		SavedHeader: "Bookmarks",
		Types: []menu.TypeDefinition{
			{Title: "Trips", Icon: search.IconSuitcase, Query: "type:trip"},
		},
	})
	mine := savedSearch("Mine", "type:trip tag:me")
	h := NewHarness(m)
	h.Send(savedEvent(mine))
	root := m.stack[0]
	want := []string{menu.TypeItemID(0), menu.HeaderID, menu.SavedItemID(mine.Hash)}
	if got := itemIDs(root.Items); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if header := root.Items[root.IndexOf(menu.HeaderID)]; header.Label != "Bookmarks" {
		t.Fatalf("expected custom header, got %q", header.Label)
	}
}

func itemIDs(items []menu.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
