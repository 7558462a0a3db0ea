package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/state"
)

func TestHandleSavedSearches(t *testing.T) {
	saved := state.NewSavedSearchStore()
	d := New(saved, state.NewQueryStore(""))

	entries := []search.SavedSearch{{Hash: 1, Title: "one"}}
	res := d.Handle(backend.Event{Kind: backend.KindSavedSearches, Data: entries})
	if !res.SavedUpdated || res.QueryUpdated {
		t.Fatalf("unexpected result %#v", res)
	}
	if got := saved.Entries(); len(got) != 1 || got[0].Title != "one" {
		t.Fatalf("store not updated: %#v", got)
	}

	res = d.Handle(backend.Event{Kind: backend.KindSavedSearches, Data: entries})
	if res.Any() {
		t.Fatalf("identical snapshot should not report an update: %#v", res)
	}
}

func TestHandleEmptySnapshotMarksLoaded(t *testing.T) {
	saved := state.NewSavedSearchStore()
	d := New(saved, state.NewQueryStore(""))
	res := d.Handle(backend.Event{Kind: backend.KindSavedSearches, Data: []search.SavedSearch(nil)})
	if !res.SavedUpdated || !saved.Loaded() {
		t.Fatalf("expected first empty snapshot to load the store, got %#v", res)
	}
}

func TestHandleActiveQuery(t *testing.T) {
	q := state.NewQueryStore("type:expense")
	d := New(state.NewSavedSearchStore(), q)

	if res := d.Handle(backend.Event{Kind: backend.KindActiveQuery, Data: ""}); res.Any() {
		t.Fatalf("empty query should be ignored, got %#v", res)
	}
	if res := d.Handle(backend.Event{Kind: backend.KindActiveQuery, Data: "status:all type:expense"}); res.Any() {
		t.Fatalf("equivalent query should not report an update, got %#v", res)
	}
	res := d.Handle(backend.Event{Kind: backend.KindActiveQuery, Data: "type:chat"})
	if !res.QueryUpdated {
		t.Fatalf("expected query update")
	}
	if q.Query() != "type:chat status:all" {
		t.Fatalf("unexpected query %q", q.Query())
	}
}

func TestHandleIgnoresErrors(t *testing.T) {
	saved := state.NewSavedSearchStore()
	d := New(saved, state.NewQueryStore(""))
	res := d.Handle(backend.Event{Kind: backend.KindSavedSearches, Err: errors.New("boom")})
	if res.Any() || saved.Loaded() {
		t.Fatalf("error event must not touch state")
	}
}
