package dispatcher

import (
	"github.com/atomicstack/search-menu/internal/backend"
	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/state"
)

type Result struct {
	SavedUpdated bool
	QueryUpdated bool
}

// Any reports whether the event changed anything the menu renders.
func (r Result) Any() bool {
	return r.SavedUpdated || r.QueryUpdated
}

type Dispatcher struct {
	saved state.SavedSearchStore
	query state.QueryStore
}

func New(saved state.SavedSearchStore, q state.QueryStore) *Dispatcher {
	return &Dispatcher{saved: saved, query: q}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindSavedSearches:
		if entries, ok := evt.Data.([]search.SavedSearch); ok {
			if d.saved.Loaded() && equalSaved(d.saved.Entries(), entries) {
				return res
			}
			d.saved.SetEntries(entries)
			res.SavedUpdated = true
		}
	case backend.KindActiveQuery:
		if raw, ok := evt.Data.(string); ok {
			// An empty stored query means nothing has been chosen yet; the
			// startup query stays in effect.
			if raw == "" {
				return res
			}
			before := d.query.Hash()
			d.query.SetQuery(raw)
			res.QueryUpdated = d.query.Hash() != before
		}
	}
	return res
}

func equalSaved(a, b []search.SavedSearch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
