package state

import "github.com/atomicstack/search-menu/internal/search"

type SavedSearchStore interface {
	Entries() []search.SavedSearch
	SetEntries([]search.SavedSearch)
	// SetPending marks the entry with hash locally until the next refresh
	// replaces it. It reports whether the hash was found.
	SetPending(hash int64, action search.PendingAction) bool
	Loaded() bool
}

type savedSearchStore struct {
	entries []search.SavedSearch
	loaded  bool
}

func NewSavedSearchStore() SavedSearchStore {
	return &savedSearchStore{}
}

func (s *savedSearchStore) Entries() []search.SavedSearch {
	return cloneSavedSearches(s.entries)
}

func (s *savedSearchStore) SetEntries(entries []search.SavedSearch) {
	s.entries = cloneSavedSearches(entries)
	s.loaded = true
}

func (s *savedSearchStore) SetPending(hash int64, action search.PendingAction) bool {
	found := false
	for i := range s.entries {
		if s.entries[i].Hash == hash {
			s.entries[i].PendingAction = action
			found = true
		}
	}
	return found
}

func (s *savedSearchStore) Loaded() bool {
	return s.loaded
}

func cloneSavedSearches(entries []search.SavedSearch) []search.SavedSearch {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]search.SavedSearch, len(entries))
	copy(dup, entries)
	return dup
}
