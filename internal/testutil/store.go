// Package testutil holds helpers shared by package tests: seeded search
// databases, golden files and a freshly built binary.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/atomicstack/search-menu/internal/search"
	"github.com/atomicstack/search-menu/internal/store"
)

// Saved describes a saved search to seed.
type Saved struct {
	Title string
	Query string
}

// TempDBPath returns a database path inside a per-test directory.
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "search.db")
}

// OpenStore opens the database at path and closes it when the test ends.
func OpenStore(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store %s: %v", path, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// SeedStore writes the active query, when not empty, and the saved searches
// in order. It returns the stored entries.
func SeedStore(t *testing.T, path, active string, saved ...Saved) []search.SavedSearch {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, path)
	if err != nil {
		t.Fatalf("open store %s: %v", path, err)
	}
	defer s.Close()
	if active != "" {
		if err := s.SetActiveQuery(ctx, active); err != nil {
			t.Fatalf("seed active query: %v", err)
		}
	}
	entries := make([]search.SavedSearch, 0, len(saved))
	for _, item := range saved {
		entry, err := s.SaveSearch(ctx, item.Title, item.Query)
		if err != nil {
			t.Fatalf("seed saved search %q: %v", item.Title, err)
		}
		entries = append(entries, entry)
	}
	return entries
}
