package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

func sectionItems() []menu.Item {
	return []menu.Item{
		{ID: "type:0", Label: "Expenses", Entry: search.MenuItem{Kind: search.KindType}},
		{ID: "type:1", Label: "Reports", Entry: search.MenuItem{Kind: search.KindType}},
		{ID: "header", Label: "Saved", Entry: search.MenuItem{Kind: search.KindHeader, Disabled: true}},
		{ID: "saved:1", Label: "Team trips", Entry: search.MenuItem{Kind: search.KindSaved}},
		{ID: "saved:2", Label: "Coffee receipts", Entry: search.MenuItem{Kind: search.KindSaved}},
	}
}

func itemIDs(items []menu.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestFilterItemsKeepsHeaderWithSavedMatches(t *testing.T) {
	got := itemIDs(FilterItems(sectionItems(), "trips"))
	want := []string{"header", "saved:1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterItemsDropsHeaderWithoutSavedMatches(t *testing.T) {
	got := itemIDs(FilterItems(sectionItems(), "expen"))
	if !reflect.DeepEqual(got, []string{"type:0"}) {
		t.Fatalf("expected only the expenses type, got %v", got)
	}
	if got := FilterItems(sectionItems(), "saved"); len(got) != 0 {
		t.Fatalf("expected the header not to match on its own, got %v", itemIDs(got))
	}
}

func TestFilterItemsFuzzyAndEmpty(t *testing.T) {
	got := itemIDs(FilterItems(sectionItems(), "rpts"))
	if !reflect.DeepEqual(got, []string{"type:1", "header", "saved:2"}) {
		t.Fatalf("unexpected fuzzy matches %v", got)
	}
	items := sectionItems()
	all := FilterItems(items, "  ")
	if len(all) != len(items) {
		t.Fatalf("expected blank filter to keep everything, got %d", len(all))
	}
	all[0].Label = "changed"
	if items[0].Label != "Expenses" {
		t.Fatalf("expected filtered items to be a copy")
	}
}

func TestBestMatchIndexTiers(t *testing.T) {
	items := []menu.Item{
		{ID: "a", Label: "Trips abroad"},
		{ID: "b", Label: "Trips"},
		{ID: "c", Label: "Road trips"},
		{ID: "d", Label: "Tasks"},
	}
	cases := map[string]int{
		"trips":  1,
		"trip":   0,
		"road":   2,
		"ips ab": 0,
		"tsk":    3,
		"zzz":    0,
	}
	for filter, want := range cases {
		if got := BestMatchIndex(items, filter); got != want {
			t.Errorf("BestMatchIndex(%q) = %d, want %d", filter, got, want)
		}
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 without items, got %d", idx)
	}
}

func TestBestMatchIndexSkipsHeader(t *testing.T) {
	items := sectionItems()
	if idx := BestMatchIndex(items[2:], "Saved"); idx != 1 {
		t.Fatalf("expected the first saved search, got %d", idx)
	}
	if idx := BestMatchIndex(items, "coffee"); idx != 4 {
		t.Fatalf("expected coffee receipts, got %d", idx)
	}
}
