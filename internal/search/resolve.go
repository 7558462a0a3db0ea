package search

// Resolution is the outcome of resolving the active selection.
type Resolution struct {
	Heading Heading
	// Selected has one flag per type entry.
	Selected []bool
}

// SelectedIndex returns the index of the selected entry or -1.
func (r Resolution) SelectedIndex() int {
	for i, selected := range r.Selected {
		if selected {
			return i
		}
	}
	return -1
}

// ResolveSelection decides which type entry is selected and what the menu
// heading shows. A non-empty overrideTitle wins over activeIndex. An index
// outside the entry list selects nothing and falls back to the receipt icon
// with an empty title.
func ResolveSelection(entries []TypeEntry, activeIndex int, overrideTitle string) Resolution {
	selected := make([]bool, len(entries))
	if overrideTitle != "" {
		return Resolution{
			Heading:  Heading{Icon: IconFilters, Title: overrideTitle},
			Selected: selected,
		}
	}
	if activeIndex < 0 || activeIndex >= len(entries) {
		return Resolution{
			Heading:  Heading{Icon: IconReceipt},
			Selected: selected,
		}
	}
	selected[activeIndex] = true
	entry := entries[activeIndex]
	icon := entry.Icon
	if icon == IconNone {
		icon = IconReceipt
	}
	return Resolution{
		Heading:  Heading{Icon: icon, Title: entry.Title},
		Selected: selected,
	}
}

// FindCurrent returns the saved search whose hash equals activeHash. With
// duplicate hashes the first occurrence wins.
func FindCurrent(saved []SavedSearch, activeHash int64) (SavedSearch, bool) {
	for _, s := range saved {
		if s.Hash == activeHash {
			return s, true
		}
	}
	return SavedSearch{}, false
}

// ActiveSelectionFor derives the active index and override title for a
// loaded query. typeHash identifies the query without its workspace scope and
// is matched against the type entries; savedHash is the full query hash. A
// query matching a type entry selects that entry; otherwise the menu shows the
// matching saved search title, or fallbackTitle for an ad-hoc query.
func ActiveSelectionFor(entries []TypeEntry, saved []SavedSearch, typeHash, savedHash int64, fallbackTitle string) (int, string) {
	if typeHash != 0 {
		for i, entry := range entries {
			if entry.QueryHash == typeHash {
				return i, ""
			}
		}
	}
	if current, ok := FindCurrent(saved, savedHash); ok && current.Title != "" {
		return -1, current.Title
	}
	return -1, fallbackTitle
}
